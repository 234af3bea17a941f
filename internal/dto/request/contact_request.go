package request

// SearchUserRequest an empty query is allowed and yields no results
type SearchUserRequest struct {
	Query string `form:"q"`
}

// AddContactRequest adds the selected profile to the caller's contacts
type AddContactRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
}

// InitiateCallRequest one-to-one call with a contact
type InitiateCallRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	CallType  string `json:"call_type" binding:"required,oneof=video audio"`
}
