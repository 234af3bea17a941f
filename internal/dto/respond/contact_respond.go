package respond

// ContactRespond one entry of the contact list
// Used by:
//   - internal/service/contact/service.go: List
type ContactRespond struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatar_url"`
}

// SearchUserRespond a search hit, flagged when already a contact
type SearchUserRespond struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatar_url"`
	IsContact bool    `json:"is_contact"`
}
