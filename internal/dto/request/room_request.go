package request

// CreateRoomRequest the name is trimmed and checked by the room service
type CreateRoomRequest struct {
	Name string `json:"name" binding:"max=64"`
}

// JoinRoomRequest the code is trimmed and checked by the room service
type JoinRoomRequest struct {
	InviteCode string `json:"invite_code" binding:"max=16"`
}

// InviteCodeRequest
type InviteCodeRequest struct {
	RoomID string `form:"room_id" binding:"required"`
}

// StartGroupCallRequest
type StartGroupCallRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}
