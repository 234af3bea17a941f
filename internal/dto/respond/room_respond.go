package respond

import "time"

// RoomRespond a group room with its member count
type RoomRespond struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	InviteCode       string    `json:"invite_code"`
	CreatorID        string    `json:"creator_id"`
	CreatedAt        time.Time `json:"created_at"`
	ParticipantCount int64     `json:"participant_count"`
}

// InviteCodeRespond
type InviteCodeRespond struct {
	RoomID     string `json:"room_id"`
	InviteCode string `json:"invite_code"`
}
