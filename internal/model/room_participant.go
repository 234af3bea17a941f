package model

import "time"

// RoomParticipant membership of a profile in a room; (room_id, user_id) is unique.
type RoomParticipant struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement"`
	RoomID   string    `gorm:"column:room_id;type:char(36);not null;uniqueIndex:idx_room_member,priority:1"`
	UserID   string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:idx_room_member,priority:2;index"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime"`

	Room *GroupRoom `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE"`
	User *Profile   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (RoomParticipant) TableName() string {
	return "room_participants"
}

// RoomCount one row of the batched participant aggregation.
type RoomCount struct {
	RoomID string `gorm:"column:room_id"`
	Count  int64  `gorm:"column:count"`
}
