// Package repository is the data access layer. Interfaces live here,
// gorm implementations in the sibling files.
package repository

import (
	"context"

	"vidcall_server/internal/model"

	"gorm.io/gorm"
)

// ProfileRepository user profiles
type ProfileRepository interface {
	// Create inserts a profile; a taken username yields CodeDuplicate
	Create(ctx context.Context, profile *model.Profile) error
	// FindByID loads one profile
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	// FindByUsername exact match, used by sign-in
	FindByUsername(ctx context.Context, username string) (*model.Profile, error)
	// SearchByUsername case-insensitive contains, excluding one id, capped at limit
	SearchByUsername(ctx context.Context, query, excludeID string, limit int) ([]model.Profile, error)
	// UpdateStatus sets presence
	UpdateStatus(ctx context.Context, id, status string) error
}

// ContactRepository directed contact links
type ContactRepository interface {
	// Create inserts a link; an existing pair yields CodeDuplicate
	Create(ctx context.Context, contact *model.Contact) error
	// ListWithProfiles returns the owner's links with the contact profile preloaded, in insertion order
	ListWithProfiles(ctx context.Context, userID string) ([]model.Contact, error)
	// ListContactIDs only the contact ids
	ListContactIDs(ctx context.Context, userID string) ([]string, error)
}

// RoomRepository group rooms
type RoomRepository interface {
	// Create inserts a room; a taken invite code yields CodeDuplicate
	Create(ctx context.Context, room *model.GroupRoom) error
	// FindByID loads one room
	FindByID(ctx context.Context, id string) (*model.GroupRoom, error)
	// FindByInviteCode exact match
	FindByInviteCode(ctx context.Context, code string) (*model.GroupRoom, error)
	// FindByParticipant rooms the user belongs to, in join order
	FindByParticipant(ctx context.Context, userID string) ([]model.GroupRoom, error)
}

// ParticipantRepository room membership
type ParticipantRepository interface {
	// Create inserts a membership; an existing pair yields CodeDuplicate
	Create(ctx context.Context, participant *model.RoomParticipant) error
	// Exists reports whether the user belongs to the room
	Exists(ctx context.Context, roomID, userID string) (bool, error)
	// CountByRooms counts members of every listed room in one aggregation.
	// Rooms without members are absent from the map.
	CountByRooms(ctx context.Context, roomIDs []string) (map[string]int64, error)
}

// CallRecordRepository call history
type CallRecordRepository interface {
	// Create appends a record; records are never updated
	Create(ctx context.Context, record *model.CallRecord) error
	// ListForUser newest first, caller and receiver preloaded
	ListForUser(ctx context.Context, userID string, limit int) ([]model.CallRecord, error)
}

// Repositories aggregates every repository; services receive it by injection.
type Repositories struct {
	db          *gorm.DB
	Profile     ProfileRepository
	Contact     ContactRepository
	Room        RoomRepository
	Participant ParticipantRepository
	CallRecord  CallRecordRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Profile:     NewProfileRepository(db),
		Contact:     NewContactRepository(db),
		Room:        NewRoomRepository(db),
		Participant: NewParticipantRepository(db),
		CallRecord:  NewCallRecordRepository(db),
	}
}

// Transaction runs fn inside one database transaction. fn receives
// repositories bound to the transaction; any error rolls everything back.
func (r *Repositories) Transaction(ctx context.Context, fn func(txRepos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
