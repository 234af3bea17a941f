package room

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"vidcall_server/internal/dao/mysql/dbtest"
	"vidcall_server/internal/model"
	"vidcall_server/internal/service/calling"
	"vidcall_server/pkg/errorx"
	"vidcall_server/pkg/util/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixedCodes hands out codes in order, then fails.
func fixedCodes(codes ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(codes) {
			return "", errors.New("out of codes")
		}
		c := codes[i]
		i++
		return c, nil
	}
}

func newService(t *testing.T, gen func() (string, error), retries int) (*roomService, *gorm.DB) {
	t.Helper()
	repos, db := dbtest.Repos(t)
	dbtest.SeedProfile(t, db, "u1", "alice")
	dbtest.SeedProfile(t, db, "u2", "bob")
	return NewRoomService(repos, calling.ComingSoon(), gen, retries), db
}

func codeAndMsg(err error) (int, string) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code, codeErr.Msg
	}
	return 0, ""
}

func TestCreateStandupScenario(t *testing.T) {
	svc, _ := newService(t, random.InviteCodeGenerator(8), 3)
	ctx := context.Background()

	room, err := svc.Create(ctx, "u1", "  Standup ")
	require.NoError(t, err)
	assert.Equal(t, "Standup", room.Name)
	assert.Equal(t, int64(1), room.ParticipantCount)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{8}$`), room.InviteCode)

	rooms, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Standup", rooms[0].Name)
	assert.Equal(t, int64(1), rooms[0].ParticipantCount)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _ := newService(t, fixedCodes("aaaaaaaa"), 0)
	_, err := svc.Create(context.Background(), "u1", "   ")
	code, msg := codeAndMsg(err)
	assert.Equal(t, errorx.CodeInvalidParam, code)
	assert.Equal(t, "Please enter a room name", msg)
}

func TestCreateRegeneratesOnCollision(t *testing.T) {
	svc, db := newService(t, fixedCodes("dupcode1", "dupcode1", "fresh001"), 3)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "First")
	require.NoError(t, err)

	second, err := svc.Create(ctx, "u2", "Second")
	require.NoError(t, err)
	assert.Equal(t, "fresh001", second.InviteCode)

	var rooms, members int64
	require.NoError(t, db.Model(&model.GroupRoom{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&model.RoomParticipant{}).Count(&members).Error)
	assert.Equal(t, int64(2), rooms)
	assert.Equal(t, int64(2), members)
}

func TestCreateGivesUpAfterRetries(t *testing.T) {
	svc, db := newService(t, fixedCodes("samecode", "samecode", "samecode"), 1)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "First")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "u2", "Second")
	_, msg := codeAndMsg(err)
	assert.Equal(t, "Failed to create room", msg)

	var members int64
	require.NoError(t, db.Model(&model.RoomParticipant{}).Count(&members).Error)
	assert.Equal(t, int64(1), members)
}

func TestJoinFlow(t *testing.T) {
	svc, db := newService(t, fixedCodes("abc12345"), 0)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "Standup")
	require.NoError(t, err)

	joined, err := svc.Join(ctx, "u2", " abc12345 ")
	require.NoError(t, err)
	assert.Equal(t, int64(2), joined.ParticipantCount)

	_, err = svc.Join(ctx, "u2", "abc12345")
	code, msg := codeAndMsg(err)
	assert.Equal(t, errorx.CodeAlreadyInRoom, code)
	assert.Equal(t, "You're already in this room", msg)

	var members int64
	require.NoError(t, db.Model(&model.RoomParticipant{}).Count(&members).Error)
	assert.Equal(t, int64(2), members)
}

func TestJoinUnknownCodeInsertsNothing(t *testing.T) {
	svc, db := newService(t, fixedCodes("abc12345"), 0)
	ctx := context.Background()

	_, err := svc.Join(ctx, "u2", "nosuchcd")
	code, msg := codeAndMsg(err)
	assert.Equal(t, errorx.CodeInvalidInviteCode, code)
	assert.Equal(t, "Invalid invite code", msg)

	_, err = svc.Join(ctx, "u2", "   ")
	_, msg = codeAndMsg(err)
	assert.Equal(t, "Please enter an invite code", msg)

	var members int64
	require.NoError(t, db.Model(&model.RoomParticipant{}).Count(&members).Error)
	assert.Zero(t, members)
}

func TestListCountsEveryRoom(t *testing.T) {
	svc, _ := newService(t, fixedCodes("room0001", "room0002"), 0)
	ctx := context.Background()

	a, err := svc.Create(ctx, "u1", "A")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", "B")
	require.NoError(t, err)
	_, err = svc.Join(ctx, "u1", "room0002")
	require.NoError(t, err)
	_, err = svc.Join(ctx, "u2", a.InviteCode)
	require.NoError(t, err)

	rooms, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	for _, r := range rooms {
		assert.Equal(t, int64(2), r.ParticipantCount, r.Name)
	}

	none, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInviteCodeAndCallNeedMembership(t *testing.T) {
	svc, _ := newService(t, fixedCodes("abc12345"), 0)
	ctx := context.Background()

	room, err := svc.Create(ctx, "u1", "Standup")
	require.NoError(t, err)

	got, err := svc.InviteCode(ctx, "u1", room.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc12345", got.InviteCode)

	_, err = svc.InviteCode(ctx, "u2", room.ID)
	code, _ := codeAndMsg(err)
	assert.Equal(t, errorx.CodeNotFound, code)

	err = svc.StartCall(ctx, "u1", room.ID)
	code, msg := codeAndMsg(err)
	assert.Equal(t, errorx.CodeNotImplemented, code)
	assert.Equal(t, "Group call feature coming soon!", msg)

	err = svc.StartCall(ctx, "u2", room.ID)
	code, _ = codeAndMsg(err)
	assert.Equal(t, errorx.CodeNotFound, code)
}
