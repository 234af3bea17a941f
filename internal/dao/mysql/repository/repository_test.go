package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vidcall_server/internal/dao/mysql/dbtest"
	"vidcall_server/internal/dao/mysql/repository"
	"vidcall_server/internal/model"
	"vidcall_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSearchIsCaseInsensitiveAndExcludesSelf(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")
	dbtest.SeedProfile(t, db, "u2", "bob99")
	dbtest.SeedProfile(t, db, "u3", "BOBBY")
	dbtest.SeedProfile(t, db, "u4", "carol")

	found, err := repos.Profile.SearchByUsername(ctx, "bob", "u1", 10)
	require.NoError(t, err)
	names := usernames(found)
	assert.ElementsMatch(t, []string{"bob99", "BOBBY"}, names)

	found, err = repos.Profile.SearchByUsername(ctx, "bob", "u2", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOBBY"}, usernames(found))
}

func TestProfileSearchHonoursLimit(t *testing.T) {
	repos, db := dbtest.Repos(t)
	for i, name := range []string{"sam1", "sam2", "sam3", "sam4"} {
		dbtest.SeedProfile(t, db, string(rune('a'+i)), name)
	}
	found, err := repos.Profile.SearchByUsername(context.Background(), "sam", "zz", 2)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestProfileCreateHashesPasswordAndRejectsDuplicate(t *testing.T) {
	repos, _ := dbtest.Repos(t)
	ctx := context.Background()

	p := &model.Profile{Username: "dana", RawPassword: "secret123"}
	require.NoError(t, repos.Profile.Create(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.NotEqual(t, "secret123", p.Password)

	loaded, err := repos.Profile.FindByUsername(ctx, "dana")
	require.NoError(t, err)
	assert.True(t, loaded.CheckPassword("secret123"))
	assert.Equal(t, model.StatusOffline, loaded.Status)

	err = repos.Profile.Create(ctx, &model.Profile{Username: "dana", RawPassword: "other123"})
	assert.True(t, errorx.IsDuplicate(err), "got %v", err)
}

func TestProfileNotFoundAndStatus(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()

	_, err := repos.Profile.FindByID(ctx, "missing")
	assert.True(t, errorx.IsNotFound(err))

	dbtest.SeedProfile(t, db, "u1", "alice")
	require.NoError(t, repos.Profile.UpdateStatus(ctx, "u1", model.StatusOnline))
	p, err := repos.Profile.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOnline, p.Status)

	assert.True(t, errorx.IsNotFound(repos.Profile.UpdateStatus(ctx, "ghost", model.StatusOnline)))
}

func TestContactCreateAndList(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")
	dbtest.SeedProfile(t, db, "u2", "bob99")
	dbtest.SeedProfile(t, db, "u3", "carol")

	require.NoError(t, repos.Contact.Create(ctx, &model.Contact{UserID: "u1", ContactID: "u3"}))
	require.NoError(t, repos.Contact.Create(ctx, &model.Contact{UserID: "u1", ContactID: "u2"}))

	contacts, err := repos.Contact.ListWithProfiles(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "carol", contacts[0].Profile.Username)
	assert.Equal(t, "bob99", contacts[1].Profile.Username)

	ids, err := repos.Contact.ListContactIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u3", "u2"}, ids)

	err = repos.Contact.Create(ctx, &model.Contact{UserID: "u1", ContactID: "u2"})
	assert.True(t, errorx.IsDuplicate(err), "got %v", err)
}

func TestRoomInviteCodeIsUnique(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")

	require.NoError(t, repos.Room.Create(ctx, &model.GroupRoom{Name: "a", InviteCode: "abcd1234", CreatorID: "u1"}))
	err := repos.Room.Create(ctx, &model.GroupRoom{Name: "b", InviteCode: "abcd1234", CreatorID: "u1"})
	assert.True(t, errorx.IsDuplicate(err), "got %v", err)

	room, err := repos.Room.FindByInviteCode(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "a", room.Name)

	_, err = repos.Room.FindByInviteCode(ctx, "zzzz0000")
	assert.True(t, errorx.IsNotFound(err))

	_, err = repos.Room.FindByInviteCode(ctx, "ABCD1234")
	assert.True(t, errorx.IsNotFound(err), "invite codes match case-sensitively")
}

func TestParticipantsAndBatchedCounts(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")
	dbtest.SeedProfile(t, db, "u2", "bob")
	dbtest.SeedProfile(t, db, "u3", "carol")

	r1 := &model.GroupRoom{Name: "one", InviteCode: "code0001", CreatorID: "u1"}
	r2 := &model.GroupRoom{Name: "two", InviteCode: "code0002", CreatorID: "u2"}
	r3 := &model.GroupRoom{Name: "three", InviteCode: "code0003", CreatorID: "u3"}
	for _, r := range []*model.GroupRoom{r1, r2, r3} {
		require.NoError(t, repos.Room.Create(ctx, r))
	}
	join := func(room *model.GroupRoom, users ...string) {
		for _, u := range users {
			require.NoError(t, repos.Participant.Create(ctx, &model.RoomParticipant{RoomID: room.ID, UserID: u}))
		}
	}
	join(r2, "u2", "u1", "u3")
	join(r1, "u1")
	join(r3, "u3")

	rooms, err := repos.Room.FindByParticipant(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "two", rooms[0].Name)
	assert.Equal(t, "one", rooms[1].Name)

	counts, err := repos.Participant.CountByRooms(ctx, []string{r1.ID, r2.ID, r3.ID})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{r1.ID: 1, r2.ID: 3, r3.ID: 1}, counts)

	empty, err := repos.Participant.CountByRooms(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ok, err := repos.Participant.Exists(ctx, r3.ID, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = repos.Participant.Create(ctx, &model.RoomParticipant{RoomID: r1.ID, UserID: "u1"})
	assert.True(t, errorx.IsDuplicate(err), "got %v", err)
}

func TestTransactionRollsBack(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")

	boom := errors.New("boom")
	err := repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Room.Create(ctx, &model.GroupRoom{Name: "orphan", InviteCode: "orphan01", CreatorID: "u1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Room.FindByInviteCode(ctx, "orphan01")
	assert.True(t, errorx.IsNotFound(err))
}

func TestCallHistoryOrderingAndPreload(t *testing.T) {
	repos, db := dbtest.Repos(t)
	ctx := context.Background()
	dbtest.SeedProfile(t, db, "u1", "alice")
	dbtest.SeedProfile(t, db, "u2", "bob")
	dbtest.SeedProfile(t, db, "u3", "carol")

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []*model.CallRecord{
		{CallType: model.CallVideo, Status: model.CallCompleted, Duration: 65, StartedAt: base, CallerID: "u1", ReceiverID: "u2"},
		{CallType: model.CallAudio, Status: model.CallMissed, StartedAt: base.Add(time.Hour), CallerID: "u2", ReceiverID: "u1"},
		{CallType: model.CallAudio, Status: model.CallDeclined, StartedAt: base.Add(2 * time.Hour), CallerID: "u2", ReceiverID: "u3"},
	}
	for _, r := range records {
		require.NoError(t, repos.CallRecord.Create(ctx, r))
	}

	got, err := repos.CallRecord.ListForUser(ctx, "u1", 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.CallMissed, got[0].Status)
	assert.Equal(t, "bob", got[0].Caller.Username)
	assert.Equal(t, "alice", got[0].Receiver.Username)
	assert.Equal(t, model.CallCompleted, got[1].Status)

	limited, err := repos.CallRecord.ListForUser(ctx, "u2", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, model.CallDeclined, limited[0].Status)
}

func usernames(profiles []model.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Username)
	}
	return out
}
