package session_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/callegarimattia/battleship/internal/session"
	"github.com/callegarimattia/battleship/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadBoard_CreatesOneOnFirstAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), rand.New(rand.NewSource(1)), nil)

	user := session.NewUserData()
	b, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)
	assert.Len(t, b.Ships, 6)
}

func TestManager_SaveThenLoadBoard_RoundTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), rand.New(rand.NewSource(1)), nil)

	user := session.NewUserData()
	b, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)

	_, fireErr := b.Fire(0, 0)
	require.NoError(t, fireErr)
	require.NoError(t, m.SaveBoard(ctx, "tok", b, &user))

	reloaded, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.MoveCount)
}

func TestManager_SaveBoard_DeletesAndScoresOnCompletion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), rand.New(rand.NewSource(1)), nil)

	user := session.NewUserData()
	b, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)

	for y := 0; y < 12 && !b.AllDiscovered(); y++ {
		for x := 0; x < 12 && !b.AllDiscovered(); x++ {
			_, fireErr := b.Fire(x, y)
			require.NoError(t, fireErr)
		}
	}
	require.True(t, b.AllDiscovered())

	finishedMoveCount := b.MoveCount
	require.NoError(t, m.SaveBoard(ctx, "tok", b, &user))

	assert.Equal(t, finishedMoveCount, user.CurrentGameScore)
	assert.Equal(t, session.InitialMapCount-1, user.RemainingMapCountInGame)

	// The next LoadBoard call must create a brand new board, since the
	// completed one was deleted from storage.
	fresh, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.MoveCount)
}

func TestManager_LoadBoard_ReturnsErrGameOverWhenNoMapsRemain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), rand.New(rand.NewSource(1)), nil)

	user := session.UserData{RemainingMapCountInGame: 0}
	_, err := m.LoadBoard(ctx, "tok", &user)
	assert.ErrorIs(t, err, session.ErrGameOver)
}

func TestManager_Reset_WithoutWipeKeepsUserData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	m := session.NewManager(store, rand.New(rand.NewSource(1)), nil)

	user := session.NewUserData()
	user.Attempts = 5
	require.NoError(t, m.SaveUser(ctx, "tok", user))
	_, err := m.LoadBoard(ctx, "tok", &user)
	require.NoError(t, err)

	require.NoError(t, m.Reset(ctx, "tok", false))

	reloadedUser, err := m.LoadUser(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 5, reloadedUser.Attempts)
}

func TestManager_Reset_WithWipeRemovesUserDataToo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	m := session.NewManager(store, rand.New(rand.NewSource(1)), nil)

	user := session.NewUserData()
	user.Attempts = 5
	require.NoError(t, m.SaveUser(ctx, "tok", user))

	require.NoError(t, m.Reset(ctx, "tok", true))

	reloadedUser, err := m.LoadUser(ctx, "tok")
	require.NoError(t, err)
	assert.Zero(t, reloadedUser.Attempts)
}
