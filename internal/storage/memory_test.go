package storage_test

import (
	"context"
	"testing"

	"github.com/callegarimattia/battleship/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "user:abc", []byte(`{"attempts":1}`)))

	v, err := m.Get(ctx, "user:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"attempts":1}`, string(v))
}

func TestMemory_GetMissingReturnsErrNotFound(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	_, err := m.Get(context.Background(), "user:missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemory_DeleteThenGetReturnsErrNotFound(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "map:abc", []byte("{}")))
	require.NoError(t, m.Delete(ctx, "map:abc"))

	_, err := m.Get(ctx, "map:abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemory_DeleteMissingKeyIsNotAnError(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	assert.NoError(t, m.Delete(context.Background(), "user:never-existed"))
}

func TestMemory_FlushRemovesEveryKey(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "user:a", []byte("1")))
	require.NoError(t, m.Set(ctx, "map:a", []byte("2")))

	require.NoError(t, m.Flush(ctx))

	_, err := m.Get(ctx, "user:a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.Get(ctx, "map:a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemory_SetCopiesValueSoCallerMutationDoesNotLeak(t *testing.T) {
	t.Parallel()

	m := storage.NewMemory()
	ctx := context.Background()

	buf := []byte("original")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'X'

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(v))
}
