package session_test

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
	"github.com/callegarimattia/battleship/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceSnapshot(t *testing.T) []byte {
	t.Helper()

	b := board.New("reference")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)))
	raw, err := json.Marshal(b.ToSnapshot())
	require.NoError(t, err)
	return raw
}

func TestMapLoader_NextDecodesAndResetsPlayState(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"submit_0001.data": &fstest.MapFile{Data: referenceSnapshot(t)},
	}

	loader, err := session.NewMapLoader(fsys)
	require.NoError(t, err)
	require.Equal(t, 1, loader.Len())

	b, err := loader.Next("fresh-id")
	require.NoError(t, err)
	assert.Equal(t, "fresh-id", b.ID)
	assert.Equal(t, 0, b.MoveCount)
	assert.False(t, b.AvengerAvailable)
	assert.Len(t, b.Ships, 1)
}

func TestMapLoader_NextWrapsAroundWhenExhausted(t *testing.T) {
	t.Parallel()

	raw := referenceSnapshot(t)
	fsys := fstest.MapFS{
		"submit_0001.data": &fstest.MapFile{Data: raw},
	}

	loader, err := session.NewMapLoader(fsys)
	require.NoError(t, err)

	first, err := loader.Next("a")
	require.NoError(t, err)
	second, err := loader.Next("b")
	require.NoError(t, err)

	assert.Equal(t, len(first.Ships), len(second.Ships))
}

func TestNewMapLoader_NoFilesIsNotAnError(t *testing.T) {
	t.Parallel()

	loader, err := session.NewMapLoader(fstest.MapFS{})
	require.NoError(t, err)
	assert.Equal(t, 0, loader.Len())

	_, err = loader.Next("id")
	assert.Error(t, err)
}
