package board_test

import (
	"math/rand"
	"testing"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discoverHelicarrier(t *testing.T, b *board.Board) {
	t.Helper()
	for _, c := range b.Ships[0].Cells() {
		_, err := b.Fire(c.X, c.Y)
		require.NoError(t, err)
	}
	require.True(t, b.AvengerAvailable)
}

func TestFireAvenger_RequiresAvailability(t *testing.T) {
	t.Parallel()

	b := board.New("x")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.PatrolBoat, 0, 0, geometry.Horizontal)))

	_, _, err := b.FireAvenger(5, 5, board.Thor, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, board.ErrAvengerUnavailable)
}

func TestFireAvenger_Hulk_RevealsWholeShip(t *testing.T) {
	t.Parallel()

	b := board.New("scenario")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)))
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Carrier, 5, 5, geometry.Horizontal)))

	discoverHelicarrier(t, b)
	movesBefore := b.MoveCount

	cell, results, err := b.FireAvenger(5, 5, board.Hulk, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, board.Ship, cell)
	assert.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.Hit)
	}

	assert.Equal(t, movesBefore+1, b.MoveCount, "only the base shot counts as a move")
	assert.False(t, b.AvengerAvailable)
	assert.True(t, b.IsShipDestroyed(1))
}

func TestFireAvenger_Hulk_OnWater_EmitsNothingExtra(t *testing.T) {
	t.Parallel()

	b := board.New("scenario")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)))

	discoverHelicarrier(t, b)

	cell, results, err := b.FireAvenger(10, 10, board.Hulk, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, board.Water, cell)
	assert.Empty(t, results)
}

func TestFireAvenger_Thor_RevealsTenWithoutReplacement(t *testing.T) {
	t.Parallel()

	b := board.New("scenario")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)))

	discoverHelicarrier(t, b)
	movesBefore := b.MoveCount

	_, results, err := b.FireAvenger(6, 6, board.Thor, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, results, 10)

	seen := map[[2]int]bool{}
	for _, r := range results {
		assert.False(t, seen[[2]int{r.X, r.Y}], "thor must not sample the same cell twice")
		seen[[2]int{r.X, r.Y}] = true
		assert.NotEqual(t, [2]int{6, 6}, [2]int{r.X, r.Y}, "the base shot cell must already be discovered and excluded from the pool")
	}

	assert.Equal(t, movesBefore+1, b.MoveCount)
}

func TestFireAvenger_IronMan_HintsSmallestNonDestroyedShip(t *testing.T) {
	t.Parallel()

	b := board.New("scenario")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)))
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.PatrolBoat, 6, 6, geometry.Horizontal)))
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Carrier, 7, 8, geometry.Horizontal)))

	discoverHelicarrier(t, b)

	_, results, err := b.FireAvenger(0, 11, board.IronMan, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Hit)

	hinted := geometry.Coordinate{X: results[0].X, Y: results[0].Y}
	patrolCells := b.Ships[1].Cells()
	found := false
	for _, c := range patrolCells {
		if c == hinted {
			found = true
		}
	}
	assert.True(t, found, "hint must point at the smallest non-destroyed ship (patrol boat)")
	assert.False(t, b.Discovered(hinted.X, hinted.Y), "iron man hints without marking discovered")
}
