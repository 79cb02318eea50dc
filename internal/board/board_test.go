package board_test

import (
	"math/rand"
	"testing"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRandomBoard(t *testing.T, seed int64) *board.Board {
	t.Helper()
	b, err := board.PlaceRandom("test", rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return b
}

func TestPlaceRandom_FleetComposition(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 25; seed++ {
		b := newRandomBoard(t, seed)

		require.Len(t, b.Ships, 6)

		totalCells := 0
		for _, s := range b.Ships {
			totalCells += len(s.Cells())
		}
		assert.Equal(t, 28, totalCells)
	}
}

func TestPlaceRandom_NoTouchInvariant(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 25; seed++ {
		b := newRandomBoard(t, seed)

		for i := range b.Ships {
			for j := range b.Ships {
				if i == j {
					continue
				}
				assertNoTouch(t, b.Ships[i], b.Ships[j])
			}
		}
	}
}

func assertNoTouch(t *testing.T, a, c geometry.Placement) {
	t.Helper()
	for _, ca := range a.Cells() {
		for _, cb := range c.Cells() {
			dx, dy := ca.X-cb.X, ca.Y-cb.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			chebyshev := dx
			if dy > chebyshev {
				chebyshev = dy
			}
			assert.GreaterOrEqual(t, chebyshev, 2, "ships %+v and %+v touch at %+v/%+v", a, c, ca, cb)
		}
	}
}

func TestFire_OutOfBounds(t *testing.T) {
	t.Parallel()

	b := newRandomBoard(t, 1)
	_, err := b.Fire(-1, 0)
	assert.ErrorIs(t, err, board.ErrOutOfBounds)

	_, err = b.Fire(12, 0)
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
}

func TestFire_RepeatedFireDoesNotIncrementMoveCount(t *testing.T) {
	t.Parallel()

	b := newRandomBoard(t, 2)

	first, err := b.Fire(3, 4)
	require.NoError(t, err)
	require.Equal(t, 1, b.MoveCount)

	second, err := b.Fire(3, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, b.MoveCount)
}

func TestFire_MoveCountMatchesDiscoveredCells(t *testing.T) {
	t.Parallel()

	b := newRandomBoard(t, 3)

	discovered := map[[2]int]bool{}
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if y*board.Size+x >= 17 {
				break
			}
			_, err := b.Fire(x, y)
			require.NoError(t, err)
			discovered[[2]int{x, y}] = true
		}
	}

	assert.Equal(t, len(discovered), b.MoveCount)
}

// buildBoardWithHelicarrierAt constructs a board holding only the
// helicarrier, at a known location, for scenario tests that need
// deterministic coordinates (S3/S4/S5 of SPEC_FULL.md §11).
func buildBoardWithHelicarrierAt(t *testing.T, x, y int, r geometry.Rotation) *board.Board {
	t.Helper()

	b := board.New("scenario")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.Helicarrier, x, y, r)))
	return b
}

func TestScenario_HelicarrierCompletionGrantsAvenger(t *testing.T) {
	t.Parallel()

	b := buildBoardWithHelicarrierAt(t, 0, 0, geometry.Vertical)
	helicarrier := b.Ships[0]

	require.False(t, b.AvengerAvailable)

	cells := helicarrier.Cells()
	for i, c := range cells {
		_, err := b.Fire(c.X, c.Y)
		require.NoError(t, err)

		if i < len(cells)-1 {
			assert.False(t, b.AvengerAvailable, "avenger granted before full discovery")
		}
	}

	assert.True(t, b.AvengerAvailable, "avenger must be granted on full helicarrier discovery")

	// Firing any other cell without an avenger must not reset the flag.
	_, err := b.Fire(11, 11)
	require.NoError(t, err)
	assert.True(t, b.AvengerAvailable)
}

func TestAllDiscovered(t *testing.T) {
	t.Parallel()

	b := board.New("tiny")
	require.NoError(t, b.Place(geometry.NewPlacement(geometry.PatrolBoat, 0, 0, geometry.Horizontal)))

	assert.False(t, b.AllDiscovered())

	_, _ = b.Fire(0, 0)
	assert.False(t, b.AllDiscovered())

	_, _ = b.Fire(1, 0)
	assert.True(t, b.AllDiscovered())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	b := newRandomBoard(t, 7)
	_, _ = b.Fire(0, 0)
	_, _ = b.Fire(1, 1)
	_, _ = b.Fire(2, 2)

	snap := b.ToSnapshot()
	restored, err := board.FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, b.MoveCount, restored.MoveCount)
	assert.Equal(t, b.AvengerAvailable, restored.AvengerAvailable)
	assert.ElementsMatch(t, b.Ships, restored.Ships)

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			assert.Equal(t, b.Discovered(x, y), restored.Discovered(x, y))
			assert.Equal(t, b.CellAt(x, y), restored.CellAt(x, y))
		}
	}
}
