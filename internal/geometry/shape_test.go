package geometry_test

import (
	"testing"

	"github.com/callegarimattia/battleship/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeOf_Sizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shapeType geometry.ShapeType
		wantCells int
	}{
		{geometry.Helicarrier, 11},
		{geometry.Carrier, 5},
		{geometry.Battleship, 4},
		{geometry.Destroyer, 3},
		{geometry.Submarine, 3},
		{geometry.PatrolBoat, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.shapeType), func(t *testing.T) {
			t.Parallel()

			shape := geometry.ShapeOf(tt.shapeType)
			assert.Len(t, shape.Cells, tt.wantCells)
			assert.Equal(t, tt.wantCells, tt.shapeType.Size())
		})
	}
}

func TestTotalFleetCells(t *testing.T) {
	t.Parallel()

	total := 0
	for _, st := range geometry.ShapeTypesBySize {
		total += st.Size()
	}

	assert.Equal(t, 28, total, "11+5+4+3+3+2 = 28")
}

func TestHelicarrierDimensions(t *testing.T) {
	t.Parallel()

	w, h := geometry.Dimensions(geometry.Helicarrier, geometry.Vertical)
	require.Equal(t, 3, w)
	require.Equal(t, 5, h)

	w, h = geometry.Dimensions(geometry.Helicarrier, geometry.Horizontal)
	require.Equal(t, 5, w)
	require.Equal(t, 3, h)
}

func TestShipCells_RotationIsAxisSwap(t *testing.T) {
	t.Parallel()

	for _, st := range geometry.ShapeTypesBySize {
		vertical := geometry.NewPlacement(st, 0, 0, geometry.Vertical)
		horizontal := geometry.NewPlacement(st, 0, 0, geometry.Horizontal)

		vCells := vertical.Cells()
		hCells := horizontal.Cells()
		require.Len(t, hCells, len(vCells))

		for i, c := range vCells {
			assert.Equal(t, geometry.Coordinate{X: c.Y, Y: c.X}, hCells[i])
		}
	}
}

func TestNeighbours_SkipsOffBoard(t *testing.T) {
	t.Parallel()

	corner := geometry.Neighbours(geometry.Coordinate{X: 0, Y: 0}, 12)
	assert.Len(t, corner, 3)

	middle := geometry.Neighbours(geometry.Coordinate{X: 5, Y: 5}, 12)
	assert.Len(t, middle, 8)
}

func TestHelicarrierGapCells(t *testing.T) {
	t.Parallel()

	vertical := geometry.NewPlacement(geometry.Helicarrier, 0, 0, geometry.Vertical)
	gaps := geometry.HelicarrierGapCells(vertical)
	assert.ElementsMatch(t, []geometry.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 4}}, gaps)

	// Gap cells must never overlap the ship's own occupied cells.
	occupied := map[geometry.Coordinate]bool{}
	for _, c := range vertical.Cells() {
		occupied[c] = true
	}
	for _, g := range gaps {
		assert.False(t, occupied[g])
	}
}

func TestBattleshipEqual(t *testing.T) {
	t.Parallel()

	a := geometry.NewPlacement(geometry.Destroyer, 1, 2, geometry.Horizontal)
	b := geometry.NewPlacement(geometry.Destroyer, 1, 2, geometry.Horizontal)
	c := geometry.NewPlacement(geometry.Destroyer, 1, 2, geometry.Vertical)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
