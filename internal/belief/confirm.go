package belief

import (
	"errors"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// ErrAlreadyConfirmed indicates an attempt to confirm a shape type twice.
var ErrAlreadyConfirmed = errors.New("belief: shape type already confirmed")

// Confirm records that placement is the true location of one of the
// fleet's ships (SPEC_FULL.md §6.8 / spec.md §4.8):
//   - the shape type is marked confirmed;
//   - every SHIP cell of the placement gets a ship reference, a singleton
//     possible-shapes set, and max heat;
//   - every UNKNOWN neighbour of those cells is demoted to WATER with
//     zero heat, since no ship may touch another.
func (m *Map) Confirm(placement geometry.Placement) error {
	if m.ConfirmedShapeTypes[placement.Type] {
		return ErrAlreadyConfirmed
	}
	m.ConfirmedShapeTypes[placement.Type] = true

	cells := placement.Cells()
	placed := placement
	for _, c := range cells {
		m.Confirmed[c.Y][c.X] = &placed
		m.PossibleShapes[c.Y][c.X] = map[geometry.ShapeType]bool{placement.Type: true}
		m.Heat[c.Y][c.X] = HeatMaxValue
		if m.Inferred[c.Y][c.X] == board.Unknown {
			m.Inferred[c.Y][c.X] = board.Ship
		}
	}

	for _, c := range cells {
		for _, n := range geometry.Neighbours(c, Size) {
			if m.Inferred[n.Y][n.X] == board.Unknown {
				m.Inferred[n.Y][n.X] = board.Water
				m.Heat[n.Y][n.X] = HeatNoValue
			}
		}
	}

	return nil
}

// UnconfirmedShapeTypes returns every fleet shape type not yet confirmed.
func (m *Map) UnconfirmedShapeTypes() []geometry.ShapeType {
	var out []geometry.ShapeType
	for _, t := range geometry.ShapeTypesBySize {
		if !m.ConfirmedShapeTypes[t] {
			out = append(out, t)
		}
	}
	return out
}

// ApplyIronManHint applies the effect of an IRON_MAN avenger hint
// (spec.md §4.7): the hinted cell is marked SHIP at max heat, and its
// possible-shapes set is restricted to unconfirmed shapes whose size is
// at most the smallest unconfirmed shape's size (i.e. shapes still
// eligible to be "the smallest non-destroyed ship").
func (m *Map) ApplyIronManHint(x, y int) error {
	if err := m.promote(x, y, board.Ship); err != nil {
		return err
	}
	m.Heat[y][x] = HeatMaxValue

	smallest := m.smallestUnconfirmedSize()
	if smallest == 0 {
		return nil
	}

	eligible := map[geometry.ShapeType]bool{}
	for _, t := range m.UnconfirmedShapeTypes() {
		if t.Size() <= smallest {
			eligible[t] = true
		}
	}
	m.PossibleShapes[y][x] = eligible

	m.reprojectPossibleShapes(eligible)

	return nil
}

func (m *Map) smallestUnconfirmedSize() int {
	smallest := 0
	for _, t := range m.UnconfirmedShapeTypes() {
		if smallest == 0 || t.Size() < smallest {
			smallest = t.Size()
		}
	}
	return smallest
}

// reprojectPossibleShapes narrows every cell's possible-shapes set to
// exclude shape types in restricted that have no remaining candidate
// placement covering that cell. This mirrors spec.md §4.7's "same
// intersection logic" as §4.9's candidate enumeration, applied eagerly
// right after a hint so later propagation passes see the tightened state.
func (m *Map) reprojectPossibleShapes(restricted map[geometry.ShapeType]bool) {
	reachable := map[geometry.ShapeType]map[geometry.Coordinate]bool{}
	for t := range restricted {
		reachable[t] = m.reachableCells(t)
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			existing := m.PossibleShapes[y][x]
			if existing == nil {
				continue
			}
			for t := range restricted {
				if existing[t] && !reachable[t][geometry.Coordinate{X: x, Y: y}] {
					delete(existing, t)
				}
			}
		}
	}
}

// reachableCells returns every cell covered by at least one placement of
// shapeType that is consistent with the current inferred grid.
func (m *Map) reachableCells(shapeType geometry.ShapeType) map[geometry.Coordinate]bool {
	out := map[geometry.Coordinate]bool{}
	for _, rotation := range []geometry.Rotation{geometry.Vertical, geometry.Horizontal} {
		w, h := geometry.Dimensions(shapeType, rotation)
		for y := 0; y <= Size-h; y++ {
			for x := 0; x <= Size-w; x++ {
				candidate := geometry.NewPlacement(shapeType, x, y, rotation)
				if m.IsConsistent(candidate) {
					for _, c := range candidate.Cells() {
						out[c] = true
					}
				}
			}
		}
	}
	return out
}

// IsConsistent reports whether placement could still be a real ship given
// the current inferred grid and possible-shapes constraints: its SHIP
// cells must not overlay inferred WATER, its (implicit) WATER neighbours
// must not overlay inferred SHIP belonging to a different already-placed
// ship, and each covered cell's possible-shapes set (if any) must allow
// this shape type.
func (m *Map) IsConsistent(placement geometry.Placement) bool {
	cells := placement.Cells()
	for _, c := range cells {
		if !geometry.InBounds(c, Size) {
			return false
		}
		if m.Inferred[c.Y][c.X] == board.Water {
			return false
		}
		if allowed := m.PossibleShapes[c.Y][c.X]; allowed != nil && !allowed[placement.Type] {
			return false
		}
		if confirmed := m.Confirmed[c.Y][c.X]; confirmed != nil && !confirmed.Equal(placement) {
			return false
		}
	}

	for _, c := range cells {
		for _, n := range geometry.Neighbours(c, Size) {
			if contains(cells, n) {
				continue
			}
			// Any SHIP cell outside this placement's own cells must
			// belong to some other ship, which the no-touch rule
			// forbids being adjacent to this one.
			if m.Inferred[n.Y][n.X] == board.Ship {
				return false
			}
		}
	}

	return true
}

func contains(cells []geometry.Coordinate, c geometry.Coordinate) bool {
	for _, cc := range cells {
		if cc == c {
			return true
		}
	}
	return false
}
