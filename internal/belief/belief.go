// Package belief maintains the bot-side inferred state of a board: what
// the bot currently believes about each cell, which ships are confirmed,
// and a per-cell heat-map used for targeting. It never sees the
// authoritative board directly — only the judge's FireResponse snapshots
// — and refuses to silently paper over any contradiction with what it
// has already deduced (the monotonicity invariant of SPEC_FULL.md §5).
package belief

import (
	"errors"
	"fmt"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// Size is the board dimension the belief map tracks.
const Size = board.Size

// HeatNoValue is the sentinel heat value for a cell with no targeting
// preference at all.
const HeatNoValue = 0.0

// HeatMaxValue is the sentinel heat value for a cell that is SHIP-confirmed
// but not yet fired: always the top targeting priority.
const HeatMaxValue = 1e9

// ErrMonotonicityViolation is Fatal: the judge reported a cell value that
// contradicts what the belief map already holds. The rules engine and the
// bot both refuse to recover silently from this (SPEC_FULL.md §9).
var ErrMonotonicityViolation = errors.New("belief: server grid contradicts inferred grid")

// Map is the bot's belief state over one 12x12 board.
type Map struct {
	Inferred [Size][Size]board.Cell
	Original [Size][Size]board.Cell

	// Confirmed stores, for a cell whose owning ship's identity and
	// placement are 100% known locally, the ship it belongs to. nil
	// otherwise.
	Confirmed [Size][Size]*geometry.Placement

	// PossibleShapes holds the set of shape types a SHIP cell could
	// still belong to. An empty (nil) set means "any remaining
	// unconfirmed shape".
	PossibleShapes [Size][Size]map[geometry.ShapeType]bool

	ConfirmedShapeTypes map[geometry.ShapeType]bool

	Heat [Size][Size]float64

	avengerWasAvailable bool
}

// New creates a Map with every cell UNKNOWN and no confirmed shapes.
func New() *Map {
	m := &Map{ConfirmedShapeTypes: make(map[geometry.ShapeType]bool)}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			m.Inferred[y][x] = board.Unknown
			m.Original[y][x] = board.Unknown
		}
	}
	return m
}

// ParseGrid decodes the judge's 144-char row-major grid string ('*'
// unknown, '.' water, 'X' ship; index = y*12+x) into a Cell grid.
func ParseGrid(s string) ([Size][Size]board.Cell, error) {
	var grid [Size][Size]board.Cell
	if len(s) != Size*Size {
		return grid, fmt.Errorf("belief: grid must be %d chars, got %d", Size*Size, len(s))
	}

	for i, r := range s {
		x, y := i%Size, i/Size
		switch r {
		case '*':
			grid[y][x] = board.Unknown
		case '.':
			grid[y][x] = board.Water
		case 'X':
			grid[y][x] = board.Ship
		default:
			return grid, fmt.Errorf("belief: invalid grid char %q at index %d", r, i)
		}
	}

	return grid, nil
}

// promote sets inferred_grid[x][y] to value, enforcing monotonicity: once
// set to a non-UNKNOWN value it must never change to a different
// non-UNKNOWN value.
func (m *Map) promote(x, y int, value board.Cell) error {
	if value == board.Unknown {
		return nil
	}

	current := m.Inferred[y][x]
	if current != board.Unknown && current != value {
		return fmt.Errorf("%w: cell (%d,%d) was %v, server now reports %v",
			ErrMonotonicityViolation, x, y, current, value)
	}

	m.Inferred[y][x] = value
	if value == board.Ship && m.Heat[y][x] != HeatMaxValue {
		if m.Confirmed[y][x] == nil {
			// An unconfirmed hit is always maximally interesting until
			// the propagator/enumerator refine it further.
			m.Heat[y][x] = HeatMaxValue
		}
	} else if value == board.Water {
		m.Heat[y][x] = HeatNoValue
	}

	return nil
}

// UpdateFromGrid refreshes original_grid from the server's grid string and
// promotes inferred_grid accordingly. avengerGranted should be the
// response's avengerAvailable flag (used to detect the helicarrier
// full-discovery transition and force its gap cells to water).
func (m *Map) UpdateFromGrid(serverGrid string, avengerGranted bool) error {
	grid, err := ParseGrid(serverGrid)
	if err != nil {
		return err
	}

	m.Original = grid

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if err := m.promote(x, y, grid[y][x]); err != nil {
				return err
			}
		}
	}

	justGranted := avengerGranted && !m.avengerWasAvailable
	m.avengerWasAvailable = avengerGranted
	if !avengerGranted {
		m.avengerWasAvailable = false
	}

	if justGranted {
		m.markHelicarrierGapsWater()
	}

	return nil
}

// markHelicarrierGapsWater locates a fully-SHIP-discovered helicarrier
// footprint in the inferred grid and marks its four interior gap cells
// WATER if they are still UNKNOWN (SPEC_FULL.md §6.5). The no-touch rule
// plus the discovered outline guarantee they can be nothing else.
func (m *Map) markHelicarrierGapsWater() {
	placement, ok := m.findFullyDiscoveredHelicarrier()
	if !ok {
		return
	}

	for _, c := range geometry.HelicarrierGapCells(placement) {
		if m.Inferred[c.Y][c.X] == board.Unknown {
			_ = m.promote(c.X, c.Y, board.Water)
		}
	}
}

func (m *Map) findFullyDiscoveredHelicarrier() (geometry.Placement, bool) {
	for _, rotation := range []geometry.Rotation{geometry.Vertical, geometry.Horizontal} {
		w, h := geometry.Dimensions(geometry.Helicarrier, rotation)
		for y := 0; y <= Size-h; y++ {
			for x := 0; x <= Size-w; x++ {
				candidate := geometry.NewPlacement(geometry.Helicarrier, x, y, rotation)
				if m.allShip(candidate.Cells()) {
					return candidate, true
				}
			}
		}
	}
	return geometry.Placement{}, false
}

func (m *Map) allShip(cells []geometry.Coordinate) bool {
	for _, c := range cells {
		if m.Inferred[c.Y][c.X] != board.Ship {
			return false
		}
	}
	return true
}
