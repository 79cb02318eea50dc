// Package board implements the authoritative Battleship rules engine: a
// single 12x12 board with a fixed six-ship fleet, fire/avenger
// resolution, and completion detection. It is the server-side half of
// the two tightly coupled subsystems described by the specification; the
// client-side half (belief, propagation, enumeration, targeting) only
// ever sees this package's wire-shaped outputs, never its internals.
package board

import (
	"math/rand"

	"github.com/callegarimattia/battleship/internal/geometry"
)

// Size is the fixed board dimension (both width and height).
const Size = 12

// Board is the authoritative map: placed ships, discovery state, move
// count, and avenger availability. All mutation happens through Fire and
// FireAvenger; there is no way to directly poke a cell from outside the
// package, matching the "fire -> mutate -> persist -> respond" atomicity
// described in SPEC_FULL.md §7.
type Board struct {
	ID    string
	Ships []geometry.Placement

	discovered [Size][Size]bool
	// shipIndex stores the index into Ships occupying a cell, or -1 for
	// water. A ship index is kept rather than a pointer, per spec §9's
	// note that the cell->ship reference need not be a live pointer.
	shipIndex [Size][Size]int

	MoveCount        int
	AvengerAvailable bool

	shipDiscoveredCells []int // per-ship count of discovered own cells
}

// New creates an empty Board with no ships placed; used by PlaceRandom
// and by deserialization.
func New(id string) *Board {
	b := &Board{ID: id}
	for y := range b.shipIndex {
		for x := range b.shipIndex[y] {
			b.shipIndex[y][x] = -1
		}
	}
	return b
}

// PlaceRandom builds a Board with the canonical fleet placed uniformly at
// random, respecting the no-touch rule. Ships are placed in descending
// size order (geometry.ShapeTypesBySize) and must never be shuffled: the
// helicarrier is the hardest shape to fit and must go first.
func PlaceRandom(id string, rng *rand.Rand) (*Board, error) {
	b := New(id)

	for _, shapeType := range geometry.ShapeTypesBySize {
		candidates := b.candidatePlacements(shapeType)
		if len(candidates) == 0 {
			return nil, ErrPlacementFailed
		}

		choice := candidates[rng.Intn(len(candidates))]
		b.place(choice)
	}

	return b, nil
}

// candidatePlacements enumerates every (x,y,rotation) at which shapeType
// currently fits on the board (the Placement Generator, SPEC_FULL.md §6.4).
func (b *Board) candidatePlacements(shapeType geometry.ShapeType) []geometry.Placement {
	var out []geometry.Placement

	for _, rotation := range []geometry.Rotation{geometry.Vertical, geometry.Horizontal} {
		w, h := geometry.Dimensions(shapeType, rotation)
		for y := 0; y <= Size-h; y++ {
			for x := 0; x <= Size-w; x++ {
				candidate := geometry.NewPlacement(shapeType, x, y, rotation)
				if b.CanPlace(candidate) {
					out = append(out, candidate)
				}
			}
		}
	}

	return out
}

// CanPlace reports whether battleship fits: in bounds, and none of its
// SHIP cells' 9-neighbourhoods (self + diagonals) touch an already
// placed ship.
func (b *Board) CanPlace(bs geometry.Placement) bool {
	cells := bs.Cells()
	for _, c := range cells {
		if !geometry.InBounds(c, Size) {
			return false
		}
	}

	for _, c := range cells {
		if b.shipIndex[c.Y][c.X] != -1 {
			return false
		}
		for _, n := range geometry.Neighbours(c, Size) {
			if b.shipIndex[n.Y][n.X] != -1 {
				return false
			}
		}
	}

	return true
}

// place records bs and stamps its SHIP cells with its ship index. It does
// not validate CanPlace; callers must have already checked.
func (b *Board) place(bs geometry.Placement) {
	idx := len(b.Ships)
	b.Ships = append(b.Ships, bs)
	b.shipDiscoveredCells = append(b.shipDiscoveredCells, 0)

	for _, c := range bs.Cells() {
		b.shipIndex[c.Y][c.X] = idx
	}
}

// Place adds bs to the board after validating CanPlace. It is exposed so
// reference-game maps and tests can construct specific boards without
// going through PlaceRandom.
func (b *Board) Place(bs geometry.Placement) error {
	if !b.CanPlace(bs) {
		return ErrPlacementFailed
	}
	b.place(bs)
	return nil
}

func (b *Board) inBounds(x, y int) bool {
	return geometry.InBounds(geometry.Coordinate{X: x, Y: y}, Size)
}

// Fire discovers (x,y). Re-firing an already discovered cell returns its
// revealed value without incrementing MoveCount. Firing the cell that
// completes full discovery of the helicarrier grants the avenger.
func (b *Board) Fire(x, y int) (Cell, error) {
	if !b.inBounds(x, y) {
		return Unknown, ErrOutOfBounds
	}

	if b.discovered[y][x] {
		return b.revealedCell(x, y), nil
	}

	return b.discoverCell(x, y, true), nil
}

// discoverCell marks (x,y) discovered, optionally counting it toward
// MoveCount, and returns its revealed cell value. It also grants the
// avenger the moment it completes the helicarrier.
func (b *Board) discoverCell(x, y int, countsAsMove bool) Cell {
	b.discovered[y][x] = true
	if countsAsMove {
		b.MoveCount++
	}

	idx := b.shipIndex[y][x]
	if idx == -1 {
		return Water
	}

	wasComplete := b.isShipFullyDiscovered(idx)
	b.shipDiscoveredCells[idx]++
	nowComplete := b.isShipFullyDiscovered(idx)

	if !wasComplete && nowComplete && b.Ships[idx].Type == geometry.Helicarrier {
		b.AvengerAvailable = true
	}

	return Ship
}

func (b *Board) revealedCell(x, y int) Cell {
	if b.shipIndex[y][x] == -1 {
		return Water
	}
	return Ship
}

func (b *Board) isShipFullyDiscovered(idx int) bool {
	return b.shipDiscoveredCells[idx] >= b.Ships[idx].Type.Size()
}

// IsShipDestroyed reports whether every cell of Ships[idx] has been
// discovered.
func (b *Board) IsShipDestroyed(idx int) bool {
	return b.isShipFullyDiscovered(idx)
}

// AllDiscovered reports whether every SHIP cell of every placed ship has
// been discovered (map completion).
func (b *Board) AllDiscovered() bool {
	for idx := range b.Ships {
		if !b.isShipFullyDiscovered(idx) {
			return false
		}
	}
	return true
}

// Discovered reports whether (x,y) has been fired upon.
func (b *Board) Discovered(x, y int) bool {
	return b.discovered[y][x]
}

// CellAt returns the revealed value at (x,y) if discovered, else Unknown.
func (b *Board) CellAt(x, y int) Cell {
	if !b.discovered[y][x] {
		return Unknown
	}
	return b.revealedCell(x, y)
}

// ShipIndexAt returns the index into Ships occupying (x,y), or -1.
func (b *Board) ShipIndexAt(x, y int) int {
	return b.shipIndex[y][x]
}
