package board

import "github.com/callegarimattia/battleship/internal/geometry"

// ShipSnapshot is the serializable form of one placed battleship.
type ShipSnapshot struct {
	Shape    geometry.ShapeType `json:"shape"`
	X        int                `json:"x"`
	Y        int                `json:"y"`
	Rotation geometry.Rotation  `json:"rotation"`
}

// Snapshot is the persisted representation of a Board, matching
// SPEC_FULL.md §8's Persisted Board JSON:
// {id, width, height, battleships, discovered, move_count, avenger_available}.
type Snapshot struct {
	ID               string         `json:"id"`
	Width            int            `json:"width"`
	Height           int            `json:"height"`
	Battleships      []ShipSnapshot `json:"battleships"`
	Discovered       [][2]int       `json:"discovered"`
	MoveCount        int            `json:"move_count"`
	AvengerAvailable bool           `json:"avenger_available"`
}

// ToSnapshot serializes the Board into its persisted form.
func (b *Board) ToSnapshot() Snapshot {
	ships := make([]ShipSnapshot, len(b.Ships))
	for i, s := range b.Ships {
		ships[i] = ShipSnapshot{Shape: s.Type, X: s.X, Y: s.Y, Rotation: s.Rotation}
	}

	var discovered [][2]int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.discovered[y][x] {
				discovered = append(discovered, [2]int{x, y})
			}
		}
	}

	return Snapshot{
		ID:               b.ID,
		Width:            Size,
		Height:           Size,
		Battleships:      ships,
		Discovered:       discovered,
		MoveCount:        b.MoveCount,
		AvengerAvailable: b.AvengerAvailable,
	}
}

// FromSnapshot rebuilds a Board from its persisted form. It validates the
// fleet against the no-touch rule and returns ErrInvariantViolation
// (Fatal, per SPEC_FULL.md §9) if the stored placement could never have
// been produced by this engine.
func FromSnapshot(s Snapshot) (*Board, error) {
	b := New(s.ID)

	for _, ss := range s.Battleships {
		bs := geometry.NewPlacement(ss.Shape, ss.X, ss.Y, ss.Rotation)
		if !b.CanPlace(bs) {
			return nil, ErrInvariantViolation
		}
		b.place(bs)
	}

	for _, xy := range s.Discovered {
		x, y := xy[0], xy[1]
		if !b.inBounds(x, y) {
			return nil, ErrInvariantViolation
		}
		b.discoverCell(x, y, true)
	}

	// The move count derived from replaying discoveries must match the
	// persisted counter; a mismatch means the blob was tampered with or
	// corrupted (DataError at the transport boundary).
	if b.MoveCount != s.MoveCount {
		return nil, ErrInvariantViolation
	}

	b.AvengerAvailable = s.AvengerAvailable

	return b, nil
}
