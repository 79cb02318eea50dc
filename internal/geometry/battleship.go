package geometry

// Placement is a concrete placement of a Shape on the board: its type,
// anchor coordinate, and rotation. The occupied-cells cache makes the
// struct unsuitable for == or map keys, so equality is structural on the
// four placement fields via Equal instead.
type Placement struct {
	Type      ShapeType
	X, Y      int
	Rotation  Rotation
	occupied  []Coordinate
	precached bool
}

// NewPlacement builds a Placement with its absolute occupied cells
// precomputed.
func NewPlacement(t ShapeType, x, y int, r Rotation) Placement {
	b := Placement{Type: t, X: x, Y: y, Rotation: r}
	b.occupied = ShipCells(b)
	b.precached = true
	return b
}

// ShipCells returns the absolute occupied coordinates of a placement,
// applying rotation as an axis swap of the canonical shape's relative
// cells.
func ShipCells(b Placement) []Coordinate {
	shape := ShapeOf(b.Type)
	cells := make([]Coordinate, len(shape.Cells))
	for i, c := range shape.Cells {
		dx, dy := c.X, c.Y
		if b.Rotation == Horizontal {
			dx, dy = dy, dx
		}
		cells[i] = Coordinate{X: b.X + dx, Y: b.Y + dy}
	}
	return cells
}

// Cells returns the placement's absolute occupied coordinates, using the
// precomputed cache when the value was built via NewPlacement.
func (b Placement) Cells() []Coordinate {
	if b.precached {
		return b.occupied
	}
	return ShipCells(b)
}

// helicarrierGapOffsets are the four corner cells of the helicarrier's
// 3x5 bounding box that are never occupied by the ship itself.
var helicarrierGapOffsets = []Coordinate{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 4}}

// HelicarrierGapCells returns the absolute coordinates of the four
// interior gap cells of a placed helicarrier, applying the same
// rotation axis swap as ShipCells. It panics if b is not a helicarrier.
func HelicarrierGapCells(b Placement) []Coordinate {
	if b.Type != Helicarrier {
		panic("geometry: HelicarrierGapCells called on a non-helicarrier placement")
	}

	cells := make([]Coordinate, len(helicarrierGapOffsets))
	for i, o := range helicarrierGapOffsets {
		dx, dy := o.X, o.Y
		if b.Rotation == Horizontal {
			dx, dy = dy, dx
		}
		cells[i] = Coordinate{X: b.X + dx, Y: b.Y + dy}
	}
	return cells
}

// Dimensions returns the (width, height) footprint of the placement.
func (b Placement) Dimensions() (width, height int) {
	return Dimensions(b.Type, b.Rotation)
}

// Equal reports structural equality on (Type, X, Y, Rotation).
func (b Placement) Equal(other Placement) bool {
	return b.Type == other.Type && b.X == other.X && b.Y == other.Y && b.Rotation == other.Rotation
}

// Neighbours returns the 8 neighbouring coordinates of c (not including c
// itself), skipping any that fall off a board of the given size. This
// replaces the reference's exception-based bounds scanning (spec §9) with
// an explicit predicate.
func Neighbours(c Coordinate, boardSize int) []Coordinate {
	var out []Coordinate
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if InBounds(n, boardSize) {
				out = append(out, n)
			}
		}
	}
	return out
}

// InBounds reports whether c lies within a boardSize x boardSize grid.
func InBounds(c Coordinate, boardSize int) bool {
	return c.X >= 0 && c.X < boardSize && c.Y >= 0 && c.Y < boardSize
}
