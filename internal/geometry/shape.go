// Package geometry defines the canonical fleet shapes and the rotation
// math shared by the authoritative board and the bot's belief model.
package geometry

import "fmt"

// ShapeType identifies one of the six fixed ships in the fleet.
type ShapeType string

// The six ships of the fleet, in descending size order.
const (
	Helicarrier ShapeType = "HELICARRIER"
	Carrier     ShapeType = "CARRIER"
	Battleship  ShapeType = "BATTLESHIP"
	Destroyer   ShapeType = "DESTROYER"
	Submarine   ShapeType = "SUBMARINE"
	PatrolBoat  ShapeType = "PATROL_BOAT"
)

// ShapeTypesBySize lists every ship type in descending cell count. The
// placement generator relies on this exact order: the helicarrier is the
// hardest to fit and must be placed first.
var ShapeTypesBySize = []ShapeType{Helicarrier, Carrier, Battleship, Destroyer, Submarine, PatrolBoat}

// Rotation is the placement direction of a ship.
type Rotation int

// The two possible rotations.
const (
	Vertical Rotation = iota
	Horizontal
)

// Coordinate is a (x,y) position on a 12x12 board.
type Coordinate struct {
	X, Y int
}

// Shape is the immutable, interned canonical layout of one ship type.
// Grid is row-major over [height][width] in the VERTICAL orientation;
// Cells lists the relative (x,y) offsets of occupied tiles.
type Shape struct {
	Type   ShapeType
	Grid   [][]bool
	Width  int
	Height int
	Cells  []Coordinate
}

var shapeTable = map[ShapeType]*Shape{}

func init() {
	layouts := map[ShapeType][]string{
		// Cross/plus layout: 1+3+3+3+1 = 11 cells, matching the spec's
		// stated cell count and its "four interior gap cells" (the
		// corner dots) referenced when a fully-discovered helicarrier
		// forces its gaps to water.
		Helicarrier: {".X.", "XXX", "XXX", "XXX", ".X."},
		Carrier:     {"X"},
		Battleship:  {"X"},
		Destroyer:   {"X"},
		Submarine:   {"X"},
		PatrolBoat:  {"X"},
	}

	sizes := map[ShapeType]int{
		Carrier:    5,
		Battleship: 4,
		Destroyer:  3,
		Submarine:  3,
		PatrolBoat: 2,
	}

	for _, t := range ShapeTypesBySize {
		var rows []string
		if t == Helicarrier {
			rows = layouts[t]
		} else {
			row := layouts[t][0]
			rows = make([]string, sizes[t])
			for i := range rows {
				rows[i] = row
			}
		}
		shapeTable[t] = buildShape(t, rows)
	}
}

func buildShape(t ShapeType, rows []string) *Shape {
	height := len(rows)
	width := len(rows[0])

	grid := make([][]bool, height)
	var cells []Coordinate
	for y, row := range rows {
		grid[y] = make([]bool, width)
		for x, c := range row {
			if c == 'X' {
				grid[y][x] = true
				cells = append(cells, Coordinate{X: x, Y: y})
			}
		}
	}

	return &Shape{Type: t, Grid: grid, Width: width, Height: height, Cells: cells}
}

// ShapeOf returns the interned canonical Shape for a ShapeType.
// It panics on an unknown type, which can only happen from a programming
// error since ShapeType is a closed set.
func ShapeOf(t ShapeType) *Shape {
	s, ok := shapeTable[t]
	if !ok {
		panic(fmt.Sprintf("geometry: unknown shape type %q", t))
	}
	return s
}

// Size returns the number of occupied cells for the shape type.
func (t ShapeType) Size() int {
	return len(ShapeOf(t).Cells)
}

// Dimensions returns the (width, height) of the shape under the given
// rotation. HORIZONTAL swaps the canonical VERTICAL width/height.
func Dimensions(t ShapeType, r Rotation) (width, height int) {
	s := ShapeOf(t)
	if r == Horizontal {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}
