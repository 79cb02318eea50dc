// Package enumerate implements the Configuration Enumerator: candidate
// placement discovery with incompatibility precomputation, exhaustive or
// Monte Carlo enumeration of consistent fleet configurations, and the
// heat-map synthesis that drives targeting (spec.md §4.9).
package enumerate

import (
	"sync"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/geometry"
)

const boardSize = belief.Size

// key is a comparable stand-in for geometry.Placement (which carries an
// unexported slice field and so cannot itself be used as a map key).
type key struct {
	Type     geometry.ShapeType
	X, Y     int
	Rotation geometry.Rotation
}

func keyOf(b geometry.Placement) key {
	return key{Type: b.Type, X: b.X, Y: b.Y, Rotation: b.Rotation}
}

var (
	universeOnce  sync.Once
	universe      map[geometry.ShapeType][]geometry.Placement
	incompatTable map[key]map[key]bool
)

// buildUniverse returns, per shape type, every placement that fits within
// board bounds, ignoring occupancy. This is the static geometric universe the
// incompatibility table is precomputed over (spec.md §4.9: "done once at
// process start over a 12x12 empty belief").
func buildUniverse() map[geometry.ShapeType][]geometry.Placement {
	out := make(map[geometry.ShapeType][]geometry.Placement, len(geometry.ShapeTypesBySize))

	for _, t := range geometry.ShapeTypesBySize {
		var placements []geometry.Placement
		for _, rotation := range []geometry.Rotation{geometry.Vertical, geometry.Horizontal} {
			w, h := geometry.Dimensions(t, rotation)
			for y := 0; y <= boardSize-h; y++ {
				for x := 0; x <= boardSize-w; x++ {
					placements = append(placements, geometry.NewPlacement(t, x, y, rotation))
				}
			}
		}
		out[t] = placements
	}

	return out
}

// buildIncompatibilityTable precomputes, for every pair of placements
// across different shape types, whether they overlap or violate the
// no-touch rule. Only incompatible pairs are recorded; a compatible pair
// has no entry.
func buildIncompatibilityTable(u map[geometry.ShapeType][]geometry.Placement) map[key]map[key]bool {
	table := make(map[key]map[key]bool)

	for i, typeA := range geometry.ShapeTypesBySize {
		for _, typeB := range geometry.ShapeTypesBySize[i+1:] {
			for _, a := range u[typeA] {
				for _, b := range u[typeB] {
					if !geometricallyIncompatible(a, b) {
						continue
					}
					recordIncompatible(table, keyOf(a), keyOf(b))
					recordIncompatible(table, keyOf(b), keyOf(a))
				}
			}
		}
	}

	return table
}

func recordIncompatible(table map[key]map[key]bool, a, b key) {
	if table[a] == nil {
		table[a] = make(map[key]bool)
	}
	table[a][b] = true
}

// geometricallyIncompatible reports whether a and b overlap or touch
// (Chebyshev distance <= 1 between some pair of their occupied cells).
func geometricallyIncompatible(a, b geometry.Placement) bool {
	for _, ca := range a.Cells() {
		for _, cb := range b.Cells() {
			dx := ca.X - cb.X
			if dx < 0 {
				dx = -dx
			}
			dy := ca.Y - cb.Y
			if dy < 0 {
				dy = -dy
			}
			if dx <= 1 && dy <= 1 {
				return true
			}
		}
	}
	return false
}

func ensureUniverse() {
	universeOnce.Do(func() {
		universe = buildUniverse()
		incompatTable = buildIncompatibilityTable(universe)
	})
}

// Incompatible reports whether a and b can never coexist in a valid fleet
// configuration. A pair recorded in the precomputed table is answered
// from it; every other pair (including every compatible pair, and ad hoc
// placements built in tests) is answered by a direct geometric check.
func Incompatible(a, b geometry.Placement) bool {
	ensureUniverse()

	if sub, ok := incompatTable[keyOf(a)]; ok {
		if v, ok := sub[keyOf(b)]; ok {
			return v
		}
	}
	return geometricallyIncompatible(a, b)
}
