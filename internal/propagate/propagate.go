// Package propagate implements the constraint propagator: the iterative
// deduction pass that confirms ships and infers water from the current
// belief state, run to a fixpoint after every shot (spec.md §4.6).
package propagate

import (
	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// submarineDestroyerPair is the one pair of shape types that share
// identical geometry (both 1x3), so a cell's candidate shapes can
// legitimately resolve to "definitely one of these two" without
// resolving which. SPEC_FULL.md §6.6 / spec.md §4.6's unique-shape rule
// calls this out by name.
var submarineDestroyerPair = map[geometry.ShapeType]bool{geometry.Submarine: true, geometry.Destroyer: true}

// Run iterates the propagator to a fixpoint: each pass scans every SHIP
// cell without a confirmed ship, applies the unique-shape and
// unique-unknown-free rules, and restarts after any confirmation (a newly
// confirmed ship's neighbour-to-water demotions can unlock further
// deductions). It returns the number of ships confirmed this call.
func Run(m *belief.Map) (int, error) {
	total := 0

	for {
		confirmed, err := pass(m)
		if err != nil {
			return total, err
		}
		total += confirmed
		if confirmed == 0 {
			return total, nil
		}
	}
}

func pass(m *belief.Map) (int, error) {
	for y := 0; y < belief.Size; y++ {
		for x := 0; x < belief.Size; x++ {
			if m.Inferred[y][x] != board.Ship || m.Confirmed[y][x] != nil {
				continue
			}

			confirmed, err := deduceCell(m, x, y)
			if err != nil {
				return 0, err
			}
			if confirmed {
				// Restart the pass: state changed underfoot.
				return 1, nil
			}
		}
	}
	return 0, nil
}

func deduceCell(m *belief.Map, x, y int) (bool, error) {
	if ok, err := applyUniqueShapeRule(m, x, y); err != nil || ok {
		return ok, err
	}
	return applyUniqueUnknownFreeRule(m, x, y)
}

// applyUniqueShapeRule implements the unique-shape rule: determine which
// shape types could still occupy (x,y), and if that set narrows to one
// shape (or to the submarine/destroyer geometry-sharing pair), confirm
// its sole remaining placement when unambiguous.
func applyUniqueShapeRule(m *belief.Map, x, y int) (bool, error) {
	candidateTypes := candidateShapeTypes(m, x, y)

	placementsByType := map[geometry.ShapeType][]geometry.Placement{}
	var valid []geometry.ShapeType
	for _, t := range candidateTypes {
		placements := placementsCovering(m, t, x, y)
		if len(placements) > 0 {
			valid = append(valid, t)
			placementsByType[t] = placements
		}
	}

	switch {
	case len(valid) == 1:
		t := valid[0]
		if len(placementsByType[t]) == 1 {
			return true, m.Confirm(placementsByType[t][0])
		}
		return false, nil

	case len(valid) == 2 && submarineDestroyerPair[valid[0]] && submarineDestroyerPair[valid[1]]:
		shared, ok := uniqueSharedFootprint(placementsByType[valid[0]], placementsByType[valid[1]])
		if !ok {
			return false, nil
		}
		// Deterministic tie-break (spec.md §9 open question): prefer
		// DESTROYER, which sorts first in geometry.ShapeTypesBySize,
		// but fall back to SUBMARINE if DESTROYER already got
		// confirmed elsewhere and merely lingers in this cell's stale
		// PossibleShapes set — confirming an already-confirmed type
		// would abort the whole propagation pass.
		preferred := geometry.Destroyer
		if m.ConfirmedShapeTypes[preferred] {
			preferred = geometry.Submarine
		}
		return true, m.Confirm(shared.with(preferred))

	default:
		return false, nil
	}
}

// applyUniqueUnknownFreeRule implements the unique-unknown-free rule: if
// the largest still-unconfirmed shape type has exactly one placement
// covering (x,y) whose SHIP cells are entirely already-inferred SHIP
// (no UNKNOWN overlay), confirm it.
func applyUniqueUnknownFreeRule(m *belief.Map, x, y int) (bool, error) {
	largest := largestUnconfirmed(m)
	if largest == "" {
		return false, nil
	}

	var unknownFree []geometry.Placement
	for _, p := range placementsCovering(m, largest, x, y) {
		if allInferredShip(m, p) {
			unknownFree = append(unknownFree, p)
		}
	}

	if len(unknownFree) == 1 {
		return true, m.Confirm(unknownFree[0])
	}
	return false, nil
}

func candidateShapeTypes(m *belief.Map, x, y int) []geometry.ShapeType {
	if possible := m.PossibleShapes[y][x]; len(possible) > 0 {
		out := make([]geometry.ShapeType, 0, len(possible))
		for t := range possible {
			out = append(out, t)
		}
		return out
	}
	return m.UnconfirmedShapeTypes()
}

func placementsCovering(m *belief.Map, shapeType geometry.ShapeType, x, y int) []geometry.Placement {
	var out []geometry.Placement
	for _, rotation := range []geometry.Rotation{geometry.Vertical, geometry.Horizontal} {
		w, h := geometry.Dimensions(shapeType, rotation)
		for anchorY := y - h + 1; anchorY <= y; anchorY++ {
			for anchorX := x - w + 1; anchorX <= x; anchorX++ {
				candidate := geometry.NewPlacement(shapeType, anchorX, anchorY, rotation)
				if !coversCell(candidate, x, y) {
					continue
				}
				if m.IsConsistent(candidate) {
					out = append(out, candidate)
				}
			}
		}
	}
	return out
}

func coversCell(b geometry.Placement, x, y int) bool {
	for _, c := range b.Cells() {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

func allInferredShip(m *belief.Map, b geometry.Placement) bool {
	for _, c := range b.Cells() {
		if m.Inferred[c.Y][c.X] != board.Ship {
			return false
		}
	}
	return true
}

func largestUnconfirmed(m *belief.Map) geometry.ShapeType {
	for _, t := range geometry.ShapeTypesBySize {
		if !m.ConfirmedShapeTypes[t] {
			return t
		}
	}
	return ""
}

// footprint is a (x,y,rotation) anchor shared by both submarine and
// destroyer candidates, since the two shapes are geometrically identical.
type footprint struct {
	x, y     int
	rotation geometry.Rotation
}

func (f footprint) with(t geometry.ShapeType) geometry.Placement {
	return geometry.NewPlacement(t, f.x, f.y, f.rotation)
}

// uniqueSharedFootprint reports whether the union of a's and b's
// placements collapses to exactly one physical (x,y,rotation) anchor.
func uniqueSharedFootprint(a, b []geometry.Placement) (footprint, bool) {
	seen := map[footprint]bool{}
	for _, p := range a {
		seen[footprint{p.X, p.Y, p.Rotation}] = true
	}
	for _, p := range b {
		seen[footprint{p.X, p.Y, p.Rotation}] = true
	}

	if len(seen) != 1 {
		return footprint{}, false
	}
	for f := range seen {
		return f, true
	}
	return footprint{}, false
}
