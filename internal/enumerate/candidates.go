package enumerate

import (
	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// Candidate is one still-possible placement of an unconfirmed shape type.
type Candidate struct {
	Placement  geometry.Placement
	TargetMode bool
}

// CandidatesForShape returns every placement of shapeType consistent with
// the current belief state, flagging each as target_mode when at least one
// of its SHIP cells already lies on a currently inferred-SHIP cell (i.e. it
// would extend a live, unconfirmed hit rather than merely fit an unknown
// region). See spec.md §4.9.
func CandidatesForShape(m *belief.Map, shapeType geometry.ShapeType) []Candidate {
	ensureUniverse()

	var out []Candidate
	for _, p := range universe[shapeType] {
		if !m.IsConsistent(p) {
			continue
		}
		out = append(out, Candidate{Placement: p, TargetMode: hitsLiveShip(m, p)})
	}
	return out
}

func hitsLiveShip(m *belief.Map, p geometry.Placement) bool {
	for _, c := range p.Cells() {
		if m.Inferred[c.Y][c.X] == board.Ship && m.Confirmed[c.Y][c.X] == nil {
			return true
		}
	}
	return false
}

// CandidatesByType returns CandidatesForShape for every shape type not yet
// confirmed in m.
func CandidatesByType(m *belief.Map) map[geometry.ShapeType][]Candidate {
	out := map[geometry.ShapeType][]Candidate{}
	for _, t := range m.UnconfirmedShapeTypes() {
		out[t] = CandidatesForShape(m, t)
	}
	return out
}
