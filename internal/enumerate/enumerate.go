package enumerate

import (
	"math/rand"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// Default tuning constants (spec.md §4.9). Exposed as variables on Options
// so tests can shrink them instead of waiting on a 10,000,000-configuration
// exhaustive search or a 1,000,000-attempt Monte Carlo loop.
const (
	DefaultExhaustiveThreshold = 10_000_000
	DefaultMonteCarloAttempts  = 1_000_000
	DefaultMonteCarloAccepted  = 10_000
)

// Options tunes the exhaustive/Monte Carlo boundary and sampling budget.
type Options struct {
	ExhaustiveThreshold int
	MonteCarloAttempts  int
	MonteCarloAccepted  int
}

// DefaultOptions returns the spec's production tuning constants.
func DefaultOptions() Options {
	return Options{
		ExhaustiveThreshold: DefaultExhaustiveThreshold,
		MonteCarloAttempts:  DefaultMonteCarloAttempts,
		MonteCarloAccepted:  DefaultMonteCarloAccepted,
	}
}

// Result holds the outcome of one enumeration pass: per-shape candidate
// lists, how many of the (possibly sampled) configurations each specific
// placement appeared in, and the total number of valid configurations
// counted (or accepted samples, in the Monte Carlo branch).
type Result struct {
	CandidatesByType     map[geometry.ShapeType][]Candidate
	ValidConfigurations  int
	Exhaustive           bool
	frequency            map[key]int
}

// FrequencyOf returns how many valid configurations placed c's candidate
// exactly where it is.
func (r *Result) FrequencyOf(c Candidate) int {
	return r.frequency[keyOf(c.Placement)]
}

// Enumerate runs the Configuration Enumerator over the current belief
// state: it computes per-shape candidates, decides between exhaustive
// backtracking and Monte Carlo sampling based on the product of candidate
// counts, and returns per-placement frequencies across all discovered
// valid fleet configurations.
func Enumerate(m *belief.Map, rng *rand.Rand, opts Options) *Result {
	ensureUniverse()

	candidatesByType := CandidatesByType(m)

	r := &Result{
		CandidatesByType: candidatesByType,
		frequency:        map[key]int{},
	}

	unconfirmed := m.UnconfirmedShapeTypes()
	if len(unconfirmed) == 0 {
		return r
	}

	total := 1
	overflowed := false
	for _, t := range unconfirmed {
		n := len(candidatesByType[t])
		if n == 0 {
			// No valid placement remains for an unconfirmed shape: the
			// belief state has zero valid configurations. Leave the
			// result empty; the caller (propagator/targeting) treats
			// this as "nothing more to deduce here".
			return r
		}
		total *= n
		if total > opts.ExhaustiveThreshold {
			overflowed = true
			break
		}
	}

	// Reverse insertion order: the shapes are tried smallest-first, since
	// the largest (hardest to fit) shape type was the first appended to
	// geometry.ShapeTypesBySize.
	order := make([]geometry.ShapeType, len(unconfirmed))
	for i, t := range unconfirmed {
		order[len(unconfirmed)-1-i] = t
	}

	if !overflowed {
		r.Exhaustive = true
		chosen := make([]geometry.Placement, 0, len(order))
		exhaustiveDFS(candidatesByType, order, 0, chosen, r)
		return r
	}

	monteCarlo(candidatesByType, order, rng, opts, r)
	return r
}

func exhaustiveDFS(
	candidatesByType map[geometry.ShapeType][]Candidate,
	order []geometry.ShapeType,
	depth int,
	chosen []geometry.Placement,
	r *Result,
) {
	if depth == len(order) {
		r.ValidConfigurations++
		for _, b := range chosen {
			r.frequency[keyOf(b)]++
		}
		return
	}

	for _, c := range candidatesByType[order[depth]] {
		if conflictsWithAny(c.Placement, chosen) {
			continue
		}
		exhaustiveDFS(candidatesByType, order, depth+1, append(chosen, c.Placement), r)
	}
}

func conflictsWithAny(p geometry.Placement, chosen []geometry.Placement) bool {
	for _, c := range chosen {
		if Incompatible(p, c) {
			return true
		}
	}
	return false
}

func monteCarlo(
	candidatesByType map[geometry.ShapeType][]Candidate,
	order []geometry.ShapeType,
	rng *rand.Rand,
	opts Options,
	r *Result,
) {
	accepted := 0
	sample := make([]geometry.Placement, len(order))

	for attempt := 0; attempt < opts.MonteCarloAttempts || accepted < opts.MonteCarloAccepted; attempt++ {
		if attempt >= opts.MonteCarloAttempts*10 {
			// Defensive backstop: candidate sets too constrained to reach
			// the acceptance target within a reasonable multiple of the
			// attempt budget. Stop rather than loop indefinitely.
			break
		}

		ok := true
		for i, t := range order {
			candidates := candidatesByType[t]
			sample[i] = candidates[rng.Intn(len(candidates))].Placement
		}

		for i := 0; i < len(sample) && ok; i++ {
			for j := i + 1; j < len(sample); j++ {
				if Incompatible(sample[i], sample[j]) {
					ok = false
					break
				}
			}
		}

		if !ok {
			continue
		}

		accepted++
		r.ValidConfigurations++
		for _, b := range sample {
			r.frequency[keyOf(b)]++
		}
	}
}
