// Package targeting implements the Targeting Policy: choosing which cell
// to fire at next from a belief map's heat grid, and when to spend an
// avenger power-up (spec.md §4.9's downstream consumer, SPEC_FULL.md
// §6.10).
package targeting

import (
	"errors"
	"math"
	"math/rand"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/enumerate"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// ErrNoTargetsRemaining is returned when every cell has already been
// fired at (the board is fully discovered).
var ErrNoTargetsRemaining = errors.New("targeting: no unfired cells remain")

// boardCenter is the board's geometric centre, used by the optional
// centre-biased tie-break.
const boardCenter = float64(belief.Size-1) / 2

// NextShot picks the next cell to fire at: the highest-heat cell among
// those the judge has never revealed (m.Original still UNKNOWN). Ties are
// broken uniformly at random, unless centerBiased is set, in which case
// the tied cell closest to the board's centre wins (early-game shots
// cluster centrally, where more ship placements overlap).
func NextShot(m *belief.Map, rng *rand.Rand, centerBiased bool) (x, y int, err error) {
	best := -1.0
	var tied []geometry.Coordinate

	for cy := 0; cy < belief.Size; cy++ {
		for cx := 0; cx < belief.Size; cx++ {
			if m.Original[cy][cx] != board.Unknown {
				continue
			}
			h := m.Heat[cy][cx]
			switch {
			case h > best:
				best = h
				tied = []geometry.Coordinate{{X: cx, Y: cy}}
			case h == best:
				tied = append(tied, geometry.Coordinate{X: cx, Y: cy})
			}
		}
	}

	if len(tied) == 0 {
		return 0, 0, ErrNoTargetsRemaining
	}
	if len(tied) == 1 {
		return tied[0].X, tied[0].Y, nil
	}

	if centerBiased {
		c := closestToCenter(tied)
		return c.X, c.Y, nil
	}

	pick := tied[rng.Intn(len(tied))]
	return pick.X, pick.Y, nil
}

func closestToCenter(cells []geometry.Coordinate) geometry.Coordinate {
	best := cells[0]
	bestDist := centerDistance(best)
	for _, c := range cells[1:] {
		d := centerDistance(c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func centerDistance(c geometry.Coordinate) float64 {
	dx := float64(c.X) - boardCenter
	dy := float64(c.Y) - boardCenter
	return math.Hypot(dx, dy)
}

// Tuning constants for the avenger-use heuristic. A "large" wounded ship
// is worth finishing off with HULK; THOR is most valuable early, when a
// broadcast reveal has the most unexplored cells to land on; IRON_MAN is
// the fallback once the hunt has stalled with no live hit to chase.
const (
	largeShipMinSize      = 4
	thorEarlyGameMoves    = 15
	ironManStallThreshold = 40
)

// DecideAvenger applies the targeting policy's avenger-use heuristic and
// returns which avenger to spend this turn, if any. The caller fires it
// at whatever coordinate NextShot already chose: every avenger type
// resolves its base shot the same way (spec.md §4.3), so the policy only
// needs to decide the power-up, not a separate target.
func DecideAvenger(m *belief.Map, result *enumerate.Result, moveCount int) (board.AvengerType, bool) {
	if hasLargeWoundedShape(m, result) {
		return board.Hulk, true
	}

	if moveCount < thorEarlyGameMoves {
		return board.Thor, true
	}

	if moveCount >= ironManStallThreshold && !hasLiveTarget(m) {
		return board.IronMan, true
	}

	return "", false
}

// hasLargeWoundedShape reports whether some unconfirmed shape of size >=
// largeShipMinSize currently has a target_mode candidate, i.e. a
// live-hit cell that plausibly belongs to it. HULK on that cell's ship
// reveals the rest of it outright.
func hasLargeWoundedShape(m *belief.Map, result *enumerate.Result) bool {
	for shapeType, candidates := range result.CandidatesByType {
		if shapeType.Size() < largeShipMinSize {
			continue
		}
		for _, c := range candidates {
			if !c.TargetMode {
				continue
			}
			for _, cell := range c.Placement.Cells() {
				if m.Inferred[cell.Y][cell.X] == board.Ship && m.Confirmed[cell.Y][cell.X] == nil {
					return true
				}
			}
		}
	}
	return false
}

// hasLiveTarget reports whether any cell is a confirmed-unowned SHIP hit
// still awaiting the rest of its ship to be found.
func hasLiveTarget(m *belief.Map) bool {
	for y := 0; y < belief.Size; y++ {
		for x := 0; x < belief.Size; x++ {
			if m.Inferred[y][x] == board.Ship && m.Confirmed[y][x] == nil {
				return true
			}
		}
	}
	return false
}
