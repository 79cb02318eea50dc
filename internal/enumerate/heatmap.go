package enumerate

import (
	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// Edge bias multipliers applied to a whole candidate placement when it
// hugs a board edge in a way that historically correlates with opponent
// placement habits (spec.md §4.9). Halved from the raw constants the spec
// quotes, matching its "divide by two to keep the scale comparable to the
// target_mode multiplier" note.
const (
	edgeBiasColumnZero = 10.9 / 2
	edgeBiasRowZero    = 7.83 / 2
)

// Biases holds the tunable multiplier grids applied during heat-map
// synthesis. Every grid defaults to 1 (no bias) via DefaultBiases.
type Biases struct {
	// Shape multiplies a cell's contribution by shape type; indexed
	// [shapeType][y][x].
	Shape map[geometry.ShapeType][belief.Size][belief.Size]float64
	// Cell multiplies the final per-cell heat regardless of shape.
	Cell [belief.Size][belief.Size]float64
}

// DefaultBiases returns a Biases with every multiplier set to 1.
func DefaultBiases() Biases {
	b := Biases{Shape: map[geometry.ShapeType][belief.Size][belief.Size]float64{}}
	var ones [belief.Size][belief.Size]float64
	for y := 0; y < belief.Size; y++ {
		for x := 0; x < belief.Size; x++ {
			ones[y][x] = 1
			b.Cell[y][x] = 1
		}
	}
	for _, t := range geometry.ShapeTypesBySize {
		b.Shape[t] = ones
	}
	return b
}

func (b Biases) shapeBias(t geometry.ShapeType, x, y int) float64 {
	grid, ok := b.Shape[t]
	if !ok {
		return 1
	}
	return grid[y][x]
}

func edgeBias(p geometry.Placement) float64 {
	mul := 1.0
	if p.X == 0 && p.Y != 0 && p.Rotation == geometry.Horizontal {
		mul *= edgeBiasColumnZero
	}
	if p.Y == 0 && p.X != 0 && p.Rotation == geometry.Vertical {
		mul *= edgeBiasRowZero
	}
	return mul
}

// SynthesizeHeatMap computes m.Heat for every still-UNKNOWN cell from r's
// per-placement frequencies (spec.md §4.9):
//
//  1. for every candidate placement, weight = frequency, x100 if
//     target_mode, x the placement's edge bias;
//  2. distribute that weight into each occupied cell, further scaled by
//     the shape-type bias for that cell;
//  3. normalize accumulated cell weight by validConfigurations and apply
//     the flat per-cell bias;
//  4. any UNKNOWN cell left at zero heat is demoted to WATER: no valid
//     configuration ever put a ship there.
func SynthesizeHeatMap(m *belief.Map, r *Result, biases Biases) {
	var cellWeight [belief.Size][belief.Size]float64

	for shapeType, candidates := range r.CandidatesByType {
		for _, c := range candidates {
			freq := r.FrequencyOf(c)
			if freq == 0 {
				continue
			}

			w := float64(freq)
			if c.TargetMode {
				w *= 100
			}
			w *= edgeBias(c.Placement)

			for _, cell := range c.Placement.Cells() {
				cellWeight[cell.Y][cell.X] += w * biases.shapeBias(shapeType, cell.X, cell.Y)
			}
		}
	}

	denom := float64(r.ValidConfigurations)
	if denom == 0 {
		denom = 1
	}

	for y := 0; y < belief.Size; y++ {
		for x := 0; x < belief.Size; x++ {
			switch {
			case m.Inferred[y][x] == board.Ship:
				m.Heat[y][x] = belief.HeatMaxValue
			case m.Inferred[y][x] == board.Water:
				m.Heat[y][x] = belief.HeatNoValue
			default:
				heat := cellWeight[y][x] * 1000 / denom * biases.Cell[y][x]
				m.Heat[y][x] = heat
				if heat == 0 {
					m.Inferred[y][x] = board.Water
				}
			}
		}
	}
}
