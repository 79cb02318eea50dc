// Command biastool recomputes the per-shape heat-map bias grids from a
// directory of recorded games (board.Snapshot JSON, the same
// submit_*.data format the reference-game map loader reads) and writes
// them to a file cmd/cli loads at startup with -biases-file. The flat
// per-cell grid is written at its default of all ones.
//
// The heuristic is simple: for each recorded game, the final board
// reveals every ship's true placement. A cell that hosted a ship more
// often across the corpus than the uniform baseline gets a bias above 1;
// a cell that rarely did gets a bias below 1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/enumerate"
	"github.com/callegarimattia/battleship/internal/geometry"
)

func main() {
	gamesDir := flag.String("games-dir", "", "directory of recorded board.Snapshot JSON files")
	outFile := flag.String("out", "biases.json", "path to write the recomputed biases grid set")
	flag.Parse()

	if *gamesDir == "" {
		fmt.Fprintln(os.Stderr, "usage: biastool -games-dir <dir> [-out biases.json]")
		os.Exit(1)
	}

	snapshots, err := loadSnapshots(*gamesDir)
	if err != nil {
		log.Fatalf("failed to load recorded games: %v", err)
	}
	if len(snapshots) == 0 {
		log.Fatalf("no recorded games found under %s", *gamesDir)
	}

	biases := computeBiases(snapshots)

	if err := enumerate.SaveBiases(*outFile, biases); err != nil {
		log.Fatalf("failed to write biases: %v", err)
	}

	fmt.Printf("recomputed biases from %d recorded games, wrote %s\n", len(snapshots), *outFile)
}

func loadSnapshots(dir string) ([]board.Snapshot, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.data"))
	if err != nil {
		return nil, err
	}

	snapshots := make([]board.Snapshot, 0, len(entries))
	for _, path := range entries {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var snap board.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

// computeBiases counts, per shape type, how often each cell was occupied
// across every recorded game, then normalizes each shape's grid so its
// average cell value is 1 (a cell hit twice as often as average gets a
// bias of 2).
func computeBiases(snapshots []board.Snapshot) enumerate.Biases {
	biases := enumerate.DefaultBiases()

	counts := map[geometry.ShapeType]*[belief.Size][belief.Size]int{}
	occurrences := map[geometry.ShapeType]int{}
	for _, t := range geometry.ShapeTypesBySize {
		counts[t] = &[belief.Size][belief.Size]int{}
	}

	for _, snap := range snapshots {
		for _, ship := range snap.Battleships {
			grid := counts[ship.Shape]
			if grid == nil {
				continue
			}
			placement := geometry.NewPlacement(ship.Shape, ship.X, ship.Y, ship.Rotation)
			for _, cell := range placement.Cells() {
				grid[cell.Y][cell.X]++
			}
			occurrences[ship.Shape]++
		}
	}

	for t, grid := range counts {
		total := occurrences[t]
		if total == 0 {
			continue
		}

		var sum int
		for y := 0; y < belief.Size; y++ {
			for x := 0; x < belief.Size; x++ {
				sum += grid[y][x]
			}
		}
		if sum == 0 {
			continue
		}
		avg := float64(sum) / float64(belief.Size*belief.Size)

		var biased [belief.Size][belief.Size]float64
		for y := 0; y < belief.Size; y++ {
			for x := 0; x < belief.Size; x++ {
				biased[y][x] = float64(grid[y][x]) / avg
			}
		}
		biases.Shape[t] = biased
	}

	return biases
}
