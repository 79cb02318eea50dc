package enumerate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/geometry"
)

// biasesDocument is the on-disk JSON shape of a Biases grid set, written
// by cmd/biastool and loaded at targeting-process startup.
type biasesDocument struct {
	Shape map[geometry.ShapeType][belief.Size][belief.Size]float64 `json:"shape"`
	Cell  [belief.Size][belief.Size]float64                        `json:"cell"`
}

// LoadBiases reads a Biases grid set written by cmd/biastool. A missing
// file is not an error: callers fall back to DefaultBiases.
func LoadBiases(path string) (Biases, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultBiases(), nil
	}
	if err != nil {
		return Biases{}, fmt.Errorf("enumerate: reading biases %q: %w", path, err)
	}

	var doc biasesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Biases{}, fmt.Errorf("enumerate: decoding biases %q: %w", path, err)
	}

	b := DefaultBiases()
	b.Cell = doc.Cell
	for shapeType, grid := range doc.Shape {
		b.Shape[shapeType] = grid
	}
	return b, nil
}

// SaveBiases writes b to path as the JSON document LoadBiases reads.
func SaveBiases(path string, b Biases) error {
	doc := biasesDocument{Shape: b.Shape, Cell: b.Cell}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("enumerate: encoding biases: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
