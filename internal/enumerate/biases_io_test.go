package enumerate_test

import (
	"path/filepath"
	"testing"

	"github.com/callegarimattia/battleship/internal/enumerate"
	"github.com/callegarimattia/battleship/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBiases_MissingFileReturnsDefault(t *testing.T) {
	t.Parallel()

	b, err := enumerate.LoadBiases(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, enumerate.DefaultBiases(), b)
}

func TestSaveThenLoadBiases_RoundTrips(t *testing.T) {
	t.Parallel()

	biases := enumerate.DefaultBiases()
	shape := biases.Shape[geometry.Helicarrier]
	shape[0][0] = 2.5
	biases.Shape[geometry.Helicarrier] = shape
	biases.Cell[1][1] = 0.3

	path := filepath.Join(t.TempDir(), "biases.json")
	require.NoError(t, enumerate.SaveBiases(path, biases))

	loaded, err := enumerate.LoadBiases(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, loaded.Shape[geometry.Helicarrier][0][0])
	assert.Equal(t, 0.3, loaded.Cell[1][1])
}
