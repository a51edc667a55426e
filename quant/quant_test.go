package quant_test

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/dargueta/squash"
	"github.com/dargueta/squash/quant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize__SnapsToLattice(t *testing.T) {
	grid := [][]uint8{{0, 15, 16, 31}}

	quantized, err := quant.Quantize(grid, 16)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{0, 0, 16, 16}}, quantized)
}

func TestQuantize__TwoLevels(t *testing.T) {
	grid := [][]uint8{{0, 127, 128, 255}}

	quantized, err := quant.Quantize(grid, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{0, 0, 128, 128}}, quantized)
}

func TestQuantize__FullLevelsIsIdentity(t *testing.T) {
	grid := [][]uint8{{0, 1, 2, 3, 254, 255}}

	quantized, err := quant.Quantize(grid, 256)
	require.NoError(t, err)
	assert.Equal(t, grid, quantized)
}

func TestQuantize__EmptyAndRagged(t *testing.T) {
	quantized, err := quant.Quantize([][]uint8{}, 4)
	require.NoError(t, err)
	assert.Empty(t, quantized)

	ragged := [][]uint8{{200}, {}, {10, 20, 30}}
	quantized, err = quant.Quantize(ragged, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{192}, {}, {0, 0, 0}}, quantized)
}

func TestQuantize__DoesNotModifyInput(t *testing.T) {
	grid := [][]uint8{{255, 13}}
	_, err := quant.Quantize(grid, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{255, 13}}, grid)
}

func TestQuantize__LevelCountOutOfRange(t *testing.T) {
	for _, levels := range []int{-1, 0, 1, 257, 1000} {
		_, err := quant.Quantize([][]uint8{{1}}, levels)
		assert.ErrorIs(t, err, squash.ErrInvalidArgument, "levels=%d must be rejected", levels)
	}
}

func TestQuantize__Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	grid := make([][]uint8, 12)
	for y := range grid {
		grid[y] = make([]uint8, 17)
		for x := range grid[y] {
			grid[y][x] = uint8(rng.Intn(256))
		}
	}

	for _, levels := range []int{2, 3, 16, 100, 256} {
		once, err := quant.Quantize(grid, levels)
		require.NoError(t, err)
		twice, err := quant.Quantize(once, levels)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "levels=%d is not idempotent", levels)
	}
}

func TestQuantizeImage__Grayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, value := range []uint8{0, 15, 16, 31} {
		img.SetGray(x, 0, color.Gray{Y: value})
	}

	quantized, err := quant.QuantizeImage(img, 16)
	require.NoError(t, err)

	expected := []uint8{0, 0, 16, 16}
	for x := range expected {
		assert.Equal(t, expected[x], quantized.GrayAt(x, 0).Y, "pixel %d is wrong", x)
	}
}

func TestQuantizeImage__ConvertsColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	quantized, err := quant.QuantizeImage(img, 4)
	require.NoError(t, err)

	// The standard luminance conversion of (200, 100, 50) lands at 124,
	// which snaps down to the 64 lattice line.
	assert.Equal(t, uint8(64), quantized.GrayAt(0, 0).Y)
}

func TestQuantizeImage__BadLevels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	_, err := quant.QuantizeImage(img, 0)
	assert.ErrorIs(t, err, squash.ErrInvalidArgument)
}
