// Package quant implements lossy grayscale quantization: every 8-bit
// sample is snapped down to the nearest multiple of a step size derived
// from a caller-chosen level count. There is no inverse operation.
package quant

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dargueta/squash"
)

// MinLevels and MaxLevels bound the usable level counts. Fewer than two
// levels collapses every sample to zero, and more than 256 makes the step
// size zero.
const (
	MinLevels = 2
	MaxLevels = 256
)

func stepSize(levels int) (int, error) {
	if levels < MinLevels || levels > MaxLevels {
		return 0, squash.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("level count must be in [%d, %d], got %d",
				MinLevels, MaxLevels, levels))
	}
	return 256 / levels, nil
}

// Quantize maps every sample of a grayscale grid onto a lattice of at most
// `levels` distinct values: sample -> (sample / step) * step with
// step = 256 / levels (integer division). The input grid is not modified;
// rows may differ in length. Quantizing an already-quantized grid with the
// same level count is a no-op.
func Quantize(grid [][]uint8, levels int) ([][]uint8, error) {
	step, err := stepSize(levels)
	if err != nil {
		return nil, err
	}

	quantized := make([][]uint8, len(grid))
	for y, row := range grid {
		quantized[y] = make([]uint8, len(row))
		for x, sample := range row {
			quantized[y][x] = uint8((int(sample) / step) * step)
		}
	}
	return quantized, nil
}

// QuantizeImage converts an image to grayscale and quantizes every pixel
// the way [Quantize] does. Color input is collapsed to single-channel
// intensity first using the standard luminance conversion.
func QuantizeImage(img image.Image, levels int) (*image.Gray, error) {
	step, err := stepSize(levels)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	quantized := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			gray.Y = uint8((int(gray.Y) / step) * step)
			quantized.SetGray(x, y, gray)
		}
	}
	return quantized, nil
}
