// Package generative produces synthetic flat pixel sequences for exercising
// and benchmarking generate_from_image without decoding a real image file.
// Adapted from the teacher's image.Image test-fixture generators: the same
// gradient-plus-noise and high-contrast-block shapes, flattened directly
// into []colorspace.RGB instead of a rasterized image.Image.
package generative

import "github.com/omarchy/palettegen/pkg/colorspace"

// GradientNoise produces width*height pixels in row-major order, a smooth
// RGB gradient across position with periodic noise perturbation — enough
// color diversity to drive a representative k-means clustering workload.
func GradientNoise(width, height int) []colorspace.RGB {
	pixels := make([]colorspace.RGB, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			b := uint8(((x + y) * 255) / (width + height))

			if (x+y)%7 == 0 {
				r = uint8((int(r) + 50) % 256)
			}
			if (x*y)%11 == 0 {
				g = uint8((int(g) + 30) % 256)
			}
			if (x-y)%13 == 0 {
				b = uint8((int(b) + 70) % 256)
			}

			pixels = append(pixels, colorspace.RGB{R: r, G: g, B: b})
		}
	}

	return pixels
}

// Monochrome produces a grayscale gradient with subtle per-pixel noise —
// an edge case for the clusterer and the role assigner's gray handling.
func Monochrome(width, height int) []colorspace.RGB {
	pixels := make([]colorspace.RGB, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := uint8((x + y) * 255 / (width + height))
			if (x*y)%17 == 0 {
				gray = uint8((int(gray) + 10) % 256)
			}
			pixels = append(pixels, colorspace.RGB{R: gray, G: gray, B: gray})
		}
	}

	return pixels
}

// HighContrast produces width*height pixels divided into five equal blocks
// of black, white, red, green, and blue — a degenerate, highly separable
// input for verifying cluster centroid assignment.
func HighContrast(width, height int) []colorspace.RGB {
	palette := []colorspace.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	total := width * height
	pixelsPerColor := total / len(palette)
	pixels := make([]colorspace.RGB, total)

	for i := range pixels {
		idx := i / pixelsPerColor
		if idx >= len(palette) {
			idx = len(palette) - 1
		}
		pixels[i] = palette[idx]
	}

	return pixels
}
