// Package harmony generates related colors around a base OKLCH color using
// the classic color-wheel relationships: analogous, complementary,
// split-complementary, triadic, and neutrals. All generators preserve the
// base lightness and chroma (neutrals excepted) and vary only hue.
package harmony

import "github.com/omarchy/palettegen/pkg/colorspace"

// Analogous returns count colors alternating +step, -step, +2*step, -2*step,
// ... around base. The base itself is not included in the result.
func Analogous(base colorspace.OKLCH, step float64, count int) []colorspace.OKLCH {
	out := make([]colorspace.OKLCH, 0, count)
	for i := 0; i < count; i++ {
		multiplier := float64(i/2 + 1)
		offset := multiplier * step
		if i%2 == 1 {
			offset = -offset
		}
		out = append(out, colorspace.OKLCH{
			L: base.L,
			C: base.C,
			H: colorspace.NormalizeHue(base.H + offset),
		})
	}
	return out
}

// Complementary returns the single color at base.H + 180.
func Complementary(base colorspace.OKLCH) colorspace.OKLCH {
	return colorspace.OKLCH{L: base.L, C: base.C, H: colorspace.NormalizeHue(base.H + 180)}
}

// SplitComplementary returns the two colors at complement(base) +/- spread.
func SplitComplementary(base colorspace.OKLCH, spread float64) []colorspace.OKLCH {
	complement := Complementary(base).H
	return []colorspace.OKLCH{
		{L: base.L, C: base.C, H: colorspace.NormalizeHue(complement + spread)},
		{L: base.L, C: base.C, H: colorspace.NormalizeHue(complement - spread)},
	}
}

// Triadic returns the two colors at base.H + 120 and base.H + 240.
func Triadic(base colorspace.OKLCH) []colorspace.OKLCH {
	return []colorspace.OKLCH{
		{L: base.L, C: base.C, H: colorspace.NormalizeHue(base.H + 120)},
		{L: base.L, C: base.C, H: colorspace.NormalizeHue(base.H + 240)},
	}
}

// Neutrals returns count colors sharing base's hue with heavily reduced
// chroma and lightness spaced uniformly across (0,1).
func Neutrals(base colorspace.OKLCH, count int) []colorspace.OKLCH {
	chroma := base.C * 0.2
	if chroma > 0.05 {
		chroma = 0.05
	}

	out := make([]colorspace.OKLCH, 0, count)
	for i := 0; i < count; i++ {
		lightness := float64(i+1) / float64(count+1)
		out = append(out, colorspace.OKLCH{L: lightness, C: chroma, H: base.H})
	}
	return out
}
