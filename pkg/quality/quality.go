// Package quality implements the post-generation filters every harmony pool
// passes through before role assignment: chroma sanity clamping and
// hue-wrap-aware de-duplication.
package quality

import "github.com/omarchy/palettegen/pkg/colorspace"

// DefaultMaxChroma is the chroma ceiling applied when a caller does not
// override it.
const DefaultMaxChroma = 0.4

// DefaultDuplicateThreshold is the epsilon applied when a caller does not
// override the dedup tolerance.
const DefaultDuplicateThreshold = 0.01

// Options configures ApplyGates.
type Options struct {
	RemoveDuplicates   bool
	MaxChroma          float64
	DuplicateThreshold float64
}

// DefaultOptions returns the gate configuration used when the caller has no
// specific requirements.
func DefaultOptions() Options {
	return Options{
		RemoveDuplicates:   true,
		MaxChroma:          DefaultMaxChroma,
		DuplicateThreshold: DefaultDuplicateThreshold,
	}
}

// HasSaneChroma reports whether c.C falls within [0, max].
func HasSaneChroma(c colorspace.OKLCH, max float64) bool {
	return c.C >= 0 && c.C <= max
}

// FilterSaneChroma retains only the entries of seq with sane chroma.
func FilterSaneChroma(seq []colorspace.OKLCH, max float64) []colorspace.OKLCH {
	out := make([]colorspace.OKLCH, 0, len(seq))
	for _, c := range seq {
		if HasSaneChroma(c, max) {
			out = append(out, c)
		}
	}
	return out
}

func hueDistanceCirc(h1, h2 float64) float64 {
	d := h1 - h2
	if d < 0 {
		d = -d
	}
	if d > 360-d {
		return 360 - d
	}
	return d
}

func sameColor(a, b colorspace.OKLCH, eps float64) bool {
	dl := a.L - b.L
	if dl < 0 {
		dl = -dl
	}
	dc := a.C - b.C
	if dc < 0 {
		dc = -dc
	}
	return dl < eps && dc < eps && hueDistanceCirc(a.H, b.H) < eps*360
}

// RemoveDuplicates performs stable first-wins de-duplication: two colors are
// "the same" when their L and C differ by less than eps and their circular
// hue distance is less than eps*360.
func RemoveDuplicates(seq []colorspace.OKLCH, eps float64) []colorspace.OKLCH {
	out := make([]colorspace.OKLCH, 0, len(seq))
	for _, c := range seq {
		duplicate := false
		for _, kept := range out {
			if sameColor(c, kept, eps) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, c)
		}
	}
	return out
}

// ApplyGates filters seq by chroma sanity first, then de-duplicates if
// opts.RemoveDuplicates is set. Applying the gates twice in succession is a
// no-op (idempotent).
func ApplyGates(seq []colorspace.OKLCH, opts Options) []colorspace.OKLCH {
	filtered := FilterSaneChroma(seq, opts.MaxChroma)
	if !opts.RemoveDuplicates {
		return filtered
	}
	return RemoveDuplicates(filtered, opts.DuplicateThreshold)
}
