// Package synth orchestrates the harmony, quality, role, cluster, and mood
// packages into the four palette-generation entry points: a
// single base color, a set of base colors, a mood phrase, and a bag of
// image pixels.
package synth

import (
	"context"
	"math"
	"time"

	"github.com/omarchy/palettegen/pkg/cluster"
	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/harmony"
	"github.com/omarchy/palettegen/pkg/mood"
	"github.com/omarchy/palettegen/pkg/paletteerrors"
	"github.com/omarchy/palettegen/pkg/prng"
	"github.com/omarchy/palettegen/pkg/quality"
	"github.com/omarchy/palettegen/pkg/roles"
	"github.com/omarchy/palettegen/pkg/settings"
)

// GeneratedPalette is an ordered, role-assigned palette plus provenance
// metadata. Once returned from a synthesizer call it is immutable.
type GeneratedPalette struct {
	Colors      []roles.AssignedColor
	Generator   string
	Explanation string
	Timestamp   string
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// validateSizeBounds rejects a non-positive or inverted synth size range
// before any harmony work happens, rather than producing a confusing
// PaletteSizeError further down the pipeline.
func validateSizeBounds(s *settings.Settings) error {
	if s.Synth.MinSize <= 0 || s.Synth.MaxSize <= 0 || s.Synth.MaxSize < s.Synth.MinSize {
		return paletteerrors.ErrInvalidPaletteSize
	}
	return nil
}

func gate(pool []colorspace.OKLCH, maxChroma, dupEps float64) []colorspace.OKLCH {
	return quality.ApplyGates(pool, quality.Options{
		RemoveDuplicates:   true,
		MaxChroma:          maxChroma,
		DuplicateThreshold: dupEps,
	})
}

// GenerateFromBaseColor implements generate_from_base_color: it builds a
// harmony seed pool around base, quality-gates it, extends if undersized,
// truncates if oversized, and assigns roles.
func GenerateFromBaseColor(ctx context.Context, base colorspace.OKLCH) (GeneratedPalette, error) {
	s := settings.FromContext(ctx)
	if err := validateSizeBounds(s); err != nil {
		return GeneratedPalette{}, err
	}

	pool := []colorspace.OKLCH{base, harmony.Complementary(base)}
	pool = append(pool, harmony.Analogous(base, 30, 2)...)
	pool = append(pool, harmony.SplitComplementary(base, 30)...)
	pool = append(pool, harmony.Neutrals(base, 4)...)

	gated := gate(pool, s.Quality.MaxChroma, s.Quality.DuplicateThresholdColor)

	if len(gated) < s.Synth.MinSize {
		pool = append(pool, harmony.Analogous(base, 20, 4)...)
		gated = gate(pool, s.Quality.MaxChroma, s.Quality.DuplicateThresholdColor)
	}

	if len(gated) < s.Synth.MinSize {
		return GeneratedPalette{}, &paletteerrors.PaletteSizeError{Requested: s.Synth.MinSize, Available: len(gated)}
	}

	gated = truncate(gated, s.Synth.MaxSize)

	return GeneratedPalette{
		Colors:      roles.AssignWithBounds(gated, s.Roles.PrimaryLightnessMin, s.Roles.PrimaryLightnessMax),
		Generator:   "color",
		Explanation: "harmony set derived from a single base color",
		Timestamp:   isoNow(),
	}, nil
}

// GenerateFromBaseColors implements generate_from_base_colors: it preserves
// every base color as a fixed anchor, derives background/text from the
// first base, and fills out the remaining slots with per-base analogous
// colors.
func GenerateFromBaseColors(ctx context.Context, bases []colorspace.OKLCH) (GeneratedPalette, error) {
	if len(bases) == 0 {
		return GeneratedPalette{}, paletteerrors.ErrEmptyBaseColors
	}
	if len(bases) == 1 {
		return GenerateFromBaseColor(ctx, bases[0])
	}

	s := settings.FromContext(ctx)
	if err := validateSizeBounds(s); err != nil {
		return GeneratedPalette{}, err
	}

	anchorRoles := []roles.ColorRole{roles.Primary, roles.Secondary, roles.Accent, roles.Info, roles.Success}
	assigned := make([]roles.AssignedColor, 0, len(bases)+4)
	for i, b := range bases {
		role := roles.Accent
		if i < len(anchorRoles) {
			role = anchorRoles[i]
		}
		assigned = append(assigned, roles.AssignedColor{Role: role, Color: b})
	}

	first := bases[0]
	background := colorspace.OKLCH{L: 0.97, C: math.Min(first.C*0.1, 0.02), H: first.H}
	text := colorspace.OKLCH{L: 0.1, C: math.Min(first.C*0.15, 0.03), H: first.H}

	preserved := make([]colorspace.OKLCH, 0, len(bases)+2)
	for _, b := range bases {
		preserved = append(preserved, b)
	}
	preserved = append(preserved, background, text)

	var extra []colorspace.OKLCH
	for _, b := range bases {
		extra = append(extra, harmony.Analogous(b, 25, 1)...)
	}
	extra = gate(extra, s.Quality.MaxChroma, s.Quality.DuplicateThresholdColor)
	extra = dropNearAny(extra, preserved, 0.05)

	extraRoles := []roles.ColorRole{roles.Warning, roles.Error}
	for i, c := range extra {
		if i >= len(extraRoles) {
			break
		}
		assigned = append(assigned, roles.AssignedColor{Role: extraRoles[i], Color: c})
	}

	assigned = append(assigned, roles.AssignedColor{Role: roles.Background, Color: background})
	assigned = append(assigned, roles.AssignedColor{Role: roles.Text, Color: text})

	return GeneratedPalette{
		Colors:      assigned,
		Generator:   "colors",
		Explanation: "anchored multi-base palette with derived background/text",
		Timestamp:   isoNow(),
	}, nil
}

func oklchDistance(a, b colorspace.OKLCH) float64 {
	dl := a.L - b.L
	dc := a.C - b.C
	dh := math.Abs(a.H - b.H)
	if dh > 360-dh {
		dh = 360 - dh
	}
	dh /= 360
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}

func dropNearAny(candidates, anchors []colorspace.OKLCH, threshold float64) []colorspace.OKLCH {
	out := make([]colorspace.OKLCH, 0, len(candidates))
	for _, c := range candidates {
		near := false
		for _, a := range anchors {
			if oklchDistance(c, a) < threshold {
				near = true
				break
			}
		}
		if !near {
			out = append(out, c)
		}
	}
	return out
}

// GenerateFromMood implements generate_from_mood: it seeds a PRNG from the
// explicit seed or a hash of the mood phrase, maps the mood to harmony
// parameters, builds a pool per the mood's harmony family, and finishes
// with the deliberate post-assignment reshuffle described in the design
// notes.
func GenerateFromMood(ctx context.Context, phrase string, seed *uint32) (GeneratedPalette, error) {
	s := settings.FromContext(ctx)
	if err := validateSizeBounds(s); err != nil {
		return GeneratedPalette{}, err
	}
	if !s.Mood.AllowFallbackRandom && !mood.HasMatch(phrase) {
		return GeneratedPalette{}, paletteerrors.ErrUnknownMood
	}

	var seedValue uint32
	if seed != nil {
		seedValue = *seed
	} else {
		seedValue = prng.HashString(phrase)
	}
	rng := prng.New(seedValue)

	fallbackChroma := mood.Range{Min: s.Mood.FallbackChromaMin, Max: s.Mood.FallbackChromaMax}
	fallbackLightness := mood.Range{Min: s.Mood.FallbackLightnessMin, Max: s.Mood.FallbackLightnessMax}
	params := mood.ToParametersWithFallback(phrase, rng, fallbackChroma, fallbackLightness)

	jitter := s.Mood.HueJitterDeg
	base := colorspace.OKLCH{
		L: rng.Range(params.Lightness.Min, params.Lightness.Max),
		C: rng.Range(params.Chroma.Min, params.Chroma.Max),
		H: colorspace.NormalizeHue(params.BaseHue + rng.Range(-jitter, jitter)),
	}

	pool := []colorspace.OKLCH{base}
	switch params.Harmony {
	case mood.HarmonyAnalogous:
		pool = append(pool, harmony.Analogous(base, 30, 4)...)
	case mood.HarmonyComplementary:
		pool = append(pool, harmony.Complementary(base))
		pool = append(pool, harmony.Analogous(base, 20, 2)...)
	case mood.HarmonyTriadic:
		pool = append(pool, harmony.Triadic(base)...)
		pool = append(pool, harmony.Analogous(base, 15, 1)...)
	case mood.HarmonySplitComplementary:
		pool = append(pool, harmony.SplitComplementary(base, 30)...)
		pool = append(pool, harmony.Analogous(base, 20, 1)...)
	}
	pool = append(pool, harmony.Neutrals(base, 4)...)

	gated := gate(pool, s.Quality.MaxChroma, s.Quality.DuplicateThresholdMood)
	gated = sizeCorrect(gated, base, s.Synth.MinSize, s.Synth.MaxSize, 20, 4, s.Quality.MaxChroma, s.Quality.DuplicateThresholdMood)

	if len(gated) < s.Synth.MinSize {
		return GeneratedPalette{}, &paletteerrors.PaletteSizeError{Requested: s.Synth.MinSize, Available: len(gated)}
	}

	assigned := roles.AssignWithBounds(gated, s.Roles.PrimaryLightnessMin, s.Roles.PrimaryLightnessMax)

	if s.Mood.Shuffle {
		assigned = reshuffleMoodRoles(assigned, rng)
	}

	return GeneratedPalette{
		Colors:      assigned,
		Generator:   "mood",
		Explanation: "mood \"" + phrase + "\" mapped via lexicon to a " + string(params.Harmony) + " palette",
		Timestamp:   isoNow(),
	}, nil
}

// reshuffleMoodRoles implements the deliberate post-assignment Fisher-Yates
// step: background and text stay anchored, everything else is shuffled
// (reusing rng, not a fresh source) and the first five shuffled entries are
// reassigned in order [primary, secondary, accent, info, success].
func reshuffleMoodRoles(assigned []roles.AssignedColor, rng *prng.Source) []roles.AssignedColor {
	var anchors []roles.AssignedColor
	var main []roles.AssignedColor
	for _, a := range assigned {
		if a.Role == roles.Background || a.Role == roles.Text {
			anchors = append(anchors, a)
		} else {
			main = append(main, a)
		}
	}

	for i := len(main) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		if j > i {
			j = i
		}
		main[i], main[j] = main[j], main[i]
	}

	order := []roles.ColorRole{roles.Primary, roles.Secondary, roles.Accent, roles.Info, roles.Success}
	out := make([]roles.AssignedColor, 0, len(assigned))
	for i, a := range main {
		if i < len(order) {
			out = append(out, roles.AssignedColor{Role: order[i], Color: a.Color})
		} else {
			out = append(out, a)
		}
	}

	for _, a := range anchors {
		if a.Role == roles.Background {
			out = append(out, a)
		}
	}
	for _, a := range anchors {
		if a.Role == roles.Text {
			out = append(out, a)
		}
	}

	return out
}

// GenerateFromImage implements generate_from_image: it clusters pixels to
// a handful of dominant OKLCH colors, builds a pool around them, and
// quality-gates it, extending an undersized pool with a wider analogous
// spread around the most chromatic dominant and truncating an oversized
// one in favor of colors near a dominant.
func GenerateFromImage(ctx context.Context, pixels []colorspace.RGB) (GeneratedPalette, error) {
	if len(pixels) == 0 {
		return GeneratedPalette{}, paletteerrors.ErrEmptyPixels
	}

	s := settings.FromContext(ctx)
	if err := validateSizeBounds(s); err != nil {
		return GeneratedPalette{}, err
	}

	numDominant := len(pixels) / s.Cluster.PixelsPerGroup
	if numDominant < s.Cluster.MinDominant {
		numDominant = s.Cluster.MinDominant
	}
	if numDominant > s.Cluster.MaxDominant {
		numDominant = s.Cluster.MaxDominant
	}

	dominants := cluster.ExtractDominantWithIterations(pixels, numDominant, s.Cluster.MaxIterations)

	pool := append([]colorspace.OKLCH{}, dominants...)
	for _, d := range dominants {
		pool = append(pool, harmony.Analogous(d, 25, 1)...)
	}

	mostChromatic := dominants[0]
	for _, d := range dominants {
		if d.C > mostChromatic.C {
			mostChromatic = d
		}
	}
	pool = append(pool, harmony.Neutrals(mostChromatic, 3)...)

	gated := gate(pool, s.Quality.MaxChroma, s.Quality.DuplicateThresholdImage)
	if len(gated) < s.Synth.MinSize {
		pool = append(pool, harmony.Analogous(mostChromatic, 20, 4)...)
		gated = gate(pool, s.Quality.MaxChroma, s.Quality.DuplicateThresholdImage)
	}
	gated = sizeCorrectPreferringNear(gated, dominants, s.Synth.MinSize, s.Synth.MaxSize)

	if len(gated) < s.Synth.MinSize {
		return GeneratedPalette{}, &paletteerrors.PaletteSizeError{Requested: s.Synth.MinSize, Available: len(gated)}
	}

	return GeneratedPalette{
		Colors:      roles.AssignWithBounds(gated, s.Roles.PrimaryLightnessMin, s.Roles.PrimaryLightnessMax),
		Generator:   "image",
		Explanation: "dominant colors extracted from image pixels via k-means in OKLCH",
		Timestamp:   isoNow(),
	}, nil
}

func truncate(seq []colorspace.OKLCH, max int) []colorspace.OKLCH {
	if len(seq) <= max {
		return seq
	}
	return seq[:max]
}

// sizeCorrect extends an undersized pool with wider analogous spread around
// base and truncates an oversized one, re-gating after every extension with
// the same maxChroma/dupEps the caller's initial gate used.
func sizeCorrect(pool []colorspace.OKLCH, base colorspace.OKLCH, min, max int, step float64, count int, maxChroma, dupEps float64) []colorspace.OKLCH {
	if len(pool) < min {
		extended := append(pool, harmony.Analogous(base, step, count)...)
		pool = gate(extended, maxChroma, dupEps)
	}
	return truncate(pool, max)
}

// sizeCorrectPreferringNear truncates an oversized pool, keeping entries
// closest to a dominant color first when something has to be dropped.
func sizeCorrectPreferringNear(pool []colorspace.OKLCH, dominants []colorspace.OKLCH, min, max int) []colorspace.OKLCH {
	if len(pool) <= max {
		return pool
	}

	type scored struct {
		color colorspace.OKLCH
		near  bool
	}
	scoredPool := make([]scored, len(pool))
	for i, c := range pool {
		near := false
		for _, d := range dominants {
			dl := math.Abs(c.L - d.L)
			dc := math.Abs(c.C - d.C)
			dh := math.Abs(c.H - d.H)
			if dh > 360-dh {
				dh = 360 - dh
			}
			if dl < 0.05 && dc < 0.05 && dh < 10 {
				near = true
				break
			}
		}
		scoredPool[i] = scored{color: c, near: near}
	}

	out := make([]colorspace.OKLCH, 0, max)
	for _, sc := range scoredPool {
		if sc.near && len(out) < max {
			out = append(out, sc.color)
		}
	}
	for _, sc := range scoredPool {
		if !sc.near && len(out) < max {
			out = append(out, sc.color)
		}
	}
	return out
}
