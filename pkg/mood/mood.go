// Package mood maps a free-text mood phrase onto harmony-generation
// parameters using a static, insertion-ordered keyword lexicon. Match
// order is semantically significant: the first keyword that appears as a
// substring of the (lowercased) input wins.
package mood

import (
	"strings"

	"github.com/omarchy/palettegen/pkg/prng"
)

// Harmony identifies which generator family a mood entry favors.
type Harmony string

const (
	HarmonyAnalogous          Harmony = "analogous"
	HarmonyComplementary      Harmony = "complementary"
	HarmonyTriadic            Harmony = "triadic"
	HarmonySplitComplementary Harmony = "split_complementary"
)

var allHarmonies = []Harmony{HarmonyAnalogous, HarmonyComplementary, HarmonyTriadic, HarmonySplitComplementary}

// Range is an inclusive-low, exclusive-high numeric band.
type Range struct {
	Min, Max float64
}

// entry is a lexicon row: a keyword and the parameters it contributes.
// Any pointer field left nil is filled from the randomized fallback when
// the entry is selected.
type entry struct {
	keyword    string
	baseHue    *float64
	chroma     *Range
	lightness  *Range
	harmonyRef *Harmony
}

func hue(v float64) *float64   { return &v }
func hm(h Harmony) *Harmony    { return &h }
func rng(min, max float64) *Range { return &Range{Min: min, Max: max} }

// Parameters is the fully-resolved (no unset fields) parameter record used
// to seed a mood-driven base color.
type Parameters struct {
	BaseHue   float64
	Chroma    Range
	Lightness Range
	Harmony   Harmony
}

// lexicon is the compile-time, insertion-ordered keyword table. Entries
// are grouped loosely by theme for maintainability; the grouping carries
// no semantic weight, only declaration order does.
var lexicon = []entry{
	// Calm / cool / serene
	{keyword: "calm", baseHue: hue(200), chroma: rng(0.06, 0.14), lightness: rng(0.55, 0.8), harmonyRef: hm(HarmonyAnalogous)},
	{keyword: "serene", baseHue: hue(195), chroma: rng(0.05, 0.12), lightness: rng(0.6, 0.85)},
	{keyword: "tranquil", baseHue: hue(190), chroma: rng(0.05, 0.1), lightness: rng(0.6, 0.85)},
	{keyword: "peaceful", baseHue: hue(185), chroma: rng(0.05, 0.12), lightness: rng(0.55, 0.8)},
	{keyword: "ocean", baseHue: hue(205), chroma: rng(0.1, 0.2), lightness: rng(0.4, 0.7)},
	{keyword: "sea", baseHue: hue(200), chroma: rng(0.1, 0.18)},
	{keyword: "lake", baseHue: hue(198), chroma: rng(0.08, 0.16)},
	{keyword: "sky", baseHue: hue(210), chroma: rng(0.08, 0.16), lightness: rng(0.6, 0.9)},
	{keyword: "rain", baseHue: hue(215), chroma: rng(0.04, 0.1), lightness: rng(0.3, 0.55)},
	{keyword: "misty", baseHue: hue(200), chroma: rng(0.03, 0.08), lightness: rng(0.65, 0.85)},
	{keyword: "fog", baseHue: hue(205), chroma: rng(0.02, 0.06), lightness: rng(0.7, 0.9)},
	{keyword: "icy", baseHue: hue(195), chroma: rng(0.05, 0.1), lightness: rng(0.75, 0.95)},
	{keyword: "frost", baseHue: hue(190), chroma: rng(0.04, 0.09), lightness: rng(0.8, 0.95)},
	{keyword: "winter", baseHue: hue(210), chroma: rng(0.04, 0.1), lightness: rng(0.65, 0.9)},
	{keyword: "glacier", baseHue: hue(188), chroma: rng(0.05, 0.1), lightness: rng(0.75, 0.92)},

	// Energetic / warm / vibrant
	{keyword: "energetic", baseHue: hue(25), chroma: rng(0.2, 0.32), lightness: rng(0.45, 0.7), harmonyRef: hm(HarmonyTriadic)},
	{keyword: "vibrant", baseHue: hue(350), chroma: rng(0.25, 0.35), lightness: rng(0.45, 0.65), harmonyRef: hm(HarmonyTriadic)},
	{keyword: "bold", chroma: rng(0.25, 0.35), lightness: rng(0.4, 0.6), harmonyRef: hm(HarmonyComplementary)},
	{keyword: "summer", baseHue: hue(45), chroma: rng(0.2, 0.3), lightness: rng(0.55, 0.8)},
	{keyword: "sunny", baseHue: hue(50), chroma: rng(0.18, 0.28), lightness: rng(0.6, 0.85)},
	{keyword: "bright", chroma: rng(0.2, 0.3), lightness: rng(0.65, 0.9)},
	{keyword: "happy", baseHue: hue(55), chroma: rng(0.18, 0.28), lightness: rng(0.6, 0.85)},
	{keyword: "cheerful", baseHue: hue(48), chroma: rng(0.2, 0.3), lightness: rng(0.6, 0.85)},
	{keyword: "day", lightness: rng(0.55, 0.85)},
	{keyword: "tropical", baseHue: hue(160), chroma: rng(0.2, 0.32), lightness: rng(0.5, 0.75)},
	{keyword: "citrus", baseHue: hue(60), chroma: rng(0.22, 0.32), lightness: rng(0.55, 0.78)},
	{keyword: "fire", baseHue: hue(15), chroma: rng(0.25, 0.35), lightness: rng(0.4, 0.6)},
	{keyword: "flame", baseHue: hue(20), chroma: rng(0.25, 0.35), lightness: rng(0.45, 0.62)},
	{keyword: "spicy", baseHue: hue(10), chroma: rng(0.22, 0.32), lightness: rng(0.4, 0.6)},
	{keyword: "passion", baseHue: hue(350), chroma: rng(0.25, 0.35), lightness: rng(0.4, 0.58)},

	// Dark / mysterious / moody
	{keyword: "dark", lightness: rng(0.08, 0.28), harmonyRef: hm(HarmonyComplementary)},
	{keyword: "mysterious", baseHue: hue(270), chroma: rng(0.12, 0.22), lightness: rng(0.12, 0.3)},
	{keyword: "night", baseHue: hue(240), chroma: rng(0.1, 0.2), lightness: rng(0.1, 0.3)},
	{keyword: "midnight", baseHue: hue(250), chroma: rng(0.1, 0.18), lightness: rng(0.05, 0.2)},
	{keyword: "shadow", chroma: rng(0.02, 0.08), lightness: rng(0.1, 0.3)},
	{keyword: "gothic", baseHue: hue(280), chroma: rng(0.1, 0.2), lightness: rng(0.1, 0.25)},
	{keyword: "noir", chroma: rng(0.01, 0.05), lightness: rng(0.08, 0.25)},
	{keyword: "grim", baseHue: hue(0), chroma: rng(0.04, 0.12), lightness: rng(0.12, 0.28)},
	{keyword: "brooding", baseHue: hue(260), chroma: rng(0.1, 0.2), lightness: rng(0.1, 0.28)},
	{keyword: "eerie", baseHue: hue(120), chroma: rng(0.1, 0.2), lightness: rng(0.15, 0.3)},
	{keyword: "haunted", baseHue: hue(260), chroma: rng(0.08, 0.18), lightness: rng(0.1, 0.25)},

	// Nature / earthy
	{keyword: "forest", baseHue: hue(140), chroma: rng(0.15, 0.28), lightness: rng(0.25, 0.5)},
	{keyword: "earth", baseHue: hue(35), chroma: rng(0.1, 0.2), lightness: rng(0.3, 0.5)},
	{keyword: "autumn", baseHue: hue(30), chroma: rng(0.18, 0.3), lightness: rng(0.4, 0.6)},
	{keyword: "fall", baseHue: hue(28), chroma: rng(0.18, 0.3), lightness: rng(0.4, 0.6)},
	{keyword: "moss", baseHue: hue(110), chroma: rng(0.1, 0.2), lightness: rng(0.3, 0.55)},
	{keyword: "meadow", baseHue: hue(100), chroma: rng(0.15, 0.25), lightness: rng(0.45, 0.7)},
	{keyword: "garden", baseHue: hue(120), chroma: rng(0.15, 0.25), lightness: rng(0.4, 0.65)},
	{keyword: "desert", baseHue: hue(40), chroma: rng(0.12, 0.22), lightness: rng(0.5, 0.75)},
	{keyword: "sand", baseHue: hue(45), chroma: rng(0.08, 0.16), lightness: rng(0.6, 0.85)},
	{keyword: "clay", baseHue: hue(25), chroma: rng(0.12, 0.22), lightness: rng(0.4, 0.6)},
	{keyword: "stone", chroma: rng(0.02, 0.08), lightness: rng(0.4, 0.65)},
	{keyword: "mountain", baseHue: hue(220), chroma: rng(0.04, 0.12), lightness: rng(0.35, 0.6)},
	{keyword: "jungle", baseHue: hue(135), chroma: rng(0.2, 0.32), lightness: rng(0.3, 0.5)},

	// Soft / pastel / gentle
	{keyword: "soft", chroma: rng(0.06, 0.14), lightness: rng(0.65, 0.88)},
	{keyword: "pastel", chroma: rng(0.08, 0.16), lightness: rng(0.75, 0.92)},
	{keyword: "gentle", chroma: rng(0.05, 0.12), lightness: rng(0.65, 0.85)},
	{keyword: "dreamy", baseHue: hue(280), chroma: rng(0.08, 0.16), lightness: rng(0.65, 0.88)},
	{keyword: "romantic", baseHue: hue(330), chroma: rng(0.1, 0.2), lightness: rng(0.55, 0.8)},
	{keyword: "blush", baseHue: hue(345), chroma: rng(0.08, 0.16), lightness: rng(0.7, 0.9)},
	{keyword: "cotton", chroma: rng(0.04, 0.1), lightness: rng(0.78, 0.94)},

	// Luxury / elegant
	{keyword: "elegant", baseHue: hue(260), chroma: rng(0.08, 0.16), lightness: rng(0.2, 0.45), harmonyRef: hm(HarmonySplitComplementary)},
	{keyword: "luxury", baseHue: hue(45), chroma: rng(0.15, 0.25), lightness: rng(0.25, 0.5)},
	{keyword: "royal", baseHue: hue(265), chroma: rng(0.2, 0.3), lightness: rng(0.25, 0.45)},
	{keyword: "regal", baseHue: hue(270), chroma: rng(0.18, 0.28), lightness: rng(0.25, 0.45)},
	{keyword: "gold", baseHue: hue(50), chroma: rng(0.15, 0.25), lightness: rng(0.5, 0.75)},
	{keyword: "velvet", baseHue: hue(330), chroma: rng(0.15, 0.25), lightness: rng(0.2, 0.4)},

	// Corporate / clean / minimal
	{keyword: "corporate", baseHue: hue(215), chroma: rng(0.06, 0.14), lightness: rng(0.35, 0.6)},
	{keyword: "professional", baseHue: hue(210), chroma: rng(0.06, 0.14), lightness: rng(0.3, 0.55)},
	{keyword: "clean", chroma: rng(0.02, 0.08), lightness: rng(0.55, 0.85)},
	{keyword: "minimal", chroma: rng(0.02, 0.06), lightness: rng(0.5, 0.85)},
	{keyword: "modern", baseHue: hue(210), chroma: rng(0.08, 0.16), lightness: rng(0.4, 0.65)},
	{keyword: "tech", baseHue: hue(200), chroma: rng(0.1, 0.2), lightness: rng(0.35, 0.6)},
	{keyword: "futuristic", baseHue: hue(185), chroma: rng(0.15, 0.28), lightness: rng(0.3, 0.55)},

	// Playful / whimsical
	{keyword: "playful", chroma: rng(0.2, 0.32), lightness: rng(0.55, 0.8), harmonyRef: hm(HarmonyTriadic)},
	{keyword: "whimsical", chroma: rng(0.15, 0.28), lightness: rng(0.55, 0.82)},
	{keyword: "candy", chroma: rng(0.25, 0.35), lightness: rng(0.6, 0.85)},
	{keyword: "bubblegum", baseHue: hue(330), chroma: rng(0.2, 0.3), lightness: rng(0.6, 0.85)},
	{keyword: "carnival", chroma: rng(0.22, 0.32), lightness: rng(0.5, 0.75), harmonyRef: hm(HarmonyTriadic)},

	// Urban / industrial
	{keyword: "urban", chroma: rng(0.04, 0.12), lightness: rng(0.25, 0.55)},
	{keyword: "industrial", chroma: rng(0.02, 0.08), lightness: rng(0.2, 0.5)},
	{keyword: "concrete", chroma: rng(0.01, 0.05), lightness: rng(0.35, 0.65)},
	{keyword: "rust", baseHue: hue(22), chroma: rng(0.15, 0.25), lightness: rng(0.3, 0.5)},
	{keyword: "steel", baseHue: hue(210), chroma: rng(0.03, 0.09), lightness: rng(0.3, 0.55)},
	{keyword: "chrome", chroma: rng(0.01, 0.04), lightness: rng(0.5, 0.8)},

	// Seasonal
	{keyword: "spring", baseHue: hue(120), chroma: rng(0.15, 0.26), lightness: rng(0.55, 0.8)},
	{keyword: "sunset", baseHue: hue(20), chroma: rng(0.18, 0.3), lightness: rng(0.45, 0.7)},
	{keyword: "sunrise", baseHue: hue(35), chroma: rng(0.15, 0.26), lightness: rng(0.55, 0.8)},
	{keyword: "dusk", baseHue: hue(260), chroma: rng(0.1, 0.2), lightness: rng(0.25, 0.5)},
	{keyword: "dawn", baseHue: hue(280), chroma: rng(0.1, 0.2), lightness: rng(0.5, 0.75)},

	// Misc feelings
	{keyword: "cozy", baseHue: hue(30), chroma: rng(0.1, 0.2), lightness: rng(0.45, 0.7)},
	{keyword: "warm", baseHue: hue(30), chroma: rng(0.12, 0.22), lightness: rng(0.45, 0.7)},
	{keyword: "cool", baseHue: hue(210), chroma: rng(0.08, 0.18), lightness: rng(0.4, 0.65)},
	{keyword: "melancholy", baseHue: hue(230), chroma: rng(0.04, 0.1), lightness: rng(0.3, 0.5)},
	{keyword: "hopeful", baseHue: hue(150), chroma: rng(0.12, 0.22), lightness: rng(0.55, 0.8)},
	{keyword: "confident", baseHue: hue(350), chroma: rng(0.2, 0.3), lightness: rng(0.35, 0.55)},
	{keyword: "powerful", chroma: rng(0.2, 0.3), lightness: rng(0.2, 0.4)},
	{keyword: "gloomy", chroma: rng(0.02, 0.08), lightness: rng(0.15, 0.35)},
	{keyword: "vintage", baseHue: hue(30), chroma: rng(0.08, 0.16), lightness: rng(0.4, 0.65)},
	{keyword: "retro", baseHue: hue(15), chroma: rng(0.15, 0.25), lightness: rng(0.45, 0.7)},
}

// Fallback bounds used when no keyword matches and to fill any unset field
// of a matched entry.
var (
	fallbackChroma    = Range{Min: 0.12, Max: 0.22}
	fallbackLightness = Range{Min: 0.4, Max: 0.8}
)

// HasMatch reports whether any lexicon keyword appears as a substring of
// the lowercased mood phrase. Callers can use this to reject unmatched
// moods instead of falling through to the randomized fallback.
func HasMatch(mood string) bool {
	lower := strings.ToLower(mood)
	for i := range lexicon {
		if strings.Contains(lower, lexicon[i].keyword) {
			return true
		}
	}
	return false
}

// ToParameters maps a mood phrase to a resolved Parameters record. When no
// lexicon keyword matches, base hue and harmony are drawn from rng and
// chroma/lightness take the fallback bands. When a keyword matches, any
// field the entry left unset is filled the same way.
func ToParameters(mood string, rng *prng.Source) Parameters {
	return ToParametersWithFallback(mood, rng, fallbackChroma, fallbackLightness)
}

// ToParametersWithFallback is ToParameters with a caller-supplied fallback
// chroma/lightness band, so deployments can retune the unmatched-keyword
// and unset-field defaults via Settings.Mood without touching the lexicon.
func ToParametersWithFallback(mood string, rng *prng.Source, fallbackChromaRange, fallbackLightnessRange Range) Parameters {
	lower := strings.ToLower(mood)

	var matched *entry
	for i := range lexicon {
		if strings.Contains(lower, lexicon[i].keyword) {
			matched = &lexicon[i]
			break
		}
	}

	params := Parameters{
		BaseHue:   rng.Range(0, 360),
		Chroma:    fallbackChromaRange,
		Lightness: fallbackLightnessRange,
		Harmony:   prng.Choice(rng, allHarmonies),
	}

	if matched == nil {
		return params
	}

	if matched.baseHue != nil {
		params.BaseHue = *matched.baseHue
	}
	if matched.chroma != nil {
		params.Chroma = *matched.chroma
	}
	if matched.lightness != nil {
		params.Lightness = *matched.lightness
	}
	if matched.harmonyRef != nil {
		params.Harmony = *matched.harmonyRef
	}

	return params
}

// Harmonies exposes the four harmony strategies usable from mood
// parameters, kept here so callers can dispatch without importing harmony
// constants directly.
var Harmonies = struct {
	Analogous          Harmony
	Complementary      Harmony
	Triadic            Harmony
	SplitComplementary Harmony
}{HarmonyAnalogous, HarmonyComplementary, HarmonyTriadic, HarmonySplitComplementary}
