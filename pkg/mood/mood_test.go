package mood

import (
	"testing"

	"github.com/omarchy/palettegen/pkg/prng"
)

func TestToParametersKeywordMatch(t *testing.T) {
	params := ToParameters("calm ocean sunset", prng.New(1))
	if params.BaseHue != 200 {
		t.Errorf("expected 'calm' (first match) to set hue 200, got %v", params.BaseHue)
	}
}

func TestToParametersFallbackRandomizes(t *testing.T) {
	rngA := prng.New(99)
	rngB := prng.New(99)
	a := ToParameters("zzz no keyword here zzz", rngA)
	b := ToParameters("zzz no keyword here zzz", rngB)
	if a != b {
		t.Errorf("same seed must produce identical fallback parameters: %+v vs %+v", a, b)
	}
}

func TestToParametersDeterministic(t *testing.T) {
	a := ToParameters("energetic summer day", prng.New(12345))
	b := ToParameters("energetic summer day", prng.New(12345))
	if a != b {
		t.Errorf("identical (mood, seed) must produce identical parameters")
	}
}

func TestToParametersFirstMatchWins(t *testing.T) {
	// "dark" appears before "night" in the lexicon; a phrase containing
	// both must resolve to "dark"'s parameters, not "night"'s.
	params := ToParameters("dark night", prng.New(5))
	darkOnly := ToParameters("dark", prng.New(5))
	if params.Lightness != darkOnly.Lightness {
		t.Errorf("expected first-match-wins semantics, got %+v vs %+v", params, darkOnly)
	}
}
