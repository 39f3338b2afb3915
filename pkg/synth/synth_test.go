package synth

import (
	"context"
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/roles"
)

func hasRole(colors []roles.AssignedColor, role roles.ColorRole) bool {
	for _, a := range colors {
		if a.Role == role {
			return true
		}
	}
	return false
}

func TestGenerateFromBaseColorScenarioS1(t *testing.T) {
	base := colorspace.OKLCH{L: 0.6, C: 0.2, H: 220}
	palette, err := GenerateFromBaseColor(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(palette.Colors) < 5 || len(palette.Colors) > 12 {
		t.Errorf("palette size %d out of expected range", len(palette.Colors))
	}
	if !hasRole(palette.Colors, roles.Background) {
		t.Error("expected a background role")
	}
	if !hasRole(palette.Colors, roles.Text) {
		t.Error("expected a text role")
	}
	for _, a := range palette.Colors {
		if a.Color.C > 0.4 {
			t.Errorf("color %+v exceeds max chroma", a)
		}
		if a.Color.H < 0 || a.Color.H >= 360 {
			t.Errorf("color %+v hue out of range", a)
		}
	}
	if palette.Generator != "color" {
		t.Errorf("generator = %q, want \"color\"", palette.Generator)
	}
}

func TestGenerateFromBaseColorsEmptyFails(t *testing.T) {
	_, err := GenerateFromBaseColors(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error for empty base colors")
	}
}

func TestGenerateFromBaseColorsPreservesBases(t *testing.T) {
	bases := []colorspace.OKLCH{
		{L: 0.5, C: 0.2, H: 10},
		{L: 0.4, C: 0.25, H: 140},
		{L: 0.6, C: 0.15, H: 260},
	}
	palette, err := GenerateFromBaseColors(context.Background(), bases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range bases {
		found := false
		for _, a := range palette.Colors {
			if a.Color == b {
				found = true
			}
		}
		if !found {
			t.Errorf("base color %+v not preserved in output", b)
		}
	}
}

func TestGenerateFromMoodDeterministicWithSeed(t *testing.T) {
	seed := uint32(12345)
	a, err := GenerateFromMood(context.Background(), "energetic summer day", &seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateFromMood(context.Background(), "energetic summer day", &seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Colors) != len(b.Colors) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Colors), len(b.Colors))
	}
	for i := range a.Colors {
		if a.Colors[i].Role != b.Colors[i].Role || a.Colors[i].Color != b.Colors[i].Color {
			t.Errorf("entry %d differs: %+v vs %+v", i, a.Colors[i], b.Colors[i])
		}
	}
}

func TestGenerateFromMoodNoSeedDeterministicForSamePhrase(t *testing.T) {
	a, _ := GenerateFromMood(context.Background(), "calm ocean sunset", nil)
	b, _ := GenerateFromMood(context.Background(), "calm ocean sunset", nil)
	if len(a.Colors) != len(b.Colors) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Colors), len(b.Colors))
	}
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			t.Errorf("entry %d differs between unseeded calls with identical mood", i)
		}
	}
}

func TestGenerateFromMoodHappyLighterThanDark(t *testing.T) {
	happy, _ := GenerateFromMood(context.Background(), "happy bright sunny", nil)
	dark, _ := GenerateFromMood(context.Background(), "dark mysterious night", nil)

	meanL := func(p GeneratedPalette) float64 {
		var sum float64
		for _, a := range p.Colors {
			sum += a.Color.L
		}
		return sum / float64(len(p.Colors))
	}

	if meanL(happy) <= meanL(dark) {
		t.Errorf("expected happy mood mean L (%v) > dark mood mean L (%v)", meanL(happy), meanL(dark))
	}
}

func TestGenerateFromImageEmptyFails(t *testing.T) {
	_, err := GenerateFromImage(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error for empty pixels")
	}
}

func TestGenerateFromImageScenarioS5(t *testing.T) {
	pixels := []colorspace.RGB{
		{R: 200, G: 30, B: 30},
		{R: 30, G: 200, B: 30},
		{R: 30, G: 30, B: 200},
		{R: 220, G: 220, B: 50},
		{R: 50, G: 220, B: 220},
		{R: 220, G: 50, B: 220},
		{R: 128, G: 128, B: 128},
		{R: 250, G: 240, B: 230},
	}
	palette, err := GenerateFromImage(context.Background(), pixels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(palette.Colors) < 5 || len(palette.Colors) > 12 {
		t.Errorf("palette size %d out of expected range", len(palette.Colors))
	}
	if palette.Generator != "image" {
		t.Errorf("generator = %q, want \"image\"", palette.Generator)
	}
}
