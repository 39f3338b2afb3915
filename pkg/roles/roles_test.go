package roles

import (
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

func TestAssignEmpty(t *testing.T) {
	if got := Assign(nil); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
}

func TestAssignAnchors(t *testing.T) {
	colors := []colorspace.OKLCH{
		{L: 0.95, C: 0.02, H: 10},
		{L: 0.05, C: 0.01, H: 10},
		{L: 0.5, C: 0.3, H: 220},
		{L: 0.5, C: 0.2, H: 30},
	}
	got := Assign(colors)

	var bgCount, textCount int
	for _, a := range got {
		if a.Role == Background {
			bgCount++
		}
		if a.Role == Text {
			textCount++
		}
	}
	if bgCount != 1 {
		t.Errorf("expected exactly one background, got %d", bgCount)
	}
	if textCount != 1 {
		t.Errorf("expected exactly one text, got %d", textCount)
	}
	if len(got) != len(colors) {
		t.Errorf("expected %d assignments, got %d", len(colors), len(got))
	}
}

func TestAssignHueSectorFallback(t *testing.T) {
	colors := []colorspace.OKLCH{
		{L: 0.9, C: 0.01, H: 0},
		{L: 0.1, C: 0.01, H: 0},
		{L: 0.5, C: 0.3, H: 220},
		{L: 0.5, C: 0.25, H: 30},
		{L: 0.5, C: 0.2, H: 40},
		{L: 0.5, C: 0.15, H: 100},
		{L: 0.5, C: 0.1, H: 200},
		{L: 0.5, C: 0.05, H: 300},
	}
	got := Assign(colors)
	roleSet := map[ColorRole]int{}
	for _, a := range got {
		roleSet[a.Role]++
	}
	if roleSet[Success] == 0 {
		t.Errorf("expected at least one success-sector color, got roles %+v", roleSet)
	}
	if roleSet[Warning] == 0 {
		t.Errorf("expected at least one warning-sector color, got roles %+v", roleSet)
	}
}
