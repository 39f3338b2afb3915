package contrast

import (
	"math"
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/roles"
)

var black = colorspace.RGB{R: 0, G: 0, B: 0}
var white = colorspace.RGB{R: 255, G: 255, B: 255}

func TestRatioBlackWhite(t *testing.T) {
	got := Ratio(black, white)
	if math.Abs(got-21) > 0.5 {
		t.Errorf("Ratio(black,white) = %v, want ~21", got)
	}
}

func TestRatioSymmetric(t *testing.T) {
	a := colorspace.RGB{R: 12, G: 200, B: 90}
	b := colorspace.RGB{R: 220, G: 30, B: 10}
	if math.Abs(Ratio(a, b)-Ratio(b, a)) > 1e-2 {
		t.Errorf("Ratio is not symmetric: %v vs %v", Ratio(a, b), Ratio(b, a))
	}
}

func TestRatioSelfIsOne(t *testing.T) {
	c := colorspace.RGB{R: 100, G: 150, B: 200}
	if math.Abs(Ratio(c, c)-1) > 1e-9 {
		t.Errorf("Ratio(x,x) = %v, want 1", Ratio(c, c))
	}
}

func TestGenerateReportWithBackground(t *testing.T) {
	palette := []roles.AssignedColor{
		{Role: roles.Background, Color: colorspace.OKLCH{L: 0.98, C: 0, H: 0}},
		{Role: roles.Text, Color: colorspace.OKLCH{L: 0.05, C: 0, H: 0}},
		{Role: roles.Primary, Color: colorspace.OKLCH{L: 0.5, C: 0.2, H: 220}},
	}
	report := GenerateReport(palette)
	if report.TotalPairs != 2 {
		t.Fatalf("expected 2 checks (text/primary x background), got %d", report.TotalPairs)
	}
}

func TestFindAccessiblePairs(t *testing.T) {
	target := colorspace.OKLCH{L: 0.95, C: 0, H: 0}
	candidates := []colorspace.OKLCH{
		{L: 0.05, C: 0, H: 0},
		{L: 0.9, C: 0, H: 0},
		{L: 0.5, C: 0.1, H: 100},
	}
	got := FindAccessiblePairs(target, candidates, 4.5)
	if len(got) == 0 {
		t.Error("expected at least one accessible pair against a near-white target")
	}
	for _, c := range got {
		if RatioOKLCH(target, c) < 4.5 {
			t.Errorf("returned candidate %+v below min ratio", c)
		}
	}
}
