package cluster

import (
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

func TestExtractDominantEmpty(t *testing.T) {
	got := ExtractDominant(nil, 3)
	if len(got) != 0 {
		t.Errorf("expected empty result for empty pixels, got %+v", got)
	}
}

func TestExtractDominantIdenticalPixels(t *testing.T) {
	pixels := make([]colorspace.RGB, 50)
	for i := range pixels {
		pixels[i] = colorspace.RGB{R: 120, G: 80, B: 200}
	}
	got := ExtractDominant(pixels, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 centroids, got %d", len(got))
	}
	want := colorspace.RGBToOKLCH(pixels[0])
	for _, c := range got {
		if c != want {
			t.Errorf("degenerate input should converge to the single pixel color, got %+v want %+v", c, want)
		}
	}
}

func TestExtractDominantCount(t *testing.T) {
	pixels := []colorspace.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
		{R: 0, G: 255, B: 255},
		{R: 255, G: 0, B: 255},
		{R: 10, G: 10, B: 10},
		{R: 240, G: 240, B: 240},
	}
	got := ExtractDominant(pixels, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 centroids, got %d", len(got))
	}
	for _, c := range got {
		if c.H < 0 || c.H >= 360 {
			t.Errorf("centroid hue out of range: %+v", c)
		}
	}
}
