package generative

import "testing"

func TestGradientNoiseSize(t *testing.T) {
	pixels := GradientNoise(32, 32)
	if len(pixels) != 32*32 {
		t.Fatalf("len = %d, want %d", len(pixels), 32*32)
	}
}

func TestGradientNoiseVaries(t *testing.T) {
	pixels := GradientNoise(16, 16)
	seen := make(map[[3]uint8]bool)
	for _, p := range pixels {
		seen[[3]uint8{p.R, p.G, p.B}] = true
	}
	if len(seen) < 8 {
		t.Errorf("expected meaningful color diversity, got %d distinct pixels", len(seen))
	}
}

func TestMonochromeIsGray(t *testing.T) {
	pixels := Monochrome(16, 16)
	for _, p := range pixels {
		if p.R != p.G || p.G != p.B {
			t.Fatalf("pixel %+v is not gray", p)
		}
	}
}

func TestHighContrastBlocks(t *testing.T) {
	pixels := HighContrast(50, 50)
	if len(pixels) != 2500 {
		t.Fatalf("len = %d, want 2500", len(pixels))
	}
	seen := make(map[[3]uint8]bool)
	for _, p := range pixels {
		seen[[3]uint8{p.R, p.G, p.B}] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected exactly 5 distinct colors, got %d", len(seen))
	}
}
