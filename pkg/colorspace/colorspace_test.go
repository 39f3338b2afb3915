package colorspace

import "testing"

func TestRGBOKLCHRoundTrip(t *testing.T) {
	cases := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 128, G: 64, B: 200},
		{R: 16, G: 200, B: 96},
		{R: 255, G: 0, B: 0},
	}

	for _, c := range cases {
		got := OKLCHToRGB(RGBToOKLCH(c))
		if absDiff(int(got.R), int(c.R)) > 2 || absDiff(int(got.G), int(c.G)) > 2 || absDiff(int(got.B), int(c.B)) > 2 {
			t.Errorf("round trip %+v -> %+v exceeds tolerance", c, got)
		}
	}
}

func TestBlackAndWhiteRoundTrip(t *testing.T) {
	black := OKLCHToRGB(OKLCH{L: 0, C: 0, H: 0})
	if black != (RGB{0, 0, 0}) {
		t.Errorf("L=0 should round-trip to black, got %+v", black)
	}

	white := OKLCHToRGB(OKLCH{L: 1, C: 0, H: 0})
	if white != (RGB{255, 255, 255}) {
		t.Errorf("L=1,C=0 should round-trip to white, got %+v", white)
	}
}

func TestGrayInvariant(t *testing.T) {
	for v := uint8(0); ; v += 17 {
		oklch := RGBToOKLCH(RGB{R: v, G: v, B: v})
		if oklch.C >= 0.01 {
			t.Errorf("gray %d produced chroma %v, want < 0.01", v, oklch.C)
		}
		if v >= 255-17 {
			break
		}
	}
}

func TestMonotoneLightness(t *testing.T) {
	var prev float64 = -1
	for v := uint8(0); ; v += 25 {
		oklch := RGBToOKLCH(RGB{R: v, G: v, B: v})
		if oklch.L <= prev {
			t.Errorf("lightness not strictly increasing at gray %d: prev=%v cur=%v", v, prev, oklch.L)
		}
		prev = oklch.L
		if v >= 255-25 {
			break
		}
	}
}

func TestHueAlwaysNormalized(t *testing.T) {
	hues := []float64{-400, -10, 0, 359.999, 360, 720.5}
	for _, h := range hues {
		got := NormalizeHue(h)
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeHue(%v) = %v, out of [0,360)", h, got)
		}
	}
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
