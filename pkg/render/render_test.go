package render

import (
	"testing"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

func TestHEXFormat(t *testing.T) {
	got := HEX(colorspace.RGB{R: 161, G: 178, B: 195})
	if got != "#a1b2c3" {
		t.Errorf("HEX = %q, want #a1b2c3", got)
	}
}

func TestCSSRGBFormat(t *testing.T) {
	got := CSSRGB(colorspace.RGB{R: 10, G: 20, B: 30})
	if got != "rgb(10, 20, 30)" {
		t.Errorf("CSSRGB = %q, want rgb(10, 20, 30)", got)
	}
}

func TestOKLCHHexBlackWhite(t *testing.T) {
	if got := OKLCHHex(colorspace.OKLCH{L: 0, C: 0, H: 0}); got != "#000000" {
		t.Errorf("OKLCHHex(black) = %q, want #000000", got)
	}
	if got := OKLCHHex(colorspace.OKLCH{L: 1, C: 0, H: 0}); got != "#ffffff" {
		t.Errorf("OKLCHHex(white) = %q, want #ffffff", got)
	}
}
