// Package render formats engine colors as the hex and CSS function strings
// a terminal or config consumer expects, adapted from the teacher's
// pointer-receiver Color formatting methods into pure functions over the
// engine's value types.
package render

import (
	"fmt"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

// HEX returns c as a 6-digit lowercase hex string, e.g. "#a1b2c3".
func HEX(c colorspace.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSSRGB returns c as a CSS rgb() function string.
func CSSRGB(c colorspace.RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CSSHSL returns c as a CSS hsl() function string with H in degrees and
// S, L as percentages.
func CSSHSL(c colorspace.HSL) string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
}

// OKLCHHex renders an OKLCH color directly as its gamut-clamped hex string.
func OKLCHHex(c colorspace.OKLCH) string {
	return HEX(colorspace.OKLCHToRGB(c))
}
