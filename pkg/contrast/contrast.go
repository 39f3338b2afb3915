// Package contrast implements the WCAG 2.0/2.1 relative luminance and
// contrast ratio calculations, the four accessibility level tests, and the
// pairwise report the rest of the engine uses to grade and filter palettes.
package contrast

import (
	"math"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/roles"
)

// WCAGLevel identifies one of the four WCAG conformance thresholds.
type WCAGLevel string

const (
	AANormal  WCAGLevel = "AA-normal"
	AALarge   WCAGLevel = "AA-large"
	AAANormal WCAGLevel = "AAA-normal"
	AAALarge  WCAGLevel = "AAA-large"
)

// Thresholds maps each WCAGLevel to its minimum passing contrast ratio.
var Thresholds = map[WCAGLevel]float64{
	AANormal:  4.5,
	AALarge:   3.0,
	AAANormal: 7.0,
	AAALarge:  4.5,
}

// ContrastCheck reports the ratio between a foreground/background role pair
// and whether it meets each WCAG level.
type ContrastCheck struct {
	Foreground roles.ColorRole
	Background roles.ColorRole
	Ratio      float64
	Passes     map[WCAGLevel]bool
}

// ContrastReport is the full set of pairwise checks for a palette plus a
// pass-count summary.
type ContrastReport struct {
	Checks     []ContrastCheck
	TotalPairs int
	PassingAA  int
	PassingAAA int
}

func relativeLuminanceChannel(x float64) float64 {
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG relative luminance of an sRGB color.
func RelativeLuminance(c colorspace.RGB) float64 {
	r := relativeLuminanceChannel(float64(c.R) / 255)
	g := relativeLuminanceChannel(float64(c.G) / 255)
	b := relativeLuminanceChannel(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio computes the WCAG contrast ratio between two sRGB colors. The
// result is always in [1, 21] and symmetric in its arguments.
func Ratio(a, b colorspace.RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter, darker := la, lb
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// RatioOKLCH is a convenience wrapper converting OKLCH colors before
// computing Ratio.
func RatioOKLCH(a, b colorspace.OKLCH) float64 {
	return Ratio(colorspace.OKLCHToRGB(a), colorspace.OKLCHToRGB(b))
}

// MeetsLevel reports whether ratio satisfies the given WCAG level.
func MeetsLevel(ratio float64, level WCAGLevel) bool {
	return ratio >= Thresholds[level]
}

// Check builds a ContrastCheck for an arbitrary foreground/background role
// pair given their OKLCH colors.
func Check(fgRole, bgRole roles.ColorRole, fg, bg colorspace.OKLCH) ContrastCheck {
	ratio := RatioOKLCH(fg, bg)
	passes := make(map[WCAGLevel]bool, len(Thresholds))
	for level := range Thresholds {
		passes[level] = MeetsLevel(ratio, level)
	}
	return ContrastCheck{Foreground: fgRole, Background: bgRole, Ratio: ratio, Passes: passes}
}

// GenerateReport builds a ContrastReport for a role-assigned palette. When
// the palette has at least one background-role color, every non-background
// foreground is checked against every background. Otherwise every unordered
// pair is checked.
func GenerateReport(palette []roles.AssignedColor) ContrastReport {
	var backgrounds []roles.AssignedColor
	var others []roles.AssignedColor
	for _, a := range palette {
		if a.Role == roles.Background {
			backgrounds = append(backgrounds, a)
		} else {
			others = append(others, a)
		}
	}

	var checks []ContrastCheck
	if len(backgrounds) > 0 {
		for _, fg := range others {
			for _, bg := range backgrounds {
				checks = append(checks, Check(fg.Role, bg.Role, fg.Color, bg.Color))
			}
		}
	} else {
		for i := 0; i < len(palette); i++ {
			for j := i + 1; j < len(palette); j++ {
				checks = append(checks, Check(palette[i].Role, palette[j].Role, palette[i].Color, palette[j].Color))
			}
		}
	}

	report := ContrastReport{Checks: checks, TotalPairs: len(checks)}
	for _, c := range checks {
		if c.Passes[AANormal] {
			report.PassingAA++
		}
		if c.Passes[AAANormal] {
			report.PassingAAA++
		}
	}
	return report
}

// DefaultMinRatio is the minimum contrast ratio FindAccessiblePairs uses
// when the caller passes a minRatio of zero or less.
const DefaultMinRatio = 4.5

// FindAccessiblePairs returns the subset of candidates whose contrast ratio
// against target is at least minRatio. A minRatio of zero or less selects
// DefaultMinRatio.
func FindAccessiblePairs(target colorspace.OKLCH, candidates []colorspace.OKLCH, minRatio float64) []colorspace.OKLCH {
	if minRatio <= 0 {
		minRatio = DefaultMinRatio
	}
	out := make([]colorspace.OKLCH, 0, len(candidates))
	for _, c := range candidates {
		if RatioOKLCH(target, c) >= minRatio {
			out = append(out, c)
		}
	}
	return out
}
