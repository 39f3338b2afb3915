// Package roles assigns semantic UI roles to an unordered sequence of
// OKLCH colors: background, text, primary, secondary, accent, and the four
// hue-sector semantic roles (error, success, info, warning).
package roles

import (
	"sort"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

// ColorRole identifies the UI purpose a color was assigned to.
type ColorRole string

const (
	Background ColorRole = "background"
	Text       ColorRole = "text"
	Primary    ColorRole = "primary"
	Secondary  ColorRole = "secondary"
	Accent     ColorRole = "accent"
	Info       ColorRole = "info"
	Success    ColorRole = "success"
	Warning    ColorRole = "warning"
	Error      ColorRole = "error"
)

// AssignedColor pairs a role with the OKLCH color it was assigned to.
type AssignedColor struct {
	Role  ColorRole
	Color colorspace.OKLCH
}

type indexedColor struct {
	color colorspace.OKLCH
	index int
}

// DefaultPrimaryLightnessMin and DefaultPrimaryLightnessMax bound the
// lightness band a color must fall strictly inside to qualify as primary
// when the caller does not supply its own bounds via AssignWithBounds.
const (
	DefaultPrimaryLightnessMin = 0.3
	DefaultPrimaryLightnessMax = 0.7
)

// Assign implements the role-assignment algorithm with the default primary
// lightness band. See AssignWithBounds for the configurable form.
func Assign(colors []colorspace.OKLCH) []AssignedColor {
	return AssignWithBounds(colors, DefaultPrimaryLightnessMin, DefaultPrimaryLightnessMax)
}

// AssignWithBounds implements the role-assignment algorithm: sort by
// lightness, peel off background/text anchors, pick the most chromatic
// color whose lightness falls strictly inside (lightnessMin, lightnessMax)
// as primary, the next two most chromatic as secondary/accent, and
// classify everything left over by hue sector. Every input color is
// assigned exactly once; ties break by stable input order.
func AssignWithBounds(colors []colorspace.OKLCH, lightnessMin, lightnessMax float64) []AssignedColor {
	if len(colors) == 0 {
		return nil
	}

	indexed := make([]indexedColor, len(colors))
	for i, c := range colors {
		indexed[i] = indexedColor{color: c, index: i}
	}

	byLightness := append([]indexedColor(nil), indexed...)
	sort.SliceStable(byLightness, func(i, j int) bool {
		return byLightness[i].color.L < byLightness[j].color.L
	})

	used := make(map[int]bool, len(colors))
	assignments := make([]AssignedColor, 0, len(colors))

	background := byLightness[len(byLightness)-1]
	assignments = append(assignments, AssignedColor{Role: Background, Color: background.color})
	used[background.index] = true

	if len(byLightness) >= 2 {
		text := byLightness[0]
		if !used[text.index] {
			assignments = append(assignments, AssignedColor{Role: Text, Color: text.color})
			used[text.index] = true
		}
	}

	remaining := func() []indexedColor {
		out := make([]indexedColor, 0, len(indexed))
		for _, ic := range indexed {
			if !used[ic.index] {
				out = append(out, ic)
			}
		}
		return out
	}

	// Primary: highest chroma among remaining with L strictly in (lightnessMin, lightnessMax).
	rem := remaining()
	primaryIdx := -1
	for i, ic := range rem {
		if ic.color.L > lightnessMin && ic.color.L < lightnessMax {
			if primaryIdx == -1 || ic.color.C > rem[primaryIdx].color.C {
				primaryIdx = i
			}
		}
	}
	if primaryIdx != -1 {
		assignments = append(assignments, AssignedColor{Role: Primary, Color: rem[primaryIdx].color})
		used[rem[primaryIdx].index] = true
	}

	// Secondary and accent: next two highest chroma among what's left.
	for _, role := range []ColorRole{Secondary, Accent} {
		rem = remaining()
		if len(rem) == 0 {
			break
		}
		best := 0
		for i, ic := range rem {
			if ic.color.C > rem[best].color.C {
				best = i
			}
		}
		assignments = append(assignments, AssignedColor{Role: role, Color: rem[best].color})
		used[rem[best].index] = true
	}

	// Everything left: classify by hue sector, preserving stable input order.
	for _, ic := range indexed {
		if used[ic.index] {
			continue
		}
		assignments = append(assignments, AssignedColor{Role: hueSectorRole(ic.color.H), Color: ic.color})
		used[ic.index] = true
	}

	return assignments
}

func hueSectorRole(h float64) ColorRole {
	h = colorspace.NormalizeHue(h)
	switch {
	case h < 60:
		return Error
	case h < 150:
		return Success
	case h < 270:
		return Info
	default:
		return Warning
	}
}
