// Command validate-color-science is a standalone validation utility for the
// palette engine's color math: space conversions, WCAG contrast, and harmony
// generation, checked against published reference values rather than unit
// test assertions.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/contrast"
	"github.com/omarchy/palettegen/pkg/harmony"
)

// ValidationResult tracks the outcome of a specific validation test.
type ValidationResult struct {
	TestName  string
	Passed    bool
	Expected  interface{}
	Actual    interface{}
	Tolerance float64
	Details   string
}

// ColorScienceValidator performs comprehensive validation of color algorithms.
type ColorScienceValidator struct {
	results []ValidationResult
}

func main() {
	fmt.Println("Color Science Validation Tool")
	fmt.Println("==============================")

	validator := &ColorScienceValidator{}

	validator.validateRGBHSLConversions()
	validator.validateOKLabRoundTrip()
	validator.validateWCAGCompliance()
	validator.validateGammaCorrection()
	validator.validateHarmonyAlgorithms()
	validator.validateEdgeCases()

	validator.printReport()

	if validator.hasFailures() {
		os.Exit(1)
	}
}

func (v *ColorScienceValidator) validateRGBHSLConversions() {
	fmt.Println("\nRGB <-> HSL Conversion Validation")

	testCases := []struct {
		name string
		rgb  colorspace.RGB
		hsl  colorspace.HSL
	}{
		{"CSS Spec: Pure Red", colorspace.RGB{R: 255, G: 0, B: 0}, colorspace.HSL{H: 0, S: 100, L: 50}},
		{"CSS Spec: Pure Green", colorspace.RGB{R: 0, G: 255, B: 0}, colorspace.HSL{H: 120, S: 100, L: 50}},
		{"CSS Spec: Pure Blue", colorspace.RGB{R: 0, G: 0, B: 255}, colorspace.HSL{H: 240, S: 100, L: 50}},
		{"CSS Spec: Yellow", colorspace.RGB{R: 255, G: 255, B: 0}, colorspace.HSL{H: 60, S: 100, L: 50}},
		{"CSS Spec: Cyan", colorspace.RGB{R: 0, G: 255, B: 255}, colorspace.HSL{H: 180, S: 100, L: 50}},
		{"CSS Spec: Magenta", colorspace.RGB{R: 255, G: 0, B: 255}, colorspace.HSL{H: 300, S: 100, L: 50}},
	}

	tolerance := 0.5

	for _, tc := range testCases {
		actualHSL := colorspace.RGBToHSL(tc.rgb)
		v.validateHSL(tc.name+" RGB->HSL", tc.hsl, actualHSL, tolerance)

		actualRGB := colorspace.HSLToRGB(tc.hsl)
		v.validateRGB(tc.name+" HSL->RGB", tc.rgb, actualRGB, 1)

		roundTrip := colorspace.HSLToRGB(colorspace.RGBToHSL(tc.rgb))
		v.validateRGB(tc.name+" Round-trip", tc.rgb, roundTrip, 1)
	}
}

func (v *ColorScienceValidator) validateOKLabRoundTrip() {
	fmt.Println("\nOKLCH Round-trip Validation")

	samples := []colorspace.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 128, G: 64, B: 200},
		{R: 255, G: 0, B: 0},
		{R: 18, G: 140, B: 90},
	}

	tolerance := uint8(2)

	for _, rgb := range samples {
		back := colorspace.OKLCHToRGB(colorspace.RGBToOKLCH(rgb))
		v.validateRGB(fmt.Sprintf("OKLCH round-trip RGB(%d,%d,%d)", rgb.R, rgb.G, rgb.B), rgb, back, tolerance)
	}
}

func (v *ColorScienceValidator) validateWCAGCompliance() {
	fmt.Println("\nWCAG 2.1 Compliance Validation")

	testCases := []struct {
		name     string
		c1, c2   colorspace.RGB
		expected float64
	}{
		{"WCAG Example: Black on White", colorspace.RGB{R: 0, G: 0, B: 0}, colorspace.RGB{R: 255, G: 255, B: 255}, 21.0},
		{"WCAG Example: White on Black", colorspace.RGB{R: 255, G: 255, B: 255}, colorspace.RGB{R: 0, G: 0, B: 0}, 21.0},
		{"WCAG AA Threshold Test", colorspace.RGB{R: 118, G: 118, B: 118}, colorspace.RGB{R: 255, G: 255, B: 255}, 4.5},
		{"WCAG AAA Threshold Test", colorspace.RGB{R: 89, G: 89, B: 89}, colorspace.RGB{R: 255, G: 255, B: 255}, 7.0},
	}

	tolerance := 0.15

	for _, tc := range testCases {
		actual := contrast.Ratio(tc.c1, tc.c2)
		passed := math.Abs(actual-tc.expected) <= tolerance

		v.results = append(v.results, ValidationResult{
			TestName:  tc.name,
			Passed:    passed,
			Expected:  tc.expected,
			Actual:    actual,
			Tolerance: tolerance,
			Details: fmt.Sprintf("Colors: RGB(%d,%d,%d) vs RGB(%d,%d,%d)",
				tc.c1.R, tc.c1.G, tc.c1.B, tc.c2.R, tc.c2.G, tc.c2.B),
		})
	}
}

func (v *ColorScienceValidator) validateGammaCorrection() {
	fmt.Println("\nGamma Correction Validation")

	testCases := []struct {
		name      string
		sRGB      float64
		linear    float64
		tolerance float64
	}{
		{"sRGB Spec: Linearization threshold (0.04045)", 0.04045, 0.04045 / 12.92, 0.01},
		{"sRGB Spec: Middle gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4), 0.01},
		{"sRGB Spec: 18%% gray (photography standard)", 0.18, math.Pow((0.18+0.055)/1.055, 2.4), 0.01},
	}

	for _, tc := range testCases {
		channel := uint8(tc.sRGB * 255)
		actual := colorspace.RGBToLinear(colorspace.RGB{R: channel, G: channel, B: channel}).R
		passed := math.Abs(actual-tc.linear) <= tc.tolerance

		v.results = append(v.results, ValidationResult{
			TestName:  tc.name,
			Passed:    passed,
			Expected:  tc.linear,
			Actual:    actual,
			Tolerance: tc.tolerance,
			Details:   fmt.Sprintf("sRGB: %.4f", tc.sRGB),
		})
	}
}

func (v *ColorScienceValidator) validateHarmonyAlgorithms() {
	fmt.Println("\nHarmony Algorithm Validation")

	base := colorspace.OKLCH{L: 0.6, C: 0.2, H: 40}

	comp := harmony.Complementary(base)
	v.check("Complementary hue offset", 180.0, math.Mod(comp.H-base.H+360, 360), 0.01)
	v.check("Complementary preserves L", base.L, comp.L, 0.0001)
	v.check("Complementary preserves C", base.C, comp.C, 0.0001)

	triad := harmony.Triadic(base)
	if len(triad) != 2 {
		v.results = append(v.results, ValidationResult{TestName: "Triadic count", Passed: false, Expected: 2, Actual: len(triad)})
	} else {
		v.check("Triadic first offset", 120.0, math.Mod(triad[0].H-base.H+360, 360), 0.01)
		v.check("Triadic second offset", 240.0, math.Mod(triad[1].H-base.H+360, 360), 0.01)
	}

	analogous := harmony.Analogous(base, 30, 2)
	if len(analogous) != 2 {
		v.results = append(v.results, ValidationResult{TestName: "Analogous count", Passed: false, Expected: 2, Actual: len(analogous)})
	} else {
		v.check("Analogous step +30", 30.0, math.Mod(analogous[0].H-base.H+360, 360), 0.01)
	}

	wrapped := harmony.Complementary(colorspace.OKLCH{L: 0.5, C: 0.1, H: 350})
	v.check("Complementary wraps hue into [0,360)", true, wrapped.H >= 0 && wrapped.H < 360, 0)
}

func (v *ColorScienceValidator) validateEdgeCases() {
	fmt.Println("\nEdge Case Validation")

	gray := colorspace.RGBToHSL(colorspace.RGB{R: 128, G: 128, B: 128})
	v.check("Pure gray has zero saturation", 0.0, gray.S, 0.01)

	black := colorspace.RGBToOKLCH(colorspace.RGB{R: 0, G: 0, B: 0})
	v.check("Black has near-zero lightness", true, black.L < 0.01, 0)

	white := colorspace.RGBToOKLCH(colorspace.RGB{R: 255, G: 255, B: 255})
	v.check("White has near-maximal lightness", true, white.L > 0.99, 0)
}

func (v *ColorScienceValidator) validateHSL(name string, expected, actual colorspace.HSL, tolerance float64) {
	passed := math.Abs(expected.H-actual.H) <= tolerance*10 &&
		math.Abs(expected.S-actual.S) <= tolerance*10 &&
		math.Abs(expected.L-actual.L) <= tolerance*10
	v.results = append(v.results, ValidationResult{
		TestName: name,
		Passed:   passed,
		Expected: expected,
		Actual:   actual,
	})
}

func (v *ColorScienceValidator) validateRGB(name string, expected, actual colorspace.RGB, tolerance uint8) {
	diff := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	passed := diff(expected.R, actual.R) <= tolerance &&
		diff(expected.G, actual.G) <= tolerance &&
		diff(expected.B, actual.B) <= tolerance
	v.results = append(v.results, ValidationResult{
		TestName: name,
		Passed:   passed,
		Expected: expected,
		Actual:   actual,
	})
}

func (v *ColorScienceValidator) check(name string, expected, actual interface{}, tolerance float64) {
	passed := false
	switch e := expected.(type) {
	case float64:
		a, _ := actual.(float64)
		passed = math.Abs(e-a) <= tolerance
	case bool:
		a, _ := actual.(bool)
		passed = e == a
	}
	v.results = append(v.results, ValidationResult{
		TestName: name,
		Passed:   passed,
		Expected: expected,
		Actual:   actual,
	})
}

func (v *ColorScienceValidator) printReport() {
	fmt.Println("\nValidation Report")
	fmt.Println("==================")

	passed := 0
	total := len(v.results)

	for _, result := range v.results {
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		} else {
			passed++
		}

		fmt.Printf("%s %s\n", status, result.TestName)
		if !result.Passed {
			fmt.Printf("   Expected: %v\n", result.Expected)
			fmt.Printf("   Actual:   %v\n", result.Actual)
		}
		if result.Details != "" {
			fmt.Printf("   Details:  %s\n", result.Details)
		}
	}

	fmt.Printf("\nSummary: %d/%d tests passed (%.1f%%)\n",
		passed, total, float64(passed)/float64(total)*100)

	if passed == total {
		fmt.Println("All color science validations passed.")
	} else {
		fmt.Printf("%d validation(s) failed - review implementations\n", total-passed)
	}
}

func (v *ColorScienceValidator) hasFailures() bool {
	for _, result := range v.results {
		if !result.Passed {
			return true
		}
	}
	return false
}
