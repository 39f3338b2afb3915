// Command palettegen generates an accessible color palette from a base
// color, a mood phrase, or a synthetic image fixture, and prints it as hex
// swatches plus a WCAG contrast report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/contrast"
	"github.com/omarchy/palettegen/pkg/generative"
	"github.com/omarchy/palettegen/pkg/render"
	"github.com/omarchy/palettegen/pkg/settings"
	"github.com/omarchy/palettegen/pkg/synth"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("palettegen: ")

	var (
		mood    = flag.String("mood", "", "generate from a mood phrase, e.g. \"calm ocean sunset\"")
		base    = flag.String("base", "", "generate from a base color as hex, e.g. #3b82f6")
		bases   = flag.String("bases", "", "generate from comma-separated base colors as hex")
		seed    = flag.Int64("seed", -1, "explicit PRNG seed for -mood (negative = derive from phrase)")
		image   = flag.String("image", "", "generate from a synthetic image fixture: gradient, monochrome, or high-contrast")
		report  = flag.Bool("contrast", true, "print the WCAG contrast report")
	)
	flag.Parse()

	s, err := settings.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}
	ctx := settings.WithSettings(context.Background(), s)

	var palette synth.GeneratedPalette

	switch {
	case *mood != "":
		var seedPtr *uint32
		if *seed >= 0 {
			v := uint32(*seed)
			seedPtr = &v
		}
		palette, err = synth.GenerateFromMood(ctx, *mood, seedPtr)
	case *base != "":
		c, parseErr := parseHex(*base)
		if parseErr != nil {
			log.Fatalf("parsing -base: %v", parseErr)
		}
		palette, err = synth.GenerateFromBaseColor(ctx, colorspace.RGBToOKLCH(c))
	case *bases != "":
		var colors []colorspace.OKLCH
		for _, hex := range strings.Split(*bases, ",") {
			c, parseErr := parseHex(strings.TrimSpace(hex))
			if parseErr != nil {
				log.Fatalf("parsing -bases: %v", parseErr)
			}
			colors = append(colors, colorspace.RGBToOKLCH(c))
		}
		palette, err = synth.GenerateFromBaseColors(ctx, colors)
	case *image != "":
		pixels := fixture(*image)
		if pixels == nil {
			log.Fatalf("unknown -image fixture %q (want gradient, monochrome, or high-contrast)", *image)
		}
		palette, err = synth.GenerateFromImage(ctx, pixels)
	default:
		fmt.Fprintln(os.Stderr, "usage: palettegen -mood \"phrase\" | -base #hex | -bases #hex,#hex | -image gradient|monochrome|high-contrast")
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("generating palette: %v", err)
	}

	printPalette(palette)

	if *report {
		printContrastReport(contrast.GenerateReport(palette.Colors))
	}
}

func fixture(name string) []colorspace.RGB {
	switch name {
	case "gradient":
		return generative.GradientNoise(256, 256)
	case "monochrome":
		return generative.Monochrome(256, 256)
	case "high-contrast":
		return generative.HighContrast(256, 256)
	default:
		return nil
	}
}

func parseHex(hex string) (colorspace.RGB, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return colorspace.RGB{}, fmt.Errorf("expected 6 hex digits, got %q", hex)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return colorspace.RGB{}, err
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return colorspace.RGB{}, err
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return colorspace.RGB{}, err
	}
	return colorspace.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func printPalette(p synth.GeneratedPalette) {
	fmt.Printf("generator: %s\n", p.Generator)
	fmt.Printf("generated: %s\n", p.Timestamp)
	fmt.Printf("%s\n\n", p.Explanation)

	for _, a := range p.Colors {
		rgb := colorspace.OKLCHToRGB(a.Color)
		fmt.Printf("  %-10s %s\n", a.Role, render.HEX(rgb))
	}
}

func printContrastReport(r contrast.ContrastReport) {
	fmt.Printf("\ncontrast report: %d pairs, %d pass AA, %d pass AAA\n", r.TotalPairs, r.PassingAA, r.PassingAAA)
	for _, c := range r.Checks {
		status := "fail"
		if c.Passes[contrast.AANormal] {
			status = "AA"
		}
		if c.Passes[contrast.AAANormal] {
			status = "AAA"
		}
		fmt.Printf("  %-10s on %-10s  %5.2f:1  %s\n", c.Foreground, c.Background, c.Ratio, status)
	}
}
