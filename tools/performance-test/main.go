// Command performance-test benchmarks image-based palette synthesis
// (synth.GenerateFromImage) against synthetic pixel fixtures, since real
// image decoding is out of scope for the engine.
package main

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/omarchy/palettegen/pkg/colorspace"
	"github.com/omarchy/palettegen/pkg/generative"
	"github.com/omarchy/palettegen/pkg/settings"
	"github.com/omarchy/palettegen/pkg/synth"
)

type runResult struct {
	Name        string
	PixelCount  int
	GenTime     time.Duration
	MemoryUsed  float64
	PaletteSize int
	Success     bool
	Error       error
}

func main() {
	fmt.Printf("Palette Synthesis Performance Test\n")
	fmt.Printf("Target: < 2 seconds per run, < 100MB peak memory\n\n")

	s := settings.DefaultSettings()
	ctx := settings.WithSettings(context.Background(), s)

	fixtures := []struct {
		name   string
		pixels []colorspace.RGB
	}{
		{"gradient-256x256", generative.GradientNoise(256, 256)},
		{"gradient-1024x768", generative.GradientNoise(1024, 768)},
		{"monochrome-512x512", generative.Monochrome(512, 512)},
		{"high-contrast-512x512", generative.HighContrast(512, 512)},
	}

	var results []runResult
	var total time.Duration

	for _, fx := range fixtures {
		var m1, m2 runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&m1)

		start := time.Now()
		palette, err := synth.GenerateFromImage(ctx, fx.pixels)
		elapsed := time.Since(start)

		runtime.GC()
		runtime.ReadMemStats(&m2)

		r := runResult{
			Name:       fx.name,
			PixelCount: len(fx.pixels),
			GenTime:    elapsed,
			MemoryUsed: float64(m2.Sys-m1.Sys) / 1024 / 1024,
		}
		if err != nil {
			r.Error = err
		} else {
			r.Success = true
			r.PaletteSize = len(palette.Colors)
			total += elapsed
		}

		fmt.Printf("%-24s %8d px %7.1fms %7.1fMB %s\n",
			r.Name, r.PixelCount,
			float64(r.GenTime.Nanoseconds())/1e6,
			r.MemoryUsed, status(r))

		results = append(results, r)
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("SUMMARY\n")
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	successful := filterSuccessful(results)
	if len(successful) == 0 {
		fmt.Printf("No runs completed successfully!\n")
		return
	}

	times := make([]time.Duration, len(successful))
	for i, r := range successful {
		times[i] = r.GenTime
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	fmt.Printf("Generation Time Statistics:\n")
	fmt.Printf("  Average: %6.1fms\n", float64(total.Nanoseconds())/float64(len(successful))/1e6)
	fmt.Printf("  Median:  %6.1fms\n", float64(times[len(times)/2].Nanoseconds())/1e6)
	fmt.Printf("  Min:     %6.1fms\n", float64(times[0].Nanoseconds())/1e6)
	fmt.Printf("  Max:     %6.1fms\n", float64(times[len(times)-1].Nanoseconds())/1e6)

	compliant := 0
	for _, r := range successful {
		if r.GenTime < 2*time.Second {
			compliant++
		}
	}
	fmt.Printf("\nTime target (< 2s): %d/%d runs\n", compliant, len(successful))
}

func status(r runResult) string {
	if !r.Success {
		return "ERROR"
	}
	if r.GenTime < 2*time.Second {
		return "PASS"
	}
	return "FAIL (slow)"
}

func filterSuccessful(results []runResult) []runResult {
	var successful []runResult
	for _, r := range results {
		if r.Success {
			successful = append(successful, r)
		}
	}
	return successful
}
