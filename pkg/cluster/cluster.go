// Package cluster implements the image dominant-color extractor: a k-means
// clusterer operating in OKLCH space with a circular-mean hue update, fixed
// positional centroid initialization, and a hard 10-iteration cap.
package cluster

import (
	"math"

	"github.com/omarchy/palettegen/pkg/colorspace"
)

// MaxIterations bounds the k-means loop; there is no convergence test, so
// this cap is the only thing that guarantees termination.
const MaxIterations = 10

func hueDistanceCirc(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	if d > 360-d {
		return 360 - d
	}
	return d
}

func distance(a, b colorspace.OKLCH) float64 {
	dl := a.L - b.L
	dc := a.C - b.C
	dh := hueDistanceCirc(a.H, b.H) / 360
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}

func circularHueMean(hues []float64) float64 {
	var sinSum, cosSum float64
	for _, h := range hues {
		rad := h * math.Pi / 180
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	avg := math.Atan2(sinSum, cosSum) * 180 / math.Pi
	return colorspace.NormalizeHue(avg)
}

// ExtractDominant clusters pixels into k dominant OKLCH colors using the
// default MaxIterations cap. It returns an empty slice if pixels is empty.
// Initialization is purely positional (pixel at floor((i/k)*N) seeds
// centroid i), so reordering the input can change the result — this is a
// deliberate determinism choice, not a bug.
func ExtractDominant(pixels []colorspace.RGB, k int) []colorspace.OKLCH {
	return ExtractDominantWithIterations(pixels, k, MaxIterations)
}

// ExtractDominantWithIterations is ExtractDominant with a caller-supplied
// iteration cap, so deployments can trade accuracy for latency via
// Settings.Cluster.MaxIterations without touching the algorithm itself.
func ExtractDominantWithIterations(pixels []colorspace.RGB, k, maxIterations int) []colorspace.OKLCH {
	n := len(pixels)
	if n == 0 || k <= 0 {
		return []colorspace.OKLCH{}
	}

	points := make([]colorspace.OKLCH, n)
	for i, p := range pixels {
		points[i] = colorspace.RGBToOKLCH(p)
	}

	centroids := make([]colorspace.OKLCH, k)
	for i := 0; i < k; i++ {
		idx := int(float64(i) / float64(k) * float64(n))
		if idx >= n {
			idx = n - 1
		}
		centroids[i] = points[idx]
	}

	assignments := make([]int, n)

	for iter := 0; iter < maxIterations; iter++ {
		for pi, p := range points {
			best := 0
			bestDist := math.Inf(1)
			for ci, c := range centroids {
				d := distance(p, c)
				if d < bestDist {
					bestDist = d
					best = ci
				}
			}
			assignments[pi] = best
		}

		newCentroids := make([]colorspace.OKLCH, k)
		copy(newCentroids, centroids)

		for ci := range centroids {
			var lMean, cMean float64
			var hues []float64
			var count int
			for pi, a := range assignments {
				if a != ci {
					continue
				}
				count++
				lMean += (points[pi].L - lMean) / float64(count)
				cMean += (points[pi].C - cMean) / float64(count)
				hues = append(hues, points[pi].H)
			}
			if count == 0 {
				continue
			}
			newCentroids[ci] = colorspace.OKLCH{
				L: lMean,
				C: cMean,
				H: circularHueMean(hues),
			}
		}

		centroids = newCentroids
	}

	return centroids
}
