// Package colorspace implements the sRGB, linear RGB, OKLab, OKLCH, and HSL
// conversions the rest of the engine builds on. Every operation here is a
// pure function: no allocation beyond the returned value, no I/O, no shared
// mutable state.
package colorspace

import "math"

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// LinearRGB holds channels in linear light, nominally [0,1] but may be
// transiently out of gamut mid-pipeline.
type LinearRGB struct {
	R, G, B float64
}

// OKLab is the Cartesian encoding of the OKLab perceptual color space.
type OKLab struct {
	L, A, B float64
}

// OKLCH is the cylindrical (lightness, chroma, hue) encoding of OKLab.
// H is always normalized to [0, 360) by every constructor in this package.
type OKLCH struct {
	L, C, H float64
}

// HSL is hue/saturation/lightness with H in [0,360) and S, L in [0,100].
type HSL struct {
	H, S, L float64
}

// Forward and inverse OKLab matrices, Björn Ottosson's published constants.
// Stored verbatim rather than inverted at runtime.
var (
	m1Fwd = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	m2Fwd = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	m2Inv = [3][3]float64{
		{1.0000000000, 0.3963377774, 0.2158037573},
		{1.0000000000, -0.1055613458, -0.0638541728},
		{1.0000000000, -0.0894841775, -1.2914855480},
	}
	m1Inv = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

func apply(m [3][3]float64, x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// NormalizeHue folds a hue in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func srgbToLinearChannel(x float64) float64 {
	ax := math.Abs(x)
	if ax <= 0.04045 {
		return x / 12.92
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	return sign * math.Pow((ax+0.055)/1.055, 2.4)
}

func linearToSRGBChannel(x float64) float64 {
	ax := math.Abs(x)
	if ax <= 0.0031308 {
		return x * 12.92
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	return sign * (1.055*math.Pow(ax, 1/2.4) - 0.055)
}

// RGBToLinear converts an 8-bit sRGB color to linear-light RGB.
func RGBToLinear(c RGB) LinearRGB {
	return LinearRGB{
		R: srgbToLinearChannel(float64(c.R) / 255),
		G: srgbToLinearChannel(float64(c.G) / 255),
		B: srgbToLinearChannel(float64(c.B) / 255),
	}
}

// LinearToRGB converts linear-light RGB back to 8-bit sRGB, clamping each
// channel into [0,1] before rounding half-up to the nearest integer.
func LinearToRGB(c LinearRGB) RGB {
	r := linearToSRGBChannel(c.R)
	g := linearToSRGBChannel(c.G)
	b := linearToSRGBChannel(c.B)
	return RGB{
		R: clampByte(r),
		G: clampByte(g),
		B: clampByte(b),
	}
}

func clampByte(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(math.Floor(x*255 + 0.5))
}

// LinearToOKLab converts linear RGB to OKLab via the Ottosson matrices.
func LinearToOKLab(c LinearRGB) OKLab {
	l, m, s := apply(m1Fwd, c.R, c.G, c.B)
	l = cbrt(l)
	m = cbrt(m)
	s = cbrt(s)
	L, a, b := apply(m2Fwd, l, m, s)
	return OKLab{L: L, A: a, B: b}
}

// OKLabToLinear is the inverse of LinearToOKLab.
func OKLabToLinear(c OKLab) LinearRGB {
	l, m, s := apply(m2Inv, c.L, c.A, c.B)
	l = l * l * l
	m = m * m * m
	s = s * s * s
	r, g, b := apply(m1Inv, l, m, s)
	return LinearRGB{R: r, G: g, B: b}
}

func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}

// OKLabToOKLCH converts Cartesian OKLab to cylindrical OKLCH, normalizing H.
func OKLabToOKLCH(c OKLab) OKLCH {
	chroma := math.Sqrt(c.A*c.A + c.B*c.B)
	hue := math.Atan2(c.B, c.A) * 180 / math.Pi
	return OKLCH{L: c.L, C: chroma, H: NormalizeHue(hue)}
}

// OKLCHToOKLab converts cylindrical OKLCH back to Cartesian OKLab.
func OKLCHToOKLab(c OKLCH) OKLab {
	rad := c.H * math.Pi / 180
	return OKLab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// RGBToOKLCH composes the full sRGB -> OKLCH pipeline.
func RGBToOKLCH(c RGB) OKLCH {
	return OKLabToOKLCH(LinearToOKLab(RGBToLinear(c)))
}

// OKLCHToRGB composes the full OKLCH -> sRGB pipeline, gamut-clamped.
func OKLCHToRGB(c OKLCH) RGB {
	return LinearToRGB(OKLabToLinear(OKLCHToOKLab(c)))
}

// RGBToHSL converts 8-bit sRGB to HSL with H in [0,360) and S, L in [0,100].
// Pure grays canonically yield S=0, H=0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: NormalizeHue(h), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL (H in degrees, S/L in [0,100]) to 8-bit sRGB.
func HSLToRGB(c HSL) RGB {
	h := NormalizeHue(c.H) / 360
	s := c.S / 100
	l := c.L / 100

	if s == 0 {
		v := clampByte(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+1.0/3.0)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3.0)

	return RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// OKLCHToHSL composes OKLCH -> RGB -> HSL.
func OKLCHToHSL(c OKLCH) HSL {
	return RGBToHSL(OKLCHToRGB(c))
}

// HSLToOKLCH composes HSL -> RGB -> OKLCH.
func HSLToOKLCH(c HSL) OKLCH {
	return RGBToOKLCH(HSLToRGB(c))
}
