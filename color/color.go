// Package color implements the pure color kernel shared by every pattern
// evaluator: construction, interpolation, scaling, blending and rainbow
// palette generation. Every function here is deterministic; all except
// PaletteRainbow, which allocates the slice it returns, are allocation free.
package color

import "math"

// Color is a 4-channel LED color. Intensity is an independent brightness
// scalar, not premultiplied into R/G/B; the emitted channel value is
// (channel * Intensity) / 255.
type Color struct {
	R, G, B   uint8
	Intensity uint8
}

// Black is the zero value, used as the default/off pixel.
var Black = Color{}

// New constructs a Color from its four channels.
func New(r, g, b, intensity uint8) Color {
	return Color{R: r, G: g, B: b, Intensity: intensity}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + t*(float64(b)-float64(a))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Trunc(v))
}

// Interpolate returns the channelwise linear interpolation between a and b
// at t, clamped to [0,1] and rounded toward zero.
func Interpolate(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R:         lerpChannel(a.R, b.R, t),
		G:         lerpChannel(a.G, b.G, t),
		B:         lerpChannel(a.B, b.B, t),
		Intensity: lerpChannel(a.Intensity, b.Intensity, t),
	}
}

// Scale returns c with every channel multiplied by s, clamped to [0,1].
func Scale(c Color, s float64) Color {
	s = clamp01(s)
	return Color{
		R:         uint8(math.Trunc(float64(c.R) * s)),
		G:         uint8(math.Trunc(float64(c.G) * s)),
		B:         uint8(math.Trunc(float64(c.B) * s)),
		Intensity: uint8(math.Trunc(float64(c.Intensity) * s)),
	}
}

// BlendMode selects the channelwise combination rule used by Blend.
type BlendMode int

const (
	BlendAdd BlendMode = iota
	BlendMax
	BlendAverage
	BlendMultiply
)

func addSat(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// Blend combines c1 and c2 channelwise according to mode.
func Blend(c1, c2 Color, mode BlendMode) Color {
	switch mode {
	case BlendAdd:
		return Color{
			R:         addSat(c1.R, c2.R),
			G:         addSat(c1.G, c2.G),
			B:         addSat(c1.B, c2.B),
			Intensity: addSat(c1.Intensity, c2.Intensity),
		}
	case BlendMax:
		return Color{
			R:         maxU8(c1.R, c2.R),
			G:         maxU8(c1.G, c2.G),
			B:         maxU8(c1.B, c2.B),
			Intensity: maxU8(c1.Intensity, c2.Intensity),
		}
	case BlendAverage:
		return Color{
			R:         uint8((uint16(c1.R) + uint16(c2.R)) / 2),
			G:         uint8((uint16(c1.G) + uint16(c2.G)) / 2),
			B:         uint8((uint16(c1.B) + uint16(c2.B)) / 2),
			Intensity: uint8((uint16(c1.Intensity) + uint16(c2.Intensity)) / 2),
		}
	case BlendMultiply:
		return Color{
			R:         uint8((uint16(c1.R) * uint16(c2.R)) / 255),
			G:         uint8((uint16(c1.G) * uint16(c2.G)) / 255),
			B:         uint8((uint16(c1.B) * uint16(c2.B)) / 255),
			Intensity: uint8((uint16(c1.Intensity) * uint16(c2.Intensity)) / 255),
		}
	default:
		return c1
	}
}

// MaxPaletteColors bounds both PaletteRainbow and a PALETTE_CYCLE pattern's
// palette size.
const MaxPaletteColors = 32

// PaletteRainbow builds k colors (capped at MaxPaletteColors) sweeping hue
// across [0,360) at full saturation and value, via the standard six-sector
// HSV->RGB formula. Intensity is fixed at full (255).
func PaletteRainbow(k int) []Color {
	if k > MaxPaletteColors {
		k = MaxPaletteColors
	}
	if k <= 0 {
		return nil
	}

	palette := make([]Color, k)
	for i := 0; i < k; i++ {
		hue := float64(i) / float64(k) * 360.0
		palette[i] = hsvToRGB(hue, 1.0, 1.0)
	}
	return palette
}

// hsvToRGB converts a hue in [0,360), full saturation and value, to a Color
// with intensity fixed at 255, via the standard six-sector formula.
func hsvToRGB(hue, saturation, value float64) Color {
	c := value * saturation
	hPrime := hue / 60.0
	x := c * (1 - math.Abs(math.Mod(hPrime, 2)-1))

	var r, g, b float64
	switch {
	case hPrime < 1:
		r, g, b = c, x, 0
	case hPrime < 2:
		r, g, b = x, c, 0
	case hPrime < 3:
		r, g, b = 0, c, x
	case hPrime < 4:
		r, g, b = 0, x, c
	case hPrime < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := value - c
	return Color{
		R:         uint8(math.Trunc((r + m) * 255)),
		G:         uint8(math.Trunc((g + m) * 255)),
		B:         uint8(math.Trunc((b + m) * 255)),
		Intensity: 255,
	}
}

// EaseInOut is a smoothstep easing curve, available to callers that want a
// softer transition than FADE/GRADIENT's plain linear interpolation.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}
