// Package pattern implements the pattern registry (component D) and the
// eight time -> pixel evaluators (component E). A Descriptor's Params is a
// tagged sum type (one concrete struct per Kind) standing in for the
// original C implementation's untyped payload, per the redesign note in
// SPEC_FULL.md section 3.
package pattern

import "github.com/christophergm/ledengine/color"

// Kind identifies which evaluator a Descriptor's Params belongs to.
type Kind int

const (
	KindStatic Kind = iota
	KindBlink
	KindFade
	KindPulse
	KindShift
	KindGradient
	KindTwinkle
	KindPaletteCycle
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "STATIC"
	case KindBlink:
		return "BLINK"
	case KindFade:
		return "FADE"
	case KindPulse:
		return "PULSE"
	case KindShift:
		return "SHIFT"
	case KindGradient:
		return "GRADIENT"
	case KindTwinkle:
		return "TWINKLE"
	case KindPaletteCycle:
		return "PALETTE_CYCLE"
	default:
		return "UNKNOWN"
	}
}

// Params is implemented by each of the eight param shapes below.
type Params interface {
	Kind() Kind
}

// StaticParams holds the parameters for a STATIC pattern.
type StaticParams struct {
	Color color.Color
}

// Kind implements Params.
func (StaticParams) Kind() Kind { return KindStatic }

// BlinkParams holds the parameters for a BLINK pattern. Duration is derived
// at creation time: (OnTimeMs+OffTimeMs)*RepeatCount when RepeatCount>0,
// else unbounded (0).
type BlinkParams struct {
	OnColor     color.Color
	OnTimeMs    uint32
	OffTimeMs   uint32
	RepeatCount int
}

// Kind implements Params.
func (BlinkParams) Kind() Kind { return KindBlink }

// FadeParams holds the parameters for a FADE pattern. Duration must be > 0.
type FadeParams struct {
	StartColor color.Color
	EndColor   color.Color
}

// Kind implements Params.
func (FadeParams) Kind() Kind { return KindFade }

// PulseParams holds the parameters for a PULSE (breathing) pattern.
type PulseParams struct {
	BaseColor     color.Color
	PeakIntensity uint8
	PeriodMs      uint32
}

// Kind implements Params.
func (PulseParams) Kind() Kind { return KindPulse }

// ShiftParams holds the parameters for a SHIFT (scrolling pattern-array)
// pattern. 0 < len(Colors) <= 256.
type ShiftParams struct {
	Colors   []color.Color
	PeriodMs uint32
	Offset   int
}

// Kind implements Params.
func (ShiftParams) Kind() Kind { return KindShift }

// GradientParams holds the parameters for a GRADIENT pattern.
type GradientParams struct {
	StartColor color.Color
	EndColor   color.Color
}

// Kind implements Params.
func (GradientParams) Kind() Kind { return KindGradient }

// TwinkleParams holds the parameters for a TWINKLE pattern. Probability is
// in [0,1].
type TwinkleParams struct {
	Color       color.Color
	Probability float64
}

// Kind implements Params.
func (TwinkleParams) Kind() Kind { return KindTwinkle }

// PaletteCycleParams holds the parameters for a PALETTE_CYCLE pattern.
// 0 < len(Palette) <= color.MaxPaletteColors.
type PaletteCycleParams struct {
	Palette       []color.Color
	CyclePeriodMs uint32
	Offset        int
}

// Kind implements Params.
func (PaletteCycleParams) Kind() Kind { return KindPaletteCycle }

// Descriptor is one active (or inactive, but retained) pattern entry. A
// slot's Params lifetime is exactly the Descriptor's lifetime inside the
// Registry: Remove releases it and clears Active.
type Descriptor struct {
	Type       Kind
	Edge       int
	StartIndex int
	EndIndex   int
	StartTime  uint32 // ms, monotonic
	Duration   uint32 // ms; 0 = unbounded
	Active     bool
	Params     Params
}

// Len returns the number of LEDs this descriptor's range covers.
func (d Descriptor) Len() int {
	if d.EndIndex < d.StartIndex {
		return 0
	}
	return d.EndIndex - d.StartIndex + 1
}
