package pattern

import "github.com/christophergm/ledengine/color"

// NewStatic installs a STATIC descriptor covering [startIndex,endIndex] on
// edge and starts it at t0.
func NewStatic(r *Registry, edge, startIndex, endIndex int, c color.Color, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindStatic,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     StaticParams{Color: c},
	})
}

// NewBlink installs a BLINK descriptor. When repeatCount > 0, the descriptor
// retires after (onMs+offMs)*repeatCount ms; repeatCount == 0 runs unbounded
// (DESIGN.md Open Question 3).
func NewBlink(r *Registry, edge, startIndex, endIndex int, onColor color.Color, onMs, offMs uint32, repeatCount int, t0 uint32) (int, error) {
	var duration uint32
	if repeatCount > 0 {
		duration = (onMs + offMs) * uint32(repeatCount)
	}
	return r.Create(Descriptor{
		Type:       KindBlink,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Duration:   duration,
		Active:     true,
		Params:     BlinkParams{OnColor: onColor, OnTimeMs: onMs, OffTimeMs: offMs, RepeatCount: repeatCount},
	})
}

// NewFade installs a FADE descriptor. durationMs must be > 0.
func NewFade(r *Registry, edge, startIndex, endIndex int, start, end color.Color, durationMs, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindFade,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Duration:   durationMs,
		Active:     true,
		Params:     FadeParams{StartColor: start, EndColor: end},
	})
}

// NewPulse installs a PULSE (breathing) descriptor, unbounded in duration.
func NewPulse(r *Registry, edge, startIndex, endIndex int, base color.Color, peakIntensity uint8, periodMs, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindPulse,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     PulseParams{BaseColor: base, PeakIntensity: peakIntensity, PeriodMs: periodMs},
	})
}

// NewShift installs a SHIFT descriptor over an arbitrary color sequence.
func NewShift(r *Registry, edge, startIndex, endIndex int, colors []color.Color, periodMs uint32, offset int, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindShift,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     ShiftParams{Colors: colors, PeriodMs: periodMs, Offset: offset},
	})
}

// NewShiftComet builds a SHIFT descriptor whose sequence is a single lit
// pixel followed by (length-1) off pixels, producing a single point of
// light scrolling along the range.
func NewShiftComet(r *Registry, edge, startIndex, endIndex int, c color.Color, length int, periodMs uint32, t0 uint32) (int, error) {
	colors := make([]color.Color, length)
	colors[0] = c
	for i := 1; i < length; i++ {
		colors[i] = color.Black
	}
	return NewShift(r, edge, startIndex, endIndex, colors, periodMs, 0, t0)
}

// NewShiftDot is an alias of NewShiftComet kept for source-texture parity
// with the original led_pattern_shift_dot helper: a single dot of color
// scrolling through an otherwise-dark range.
func NewShiftDot(r *Registry, edge, startIndex, endIndex int, c color.Color, length int, periodMs uint32, t0 uint32) (int, error) {
	return NewShiftComet(r, edge, startIndex, endIndex, c, length, periodMs, t0)
}

// NewGradient installs a GRADIENT descriptor, unbounded in duration.
func NewGradient(r *Registry, edge, startIndex, endIndex int, start, end color.Color, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindGradient,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     GradientParams{StartColor: start, EndColor: end},
	})
}

// NewTwinkle installs a TWINKLE descriptor, unbounded in duration.
func NewTwinkle(r *Registry, edge, startIndex, endIndex int, c color.Color, probability float64, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindTwinkle,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     TwinkleParams{Color: c, Probability: probability},
	})
}

// NewPaletteCycle installs a PALETTE_CYCLE descriptor, unbounded in
// duration.
func NewPaletteCycle(r *Registry, edge, startIndex, endIndex int, palette []color.Color, cyclePeriodMs uint32, offset int, t0 uint32) (int, error) {
	return r.Create(Descriptor{
		Type:       KindPaletteCycle,
		Edge:       edge,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  t0,
		Active:     true,
		Params:     PaletteCycleParams{Palette: palette, CyclePeriodMs: cyclePeriodMs, Offset: offset},
	})
}
