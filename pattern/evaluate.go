package pattern

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/christophergm/ledengine/color"
	"github.com/christophergm/ledengine/matrix"
)

// Evaluate dispatches d to the matching evaluator, writing only into
// m's pixel range [d.StartIndex, d.EndIndex] on d.Edge. patternTimeMs is
// now - d.StartTime, already computed by the caller (typically
// Registry.Tick).
func Evaluate(m *matrix.Matrix, d Descriptor, patternTimeMs uint32) {
	switch p := d.Params.(type) {
	case StaticParams:
		evalStatic(m, d, p)
	case BlinkParams:
		evalBlink(m, d, p, patternTimeMs)
	case FadeParams:
		evalFade(m, d, p, patternTimeMs)
	case PulseParams:
		evalPulse(m, d, p, patternTimeMs)
	case ShiftParams:
		evalShift(m, d, p, patternTimeMs)
	case GradientParams:
		evalGradient(m, d, p)
	case TwinkleParams:
		evalTwinkle(m, d, p, patternTimeMs)
	case PaletteCycleParams:
		evalPaletteCycle(m, d, p, patternTimeMs)
	}
}

func evalStatic(m *matrix.Matrix, d Descriptor, p StaticParams) {
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		m.Set(d.Edge, i, p.Color)
	}
}

func evalBlink(m *matrix.Matrix, d Descriptor, p BlinkParams, t uint32) {
	cycle := p.OnTimeMs + p.OffTimeMs
	if cycle == 0 {
		return
	}
	phase := t % cycle
	if phase >= p.OnTimeMs {
		return
	}
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		m.Set(d.Edge, i, p.OnColor)
	}
}

func evalFade(m *matrix.Matrix, d Descriptor, p FadeParams, t uint32) {
	if d.Duration == 0 {
		return
	}
	ft := float64(t) / float64(d.Duration)
	if ft > 1.0 {
		ft = 1.0
	}
	c := color.Interpolate(p.StartColor, p.EndColor, ft)
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		m.Set(d.Edge, i, c)
	}
}

func evalPulse(m *matrix.Matrix, d Descriptor, p PulseParams, t uint32) {
	if p.PeriodMs == 0 {
		return
	}
	phase := float64(t%p.PeriodMs) / float64(p.PeriodMs)
	factor := (math.Sin(2*math.Pi*phase) + 1) / 2
	pulsed := p.BaseColor
	pulsed.Intensity = uint8(math.Trunc(float64(p.PeakIntensity) * factor))
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		m.Set(d.Edge, i, pulsed)
	}
}

func evalShift(m *matrix.Matrix, d Descriptor, p ShiftParams, t uint32) {
	l := len(p.Colors)
	if l == 0 || p.PeriodMs == 0 {
		return
	}
	totalLeds := d.Len()
	if totalLeds == 0 {
		return
	}
	shiftAmount := int(t/p.PeriodMs) % l

	for i := d.StartIndex; i <= d.EndIndex; i++ {
		localK := i - d.StartIndex
		idx := (localK + shiftAmount + p.Offset) % l
		if idx < 0 {
			idx += l
		}
		// If the pattern is longer than the covered range, wrap by the
		// range length instead (spec.md section 9 Open Question 2).
		if idx >= totalLeds {
			idx = idx % totalLeds
		}
		m.Set(d.Edge, i, p.Colors[idx])
	}
}

func evalGradient(m *matrix.Matrix, d Descriptor, p GradientParams) {
	n := d.Len()
	if n == 0 {
		return
	}
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		k := i - d.StartIndex
		var t float64
		if n > 1 {
			t = float64(k) / float64(n-1)
		}
		m.Set(d.Edge, i, color.Interpolate(p.StartColor, p.EndColor, t))
	}
}

func evalTwinkle(m *matrix.Matrix, d Descriptor, p TwinkleParams, t uint32) {
	rng := rand.New(rand.NewSource(uint64(t / 100)))
	for i := d.StartIndex; i <= d.EndIndex; i++ {
		u := rng.Float64()
		if u < p.Probability {
			m.Set(d.Edge, i, color.Scale(p.Color, 0.7+0.3*u))
		}
	}
}

func evalPaletteCycle(m *matrix.Matrix, d Descriptor, p PaletteCycleParams, t uint32) {
	k := len(p.Palette)
	if k == 0 || p.CyclePeriodMs == 0 {
		return
	}
	cyclePos := float64(t%p.CyclePeriodMs) / float64(p.CyclePeriodMs)

	for i := d.StartIndex; i <= d.EndIndex; i++ {
		localK := i - d.StartIndex
		ledPos := cyclePos + float64(localK+p.Offset)/10.0
		_, frac := math.Modf(ledPos)
		if frac < 0 {
			frac += 1.0
		}

		colorPos := frac * float64(k-1)
		idx := int(math.Trunc(colorPos))
		ft := colorPos - float64(idx)

		c1 := p.Palette[((idx%k)+k)%k]
		c2 := p.Palette[(((idx+1)%k)+k)%k]
		m.Set(d.Edge, i, color.Interpolate(c1, c2, ft))
	}
}
