// Package strip is the public control API (the role the teacher's
// peripheral.ColorLedStrip and panel.Panel play together): it owns the
// edge layout, the pattern registry, the double frame buffer, and the
// render/output loop pair, and exposes the high-level edge-pattern helper
// used by callers that don't want to build Descriptors by hand.
package strip

import (
	"errors"
	"time"

	"github.com/christophergm/ledengine/color"
	"github.com/christophergm/ledengine/internal/clock"
	"github.com/christophergm/ledengine/matrix"
	"github.com/christophergm/ledengine/output"
	"github.com/christophergm/ledengine/pattern"
	"github.com/christophergm/ledengine/render"
)

// Kind is the high-level pattern kind accepted by SetEdgePattern, distinct
// from pattern.Kind: it adds OFF and BREATH/RAINBOW/FADE_IN/FADE_OUT
// names that translate to a lower-level pattern.Kind plus fixed
// parameter choices.
type Kind int

const (
	KindOff Kind = iota
	KindStatic
	KindBlink
	KindBreath
	KindRainbow
	KindFadeIn
	KindFadeOut
	KindTwinkle
)

// MinSpeedMs is the enforced floor for SetEdgePattern's speed_ms argument.
const MinSpeedMs = 1000

// ErrInvalidEdge is returned when an edge index is out of the controller's
// configured range. New also returns it for an edge configuration outside
// matrix.MaxEdges/MaxLedsPerEdge, and SetEdgePattern for an unknown Kind.
var ErrInvalidEdge = errors.New("strip: invalid edge index")

// Controller owns one strip's engine: registry, frame buffer, render and
// output loops. Plays the role of the spec's controller_create handle.
type Controller struct {
	ledsPerEdge []int
	registry    *pattern.Registry
	buffer      *matrix.Buffer
	clock       clock.Clock
	ready       chan struct{}

	renderLoop *render.Loop
	outputLoop *output.Loop

	edgePatternID []int // per-edge owned pattern id, -1 if none
}

// New builds a Controller for the given per-edge LED counts and driver.
// It does not start the background loops; call Start for that.
func New(ledsPerEdge []int, driver output.Driver) (*Controller, error) {
	if len(ledsPerEdge) == 0 || len(ledsPerEdge) > matrix.MaxEdges {
		return nil, ErrInvalidEdge
	}
	for _, n := range ledsPerEdge {
		if n <= 0 || n > matrix.MaxLedsPerEdge {
			return nil, ErrInvalidEdge
		}
	}

	registry := pattern.NewRegistry()
	buffer := matrix.NewBuffer(ledsPerEdge)
	c := clock.NewReal()
	ready := make(chan struct{}, 1)

	edgeIDs := make([]int, len(ledsPerEdge))
	for i := range edgeIDs {
		edgeIDs[i] = -1
	}

	ctrl := &Controller{
		ledsPerEdge:   ledsPerEdge,
		registry:      registry,
		buffer:        buffer,
		clock:         c,
		ready:         ready,
		edgePatternID: edgeIDs,
	}
	ctrl.renderLoop = render.New(buffer, registry, c, render.DefaultPeriod, ready)
	ctrl.outputLoop = output.New(buffer, driver, ready, output.DefaultWaitTimeout, ledsPerEdge)
	return ctrl, nil
}

// Start launches the render and output loops.
func (c *Controller) Start() {
	c.renderLoop.Start()
	c.outputLoop.Start()
}

// Close stops both loops and releases the frame buffer. Post-Close, the
// Controller must not be used.
func (c *Controller) Close() {
	c.renderLoop.Close()
	c.outputLoop.Close()
	c.buffer.Close()
}

func (c *Controller) validEdge(edge int) bool {
	return edge >= 0 && edge < len(c.ledsPerEdge)
}

// SetEdgePattern removes any prior descriptor owned by edge and registers
// a new one covering the whole edge, translating (kind, speed_ms) into the
// matching low-level pattern per the fixed mapping table: OFF->STATIC
// black, STATIC->STATIC color, BLINK->BLINK on=off=speed/2,
// BREATH->PULSE period=speed, RAINBOW->PALETTE_CYCLE over a 12-step
// rainbow with cycle_period=speed, FADE_IN->FADE(black->color,
// duration=speed), FADE_OUT->FADE(color->black, duration=speed),
// TWINKLE->TWINKLE probability=0.2. speed_ms is floored at MinSpeedMs.
func (c *Controller) SetEdgePattern(edge int, kind Kind, r, g, b, intensity uint8, speedMs uint32) error {
	if !c.validEdge(edge) {
		return ErrInvalidEdge
	}
	if speedMs < MinSpeedMs {
		speedMs = MinSpeedMs
	}

	c.clearEdge(edge)

	col := color.New(r, g, b, intensity)
	start := 0
	end := c.ledsPerEdge[edge] - 1
	now := c.clock.NowMs()

	var id int
	var err error
	switch kind {
	case KindOff:
		id, err = pattern.NewStatic(c.registry, edge, start, end, color.Black, now)
	case KindStatic:
		id, err = pattern.NewStatic(c.registry, edge, start, end, col, now)
	case KindBlink:
		half := speedMs / 2
		id, err = pattern.NewBlink(c.registry, edge, start, end, col, half, half, 0, now)
	case KindBreath:
		id, err = pattern.NewPulse(c.registry, edge, start, end, col, intensity, speedMs, now)
	case KindRainbow:
		id, err = pattern.NewPaletteCycle(c.registry, edge, start, end, color.PaletteRainbow(12), speedMs, 0, now)
	case KindFadeIn:
		id, err = pattern.NewFade(c.registry, edge, start, end, color.Black, col, speedMs, now)
	case KindFadeOut:
		id, err = pattern.NewFade(c.registry, edge, start, end, col, color.Black, speedMs, now)
	case KindTwinkle:
		id, err = pattern.NewTwinkle(c.registry, edge, start, end, col, 0.2, now)
	default:
		return ErrInvalidEdge
	}
	if err != nil {
		return err
	}
	c.edgePatternID[edge] = id
	return nil
}

func (c *Controller) clearEdge(edge int) {
	if id := c.edgePatternID[edge]; id >= 0 {
		c.registry.Remove(id)
		c.edgePatternID[edge] = -1
	}
}

// TurnOffEdge removes edge's owned descriptor, leaving that edge dark on
// the next render tick.
func (c *Controller) TurnOffEdge(edge int) error {
	if !c.validEdge(edge) {
		return ErrInvalidEdge
	}
	c.clearEdge(edge)
	return nil
}

// TurnOffAll removes every edge's owned descriptor.
func (c *Controller) TurnOffAll() {
	for e := range c.edgePatternID {
		c.clearEdge(e)
	}
}

// ClearAll removes every owned descriptor and immediately zeroes both
// frame buffers, rather than waiting for the next render tick.
func (c *Controller) ClearAll() {
	c.TurnOffAll()
	c.buffer.NextMatrix().Clear()
	c.buffer.ReadCurrent(func(m *matrix.Matrix) { m.Clear() })
}

// RenderPeriod returns the configured render tick cadence.
func (c *Controller) RenderPeriod() time.Duration {
	return render.DefaultPeriod
}
