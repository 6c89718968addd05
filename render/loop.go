// Package render implements the render loop (component F): a periodic task
// that clears the next frame, evaluates every active pattern into it, swaps
// the frame buffer, and notifies the output loop. Grounded on the teacher's
// panel.Panel.update ticker loop and board-yellow.go's context-cancelled
// goroutine lifecycle.
package render

import (
	"context"
	"time"

	"github.com/christophergm/ledengine/internal/clock"
	"github.com/christophergm/ledengine/matrix"
	"github.com/christophergm/ledengine/pattern"
)

// DefaultPeriod is the render tick cadence (~20 Hz).
const DefaultPeriod = 50 * time.Millisecond

// Loop runs the periodic render tick against a Registry and a frame Buffer,
// notifying Ready after every swap. It holds no exported mutable state; all
// coordination lives in the Registry and Buffer it was built with.
type Loop struct {
	buf      *matrix.Buffer
	registry *pattern.Registry
	clock    clock.Clock
	period   time.Duration
	ready    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Loop. ready is a buffered (capacity >= 1) channel the caller
// also passes to the output loop; Tick performs a non-blocking send so a
// render tick never stalls waiting for the output loop to drain a prior
// notification (overflow coalesces into one pending notification).
func New(buf *matrix.Buffer, registry *pattern.Registry, c clock.Clock, period time.Duration, ready chan struct{}) *Loop {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Loop{
		buf:      buf,
		registry: registry,
		clock:    c,
		period:   period,
		ready:    ready,
		done:     make(chan struct{}),
	}
}

// Tick performs one full render cycle: clear next, evaluate every active
// pattern into it, swap, and notify. Exported so tests can drive individual
// ticks without running the goroutine.
func (l *Loop) Tick() {
	now := l.clock.NowMs()

	next := l.buf.NextMatrix()
	next.Clear()

	l.registry.Tick(now, func(d pattern.Descriptor, patternTimeMs uint32) {
		pattern.Evaluate(next, d, patternTimeMs)
	})

	l.buf.Swap()
	l.notify()
}

func (l *Loop) notify() {
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Start launches the periodic goroutine. Call Close to stop it. Calling
// Start twice without an intervening Close leaks the first goroutine.
func (l *Loop) Start() {
	l.ctx, l.cancel = context.WithCancel(context.Background())
	l.done = make(chan struct{})
	go l.run(l.ctx)
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Close signals the goroutine to exit and waits for it to finish. Close
// before Start is a no-op.
func (l *Loop) Close() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}
