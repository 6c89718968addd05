// Package output implements the output loop (component G): it waits for a
// render notification, drains the current frame with per-pixel brightness
// scaling, and pushes it to an external driver. Grounded on the teacher's
// peripheral.ColorLedStrip.Show and the board-yellow.go context-cancelled
// goroutine lifecycle.
package output

import (
	"context"
	"time"

	"github.com/christophergm/ledengine/matrix"
)

// DefaultWaitTimeout bounds how long the loop waits for a render
// notification before looping idle.
const DefaultWaitTimeout = 100 * time.Millisecond

// Driver is the external collaborator that owns the physical strip's wire
// encoding. SetPixel writes one already brightness-scaled RGB triple at a
// flat, edge-major/LED-minor index; Refresh pushes the whole frame once.
type Driver interface {
	SetPixel(index int, r, g, b uint8)
	Refresh() error
}

// Loop drains Buffer.current into a Driver whenever notified on ready.
type Loop struct {
	buf      *matrix.Buffer
	driver   Driver
	ready    <-chan struct{}
	timeout  time.Duration
	edgeBase []int // cumulative LED offset per edge, edge-major flattening

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// OnPushed, if set, is invoked after every drain+refresh, whether or not
	// Refresh returned an error.
	// Used by tests to observe frame pushes without racing the driver.
	OnPushed func()
}

// New builds a Loop. ledsPerEdge must match the shape the Buffer's matrices
// were constructed with.
func New(buf *matrix.Buffer, driver Driver, ready <-chan struct{}, timeout time.Duration, ledsPerEdge []int) *Loop {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	base := make([]int, len(ledsPerEdge))
	sum := 0
	for e, n := range ledsPerEdge {
		base[e] = sum
		sum += n
	}
	return &Loop{
		buf:      buf,
		driver:   driver,
		ready:    ready,
		timeout:  timeout,
		edgeBase: base,
		done:     make(chan struct{}),
	}
}

// Drain pushes one frame from the current matrix to the driver: per-pixel
// brightness scaling while holding the buffer's mutex, then a single refresh
// outside it. Exported so tests can drive pushes without running the
// goroutine.
func (l *Loop) Drain() {
	l.buf.ReadCurrent(func(m *matrix.Matrix) {
		for e := 0; e < m.NumEdges(); e++ {
			n := m.EdgeLen(e)
			base := 0
			if e < len(l.edgeBase) {
				base = l.edgeBase[e]
			}
			for i := 0; i < n; i++ {
				c := m.Get(e, i)
				r := uint8(uint16(c.R) * uint16(c.Intensity) / 255)
				g := uint8(uint16(c.G) * uint16(c.Intensity) / 255)
				b := uint8(uint16(c.B) * uint16(c.Intensity) / 255)
				l.driver.SetPixel(base+i, r, g, b)
			}
		}
	})
	l.driver.Refresh()
	if l.OnPushed != nil {
		l.OnPushed()
	}
}

// Start launches the wait-and-drain goroutine. Call Close to stop it.
func (l *Loop) Start() {
	l.ctx, l.cancel = context.WithCancel(context.Background())
	l.done = make(chan struct{})
	go l.run(l.ctx)
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	timer := time.NewTimer(l.timeout)
	defer timer.Stop()

	for {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(l.timeout)

		select {
		case <-ctx.Done():
			return
		case <-l.ready:
			l.Drain()
		case <-timer.C:
			// Idle: no notification within the timeout, loop again.
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
