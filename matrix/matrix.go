// Package matrix implements the ragged pixel store (component A) and the
// current/next double frame buffer (component B) shared by the render and
// output loops.
package matrix

import (
	"sync"

	"github.com/christophergm/ledengine/color"
)

// MaxEdges and MaxLedsPerEdge bound the edge configuration. strip.New
// rejects configurations outside them; New here does not check them.
const (
	MaxEdges       = 8
	MaxLedsPerEdge = 256
)

// Matrix is a ragged 2D store of per-LED color, indexed by (edge, led).
// Out-of-range access is a defensive no-op/zero-value, never an error, so
// pattern evaluators never need to special-case range mistakes.
type Matrix struct {
	rows [][]color.Color
}

// New allocates a zero-initialized (all-off) matrix shaped by
// ledsPerEdge: len(ledsPerEdge) edges, each with ledsPerEdge[e] LEDs.
func New(ledsPerEdge []int) *Matrix {
	rows := make([][]color.Color, len(ledsPerEdge))
	for e, n := range ledsPerEdge {
		rows[e] = make([]color.Color, n)
	}
	return &Matrix{rows: rows}
}

// NumEdges returns the number of edges in the matrix.
func (m *Matrix) NumEdges() int {
	return len(m.rows)
}

// EdgeLen returns the LED count of edge, or 0 if edge is out of range.
func (m *Matrix) EdgeLen(edge int) int {
	if edge < 0 || edge >= len(m.rows) {
		return 0
	}
	return len(m.rows[edge])
}

// Clear sets every pixel in the matrix to (0,0,0,0).
func (m *Matrix) Clear() {
	for _, row := range m.rows {
		for i := range row {
			row[i] = color.Black
		}
	}
}

// Set writes pixel (edge,i) <- c. Out-of-range is silently dropped.
func (m *Matrix) Set(edge, i int, c color.Color) {
	if edge < 0 || edge >= len(m.rows) {
		return
	}
	row := m.rows[edge]
	if i < 0 || i >= len(row) {
		return
	}
	row[i] = c
}

// Get returns pixel (edge,i), or the zero (off) color if out of range.
func (m *Matrix) Get(edge, i int) color.Color {
	if edge < 0 || edge >= len(m.rows) {
		return color.Black
	}
	row := m.rows[edge]
	if i < 0 || i >= len(row) {
		return color.Black
	}
	return row[i]
}

// Blend combines src into m in place, channelwise, via mode. Exposed as a
// library operation for callers that want blended composition; the default
// render loop does not call this (composition is last-writer-wins; see
// DESIGN.md Open Question 1).
func (m *Matrix) Blend(src *Matrix, mode color.BlendMode) {
	if src == nil {
		return
	}
	for e := range m.rows {
		if e >= len(src.rows) {
			return
		}
		dstRow := m.rows[e]
		srcRow := src.rows[e]
		n := len(dstRow)
		if len(srcRow) < n {
			n = len(srcRow)
		}
		for i := 0; i < n; i++ {
			dstRow[i] = color.Blend(dstRow[i], srcRow[i], mode)
		}
	}
}

// Buffer is the double frame buffer: a current matrix (stable, read by the
// output loop) and a next matrix (being composed by the render loop), with
// Swap() exchanging the two references under a mutex.
type Buffer struct {
	mu      sync.Mutex
	current *Matrix
	next    *Matrix
}

// NewBuffer allocates both matrices shaped by ledsPerEdge.
func NewBuffer(ledsPerEdge []int) *Buffer {
	return &Buffer{
		current: New(ledsPerEdge),
		next:    New(ledsPerEdge),
	}
}

// NextMatrix returns the matrix the render loop composes into. It is owned
// exclusively by the render loop between swaps and requires no locking.
func (b *Buffer) NextMatrix() *Matrix {
	return b.next
}

// Swap exchanges current and next under the mutex. After Swap, the
// just-composed matrix is current and remains stable until the following
// swap.
func (b *Buffer) Swap() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current, b.next = b.next, b.current
}

// ReadCurrent calls fn with the current matrix while holding the mutex for
// the full call, bounding the render loop's worst-case swap latency to the
// output loop's drain time. fn must not call back into Buffer.
func (b *Buffer) ReadCurrent(fn func(*Matrix)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.current)
}

// Close releases both matrices. Post-Close, Buffer must not be used.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	b.next = nil
}
