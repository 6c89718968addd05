package pattern

import (
	"errors"
	"sync"

	"github.com/christophergm/ledengine/color"
	"github.com/christophergm/ledengine/matrix"
)

// MaxPatterns is the registry's fixed capacity.
const MaxPatterns = 16

// ErrCapacityExceeded is returned by Create when all MaxPatterns slots are
// in use.
var ErrCapacityExceeded = errors.New("pattern: registry at capacity")

// ErrInvalidArgument is returned by Create when the descriptor or its
// params are malformed (out-of-range edge, empty range, zero-length
// palette/shift array, out-of-range probability).
var ErrInvalidArgument = errors.New("pattern: invalid argument")

// Registry is a fixed-capacity table of pattern descriptors. A slot index
// serves as the stable pattern id returned to callers. It is safe for
// concurrent use by the render loop and control-API callers.
type Registry struct {
	mu    sync.Mutex
	slots [MaxPatterns]Descriptor
	used  [MaxPatterns]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Create validates d, then installs it into the lowest unused slot and
// returns the slot index as the pattern id. d.Active and d.StartTime are
// left as given by the caller (typically the pattern constructors in this
// package set Active=true and StartTime=now).
func (r *Registry) Create(d Descriptor) (int, error) {
	if err := validate(d); err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < MaxPatterns; i++ {
		if !r.used[i] {
			r.slots[i] = d
			r.used[i] = true
			return i, nil
		}
	}
	return -1, ErrCapacityExceeded
}

func validate(d Descriptor) error {
	if d.Edge < 0 || d.Edge >= matrix.MaxEdges {
		return ErrInvalidArgument
	}
	if d.StartIndex < 0 || d.EndIndex < d.StartIndex {
		return ErrInvalidArgument
	}
	switch p := d.Params.(type) {
	case ShiftParams:
		if len(p.Colors) == 0 || len(p.Colors) > matrix.MaxLedsPerEdge {
			return ErrInvalidArgument
		}
	case PaletteCycleParams:
		if len(p.Palette) == 0 || len(p.Palette) > color.MaxPaletteColors {
			return ErrInvalidArgument
		}
	case TwinkleParams:
		if p.Probability < 0 || p.Probability > 1 {
			return ErrInvalidArgument
		}
	case FadeParams:
		if d.Duration == 0 {
			return ErrInvalidArgument
		}
	}
	return nil
}

// Start sets start_time and marks id active. No-op on an invalid id.
func (r *Registry) Start(id int, t0 uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validID(id) {
		return
	}
	r.slots[id].StartTime = t0
	r.slots[id].Active = true
}

// Stop clears the active flag but preserves the descriptor. No-op on an
// invalid id.
func (r *Registry) Stop(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validID(id) {
		return
	}
	r.slots[id].Active = false
}

// Remove releases params and clears active; the slot becomes reusable by a
// later Create. No-op on an invalid id.
func (r *Registry) Remove(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validID(id) {
		return
	}
	r.slots[id] = Descriptor{}
	r.used[id] = false
}

// Get returns a copy of the descriptor at id and whether the slot is in
// use.
func (r *Registry) Get(id int) (Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.validID(id) {
		return Descriptor{}, false
	}
	return r.slots[id], true
}

// validID reports whether id addresses a currently-used slot. Callers must
// hold r.mu.
func (r *Registry) validID(id int) bool {
	return id >= 0 && id < MaxPatterns && r.used[id]
}

// Tick is called once per render tick. It iterates slots in order 0..
// capacity, retiring any active descriptor whose duration has elapsed, and
// invokes fn with a copy of every descriptor that is active after that
// retirement check. fn is called while the registry's mutex is held, so it
// must be fast and must not call back into the registry; it receives a
// value copy of the descriptor, so retirement or removal that happens after
// Tick returns cannot race with fn's use of Params.
func (r *Registry) Tick(nowMs uint32, fn func(d Descriptor, patternTimeMs uint32)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < MaxPatterns; i++ {
		if !r.used[i] || !r.slots[i].Active {
			continue
		}
		d := r.slots[i]
		patternTime := nowMs - d.StartTime
		if d.Duration > 0 && patternTime > d.Duration {
			r.slots[i].Active = false
			continue
		}
		fn(d, patternTime)
	}
}
