package pattern

import (
	"testing"

	"github.com/christophergm/ledengine/color"
)

func TestCreateAssignsLowestFreeSlot(t *testing.T) {
	r := NewRegistry()
	id0, err := NewStatic(r, 0, 0, 4, color.New(1, 1, 1, 1), 0)
	if err != nil || id0 != 0 {
		t.Fatalf("expected id 0, got %d err %v", id0, err)
	}
	id1, _ := NewStatic(r, 0, 0, 4, color.New(1, 1, 1, 1), 0)
	if id1 != 1 {
		t.Fatalf("expected id 1, got %d", id1)
	}

	r.Remove(id0)
	id2, _ := NewStatic(r, 0, 0, 4, color.New(1, 1, 1, 1), 0)
	if id2 != 0 {
		t.Fatalf("expected slot 0 reused, got %d", id2)
	}
}

func TestCreateCapacityExceeded(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < MaxPatterns; i++ {
		if _, err := NewStatic(r, 0, 0, 1, color.Black, 0); err != nil {
			t.Fatalf("unexpected error filling registry: %v", err)
		}
	}
	id, err := NewStatic(r, 0, 0, 1, color.Black, 0)
	if err != ErrCapacityExceeded || id >= 0 {
		t.Fatalf("expected ErrCapacityExceeded, got id=%d err=%v", id, err)
	}
}

func TestCreateInvalidArgument(t *testing.T) {
	r := NewRegistry()

	if _, err := NewStatic(r, 9, 0, 1, color.Black, 0); err != ErrInvalidArgument {
		t.Errorf("out-of-range edge: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewStatic(r, 0, 5, 1, color.Black, 0); err != ErrInvalidArgument {
		t.Errorf("end<start: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewShift(r, 0, 0, 1, nil, 50, 0, 0); err != ErrInvalidArgument {
		t.Errorf("empty shift colors: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewPaletteCycle(r, 0, 0, 1, nil, 50, 0, 0); err != ErrInvalidArgument {
		t.Errorf("empty palette: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewTwinkle(r, 0, 0, 1, color.Black, 1.5, 0); err != ErrInvalidArgument {
		t.Errorf("out-of-range probability: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewFade(r, 0, 0, 1, color.Black, color.New(1, 1, 1, 1), 0, 0); err != ErrInvalidArgument {
		t.Errorf("zero duration fade: expected ErrInvalidArgument, got %v", err)
	}
}

func TestStopStartRemoveNoOpOnInvalidID(t *testing.T) {
	r := NewRegistry()
	r.Start(99, 0)
	r.Stop(99)
	r.Remove(99)
	if _, ok := r.Get(99); ok {
		t.Errorf("Get on invalid id should report not-ok")
	}
}

func TestRemoveReleasesSlotForReuse(t *testing.T) {
	r := NewRegistry()
	id, _ := NewStatic(r, 0, 0, 4, color.New(9, 9, 9, 9), 0)
	r.Remove(id)

	d, ok := r.Get(id)
	if ok {
		t.Fatalf("Get after Remove should report not-ok, got %+v", d)
	}

	reused, err := NewStatic(r, 1, 0, 2, color.New(1, 1, 1, 1), 0)
	if err != nil || reused != id {
		t.Fatalf("expected slot %d reused, got %d err %v", id, reused, err)
	}
}

func TestStopPreservesDescriptor(t *testing.T) {
	r := NewRegistry()
	id, _ := NewStatic(r, 0, 0, 4, color.New(3, 3, 3, 3), 0)
	r.Stop(id)

	d, ok := r.Get(id)
	if !ok {
		t.Fatalf("expected slot still present after Stop")
	}
	if d.Active {
		t.Errorf("expected Active=false after Stop")
	}
	if d.Params.(StaticParams).Color != color.New(3, 3, 3, 3) {
		t.Errorf("Stop must preserve params")
	}
}

func TestTickRetiresExpiredDuration(t *testing.T) {
	r := NewRegistry()
	id, _ := NewFade(r, 0, 0, 4, color.Black, color.New(255, 255, 255, 255), 1000, 0)

	calls := 0
	r.Tick(500, func(d Descriptor, pt uint32) { calls++ })
	if calls != 1 {
		t.Fatalf("expected 1 call before expiry, got %d", calls)
	}

	calls = 0
	r.Tick(1500, func(d Descriptor, pt uint32) { calls++ })
	if calls != 0 {
		t.Fatalf("expected 0 calls after expiry, got %d", calls)
	}

	d, _ := r.Get(id)
	if d.Active {
		t.Errorf("expected descriptor retired (Active=false) after expiry")
	}
}

func TestTickSkipsInactiveAndStopped(t *testing.T) {
	r := NewRegistry()
	id, _ := NewStatic(r, 0, 0, 4, color.New(1, 1, 1, 1), 0)
	r.Stop(id)

	calls := 0
	r.Tick(100, func(d Descriptor, pt uint32) { calls++ })
	if calls != 0 {
		t.Errorf("stopped descriptor must not be ticked")
	}
}

func TestTickOrderIsSlotOrder(t *testing.T) {
	r := NewRegistry()
	NewStatic(r, 0, 0, 4, color.New(1, 0, 0, 0), 0)
	NewStatic(r, 0, 0, 4, color.New(2, 0, 0, 0), 0)
	NewStatic(r, 0, 0, 4, color.New(3, 0, 0, 0), 0)

	var order []uint8
	r.Tick(10, func(d Descriptor, pt uint32) {
		order = append(order, d.Params.(StaticParams).Color.R)
	})
	want := []uint8{1, 2, 3}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("expected slot order %v, got %v", want, order)
		}
	}
}
