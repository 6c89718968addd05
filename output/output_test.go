package output

import (
	"testing"

	"github.com/christophergm/ledengine/color"
	"github.com/christophergm/ledengine/matrix"
)

type fakeDriver struct {
	pixels        []color.Color
	refreshCount  int
	refreshErr    error
	pixelsAtFlush [][]color.Color
}

func newFakeDriver(n int) *fakeDriver {
	return &fakeDriver{pixels: make([]color.Color, n)}
}

func (f *fakeDriver) SetPixel(index int, r, g, b uint8) {
	f.pixels[index] = color.New(r, g, b, 255)
}

func (f *fakeDriver) Refresh() error {
	f.refreshCount++
	snapshot := make([]color.Color, len(f.pixels))
	copy(snapshot, f.pixels)
	f.pixelsAtFlush = append(f.pixelsAtFlush, snapshot)
	return f.refreshErr
}

func TestDrainScalesByIntensityAndFlattensEdgeMajor(t *testing.T) {
	buf := matrix.NewBuffer([]int{2, 3})
	buf.NextMatrix().Set(0, 0, color.New(200, 100, 50, 128))
	buf.NextMatrix().Set(1, 1, color.New(255, 255, 255, 0))
	buf.Swap()

	driver := newFakeDriver(5)
	loop := New(buf, driver, make(chan struct{}), DefaultWaitTimeout, []int{2, 3})

	loop.Drain()

	if driver.refreshCount != 1 {
		t.Fatalf("expected exactly one refresh per drain, got %d", driver.refreshCount)
	}

	// edge 0 led 0 -> flat index 0
	got := driver.pixels[0]
	wantR := uint8(uint16(200) * 128 / 255)
	if got.R != wantR {
		t.Errorf("intensity scaling: got R=%d want %d", got.R, wantR)
	}

	// edge 1 led 1 -> flat index base(2)+1 = 3
	if got := driver.pixels[3]; got.R != 0 {
		t.Errorf("intensity 0 should scale to black, got %+v", got)
	}
}

func TestNotificationTriggersDrain(t *testing.T) {
	buf := matrix.NewBuffer([]int{4})
	buf.NextMatrix().Set(0, 0, color.New(10, 10, 10, 255))
	buf.Swap()

	driver := newFakeDriver(4)
	ready := make(chan struct{}, 1)
	loop := New(buf, driver, ready, DefaultWaitTimeout, []int{4})

	pushed := make(chan struct{}, 1)
	loop.OnPushed = func() { pushed <- struct{}{} }
	loop.Start()
	defer loop.Close()

	ready <- struct{}{}
	<-pushed

	if driver.refreshCount < 1 {
		t.Fatalf("expected at least one refresh after notify")
	}
}

func TestTurnOffAllPushesAllZeroOnce(t *testing.T) {
	buf := matrix.NewBuffer([]int{15, 15, 15, 15})
	driver := newFakeDriver(60)
	loop := New(buf, driver, make(chan struct{}), DefaultWaitTimeout, []int{15, 15, 15, 15})

	loop.Drain()

	if driver.refreshCount != 1 {
		t.Fatalf("expected one refresh, got %d", driver.refreshCount)
	}
	for i, c := range driver.pixelsAtFlush[0] {
		// The driver receives RGB only; the fake stamps Intensity 255 on
		// every pixel, so compare the pushed channels.
		if c.R != 0 || c.G != 0 || c.B != 0 {
			t.Fatalf("pixel %d should be black, got %+v", i, c)
		}
	}
}
