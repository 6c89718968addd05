package strip

import (
	"testing"

	"github.com/christophergm/ledengine/color"
	"github.com/christophergm/ledengine/driver"
	"github.com/christophergm/ledengine/matrix"
	"github.com/christophergm/ledengine/pattern"
)

func TestSetEdgePatternReplacesPriorDescriptor(t *testing.T) {
	d := driver.NewFake(30)
	ctrl, err := New([]int{15, 15}, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := ctrl.SetEdgePattern(0, KindStatic, 255, 0, 0, 200, 2000); err != nil {
		t.Fatalf("first SetEdgePattern: %v", err)
	}
	firstID := ctrl.edgePatternID[0]

	if err := ctrl.SetEdgePattern(0, KindStatic, 0, 255, 0, 200, 2000); err != nil {
		t.Fatalf("second SetEdgePattern: %v", err)
	}
	if _, ok := ctrl.registry.Get(firstID); ok {
		t.Errorf("prior descriptor for edge should have been removed")
	}
}

func TestSetEdgePatternInvalidEdge(t *testing.T) {
	d := driver.NewFake(15)
	ctrl, _ := New([]int{15}, d)

	if err := ctrl.SetEdgePattern(9, KindStatic, 1, 1, 1, 1, 2000); err != ErrInvalidEdge {
		t.Errorf("expected ErrInvalidEdge, got %v", err)
	}
}

func TestMinSpeedEnforced(t *testing.T) {
	d := driver.NewFake(15)
	ctrl, _ := New([]int{15}, d)

	if err := ctrl.SetEdgePattern(0, KindBlink, 1, 1, 1, 1, 100); err != nil {
		t.Fatalf("SetEdgePattern: %v", err)
	}
	id := ctrl.edgePatternID[0]
	desc, _ := ctrl.registry.Get(id)
	blink := desc.Params.(pattern.BlinkParams)
	if blink.OnTimeMs != MinSpeedMs/2 || blink.OffTimeMs != MinSpeedMs/2 {
		t.Errorf("expected on/off split from floored speed %d, got on=%d off=%d", MinSpeedMs, blink.OnTimeMs, blink.OffTimeMs)
	}
}

func TestTurnOffAllClearsEveryEdge(t *testing.T) {
	d := driver.NewFake(30)
	ctrl, _ := New([]int{15, 15}, d)
	ctrl.SetEdgePattern(0, KindStatic, 1, 1, 1, 1, 2000)
	ctrl.SetEdgePattern(1, KindStatic, 1, 1, 1, 1, 2000)

	ctrl.TurnOffAll()

	for _, id := range ctrl.edgePatternID {
		if id != -1 {
			t.Errorf("expected all edge pattern ids cleared, got %v", ctrl.edgePatternID)
		}
	}
}

func TestClearAllZeroesBothBuffersImmediately(t *testing.T) {
	d := driver.NewFake(15)
	ctrl, _ := New([]int{15}, d)
	ctrl.SetEdgePattern(0, KindStatic, 200, 100, 50, 255, 2000)

	ctrl.renderLoop.Tick() // compose one lit frame into current

	ctrl.ClearAll()

	ctrl.buffer.ReadCurrent(func(m *matrix.Matrix) {
		if got := m.Get(0, 0); got != color.Black {
			t.Errorf("current should be zeroed immediately by ClearAll, got %+v", got)
		}
	})
	if got := ctrl.buffer.NextMatrix().Get(0, 0); got != color.Black {
		t.Errorf("next should be zeroed immediately by ClearAll, got %+v", got)
	}
}

func TestParseCommandRoundTrip(t *testing.T) {
	cmd, err := ParseCommand("0 static 255 0 0 200 2000")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Edge != 0 || cmd.Kind != KindStatic || cmd.R != 255 || cmd.SpeedMs != 2000 {
		t.Errorf("unexpected parse result: %+v", cmd)
	}
}

func TestParseCommandRejectsUnknownKind(t *testing.T) {
	if _, err := ParseCommand("0 sparkle 1 1 1 1 2000"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestParseCommandRejectsWrongFieldCount(t *testing.T) {
	if _, err := ParseCommand("0 static 1 1 1"); err == nil {
		t.Errorf("expected error for too few fields")
	}
}
