//go:build tinygo

// Command ledengine-demo boots the render engine on real strip hardware:
// configures edges, wires an APA102 strip and a NeoPixel status light,
// starts a yellow heartbeat LED, and sets a distinct pattern on each edge.
// Rebuilt from the teacher's main.go boot sequence against the new
// engine instead of the battery/panel application.
package main

import (
	"machine"
	"time"

	"github.com/christophergm/ledengine/driver"
	"github.com/christophergm/ledengine/input"
	"github.com/christophergm/ledengine/internal/statuslight"
	"github.com/christophergm/ledengine/strip"
)

const numLEDsPerEdge = 36 // 144 total across 4 edges, teacher's numLEDs split evenly

func main() {
	statusPixel := driver.NewWS2812(machine.PC24, 1)
	logLine := func(line string) { println(line) }
	status := statuslight.New(statuslight.LevelInfo, logLine, statuslight.NewSinglePixelLight(statusPixel))

	heartbeat := machine.PC30
	heartbeat.Configure(machine.PinConfig{Mode: machine.PinOutput})
	go blinkHeartbeat(heartbeat)

	stripDriver, err := driver.NewAPA102(machine.SPI0, machine.SPIConfig{}, 4*numLEDsPerEdge)
	if err != nil {
		status.Errorf("configuring strip driver: %v", err)
		return
	}

	ctrl, err := strip.New([]int{numLEDsPerEdge, numLEDsPerEdge, numLEDsPerEdge, numLEDsPerEdge}, stripDriver)
	if err != nil {
		status.Errorf("configuring controller: %v", err)
		return
	}
	defer ctrl.Close()

	resetButton := input.NewPinReader(machine.D40, true)

	ctrl.Start()
	status.Infof("render engine started")

	runBootSequence(ctrl)

	for {
		if resetButton.IsPressed() {
			status.Infof("reset pressed, clearing all edges")
			ctrl.ClearAll()
			time.Sleep(500 * time.Millisecond)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// runBootSequence exercises each edge with a distinct pattern, mirroring
// the teacher's panel.DemoAllBatteries sweep-through-states shape.
func runBootSequence(ctrl *strip.Controller) {
	ctrl.SetEdgePattern(0, strip.KindStatic, 255, 0, 0, 200, 1000)
	ctrl.SetEdgePattern(1, strip.KindBlink, 0, 255, 0, 200, 1000)
	ctrl.SetEdgePattern(2, strip.KindBreath, 0, 0, 255, 200, 3000)
	ctrl.SetEdgePattern(3, strip.KindRainbow, 0, 0, 0, 200, 5000)
}

func blinkHeartbeat(pin machine.Pin) {
	on := false
	for {
		if on {
			pin.High()
		} else {
			pin.Low()
		}
		on = !on
		time.Sleep(250 * time.Millisecond)
	}
}
