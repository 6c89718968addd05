//go:build tinygo

package driver

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812 pushes pixels to a WS2812/NeoPixel strip over a single GPIO pin.
type WS2812 struct {
	buffer []color.RGBA
	strip  ws2812.Device
}

// NewWS2812 configures pin as an output and returns a ready driver sized
// for numPixels.
func NewWS2812(pin machine.Pin, numPixels int) *WS2812 {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812{
		buffer: make([]color.RGBA, numPixels),
		strip:  ws2812.NewWS2812(pin),
	}
}

// SetPixel implements output.Driver. Out-of-range indices are ignored.
func (d *WS2812) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= len(d.buffer) {
		return
	}
	d.buffer[index] = color.RGBA{R: r, G: g, B: b, A: 255}
}

// Refresh implements output.Driver.
func (d *WS2812) Refresh() error {
	return d.strip.WriteColors(d.buffer)
}
