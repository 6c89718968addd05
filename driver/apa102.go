//go:build tinygo

// Package driver adapts the output loop's Driver contract onto physical
// strip hardware. Grounded on the teacher's peripheral.ColorLedStrip
// (APA102 over SPI) and peripheral.NeoPixel (WS2812), generalized from a
// fixed board pinout to any SPI/pin the caller configures.
package driver

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/apa102"
)

// APA102 pushes pixels to an APA102 strip over SPI. SetPixel buffers;
// Refresh performs the single wire write per frame.
type APA102 struct {
	buffer []color.RGBA
	strip  apa102.Device
}

// NewAPA102 configures spi for APA102 timing and returns a ready driver
// sized for numPixels.
func NewAPA102(spi machine.SPI, config machine.SPIConfig, numPixels int) (*APA102, error) {
	if err := spi.Configure(config); err != nil {
		return nil, err
	}
	return &APA102{
		buffer: make([]color.RGBA, numPixels),
		strip:  apa102.New(spi),
	}, nil
}

// SetPixel implements output.Driver. Out-of-range indices are ignored.
func (d *APA102) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index >= len(d.buffer) {
		return
	}
	d.buffer[index] = color.RGBA{R: r, G: g, B: b, A: 255}
}

// Refresh implements output.Driver.
func (d *APA102) Refresh() error {
	return d.strip.WriteColors(d.buffer)
}
