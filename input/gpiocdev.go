//go:build linux && !tinygo

package input

import (
	"github.com/warthog618/go-gpiocdev"
)

// GPIOCdevReader reads a digital input line via the Linux GPIO character
// device, for running the demo command on a Linux host/SBC instead of
// TinyGo firmware. Grounded on the teacher pack's gpio.Pin lifecycle
// (export/configure/read, fkcurrie-fluidnc-led-golang/pkg/gpio/gpio.go)
// but built on the go-gpiocdev line API rather than raw sysfs.
type GPIOCdevReader struct {
	line     *gpiocdev.Line
	inverted bool
}

// NewGPIOCdevReader requests offset on chip (e.g. "gpiochip0") as an
// input with a pull-up bias.
func NewGPIOCdevReader(chip string, offset int, inverted bool) (*GPIOCdevReader, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return nil, err
	}
	return &GPIOCdevReader{line: line, inverted: inverted}, nil
}

// IsPressed implements Reader. A read error is treated as not-pressed.
func (g *GPIOCdevReader) IsPressed() bool {
	v, err := g.line.Value()
	if err != nil {
		return false
	}
	pressed := v != 0
	if g.inverted {
		return !pressed
	}
	return pressed
}

// Close releases the underlying line.
func (g *GPIOCdevReader) Close() error {
	return g.line.Close()
}

var _ Reader = (*GPIOCdevReader)(nil)
