//go:build tinygo

package input

import "machine"

// PinReader reads a digital input from a TinyGo machine.Pin, generalized
// from the teacher's peripheral.Button (fixed pin, pull-up, optional
// active-low inversion).
type PinReader struct {
	pin      machine.Pin
	inverted bool
}

// NewPinReader configures pin as a pulled-up input. inverted=true means
// the pin reads low when pressed.
func NewPinReader(pin machine.Pin, inverted bool) *PinReader {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &PinReader{pin: pin, inverted: inverted}
}

// IsPressed implements Reader.
func (p *PinReader) IsPressed() bool {
	reading := p.pin.Get()
	if p.inverted {
		return !reading
	}
	return reading
}

var _ Reader = (*PinReader)(nil)
