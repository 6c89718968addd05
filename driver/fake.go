package driver

// Fake is an in-memory output.Driver used by tests. It is portable (no
// machine/tinygo import),
// mirroring how the core render/output packages stay host-testable.
type Fake struct {
	Pixels       []byte // interleaved r,g,b per pixel
	RefreshCount int
}

// NewFake returns a Fake sized for numPixels.
func NewFake(numPixels int) *Fake {
	return &Fake{Pixels: make([]byte, numPixels*3)}
}

// SetPixel implements output.Driver. Out-of-range indices are ignored.
func (f *Fake) SetPixel(index int, r, g, b uint8) {
	if index < 0 || index*3+2 >= len(f.Pixels) {
		return
	}
	f.Pixels[index*3] = r
	f.Pixels[index*3+1] = g
	f.Pixels[index*3+2] = b
}

// Refresh implements output.Driver.
func (f *Fake) Refresh() error {
	f.RefreshCount++
	return nil
}

// Pixel returns the (r,g,b) triple at index, or zeros if out of range.
func (f *Fake) Pixel(index int) (r, g, b uint8) {
	if index < 0 || index*3+2 >= len(f.Pixels) {
		return 0, 0, 0
	}
	return f.Pixels[index*3], f.Pixels[index*3+1], f.Pixels[index*3+2]
}
