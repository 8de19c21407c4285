package core

// Layer stores one byte per cell in row-major order. Sims use it for their
// display buffer.
type Layer struct {
	W, H int
	data []uint8
}

// NewLayer allocates a layer with the given dimensions.
func NewLayer(w, h int) *Layer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Layer{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (l *Layer) Cells() []uint8 { return l.data }

// Set writes v at (row, col); out-of-range writes are dropped.
func (l *Layer) Set(row, col int, v uint8) {
	if row < 0 || col < 0 || row >= l.H || col >= l.W {
		return
	}
	l.data[row*l.W+col] = v
}

// At returns the value at (row, col) or 0 when out of range.
func (l *Layer) At(row, col int) uint8 {
	if row < 0 || col < 0 || row >= l.H || col >= l.W {
		return 0
	}
	return l.data[row*l.W+col]
}

// Resize reallocates the layer when the dimensions change and clears it.
func (l *Layer) Resize(w, h int) {
	if w == l.W && h == l.H {
		l.Clear()
		return
	}
	*l = *NewLayer(w, h)
}

// Clear fills the layer with zeros.
func (l *Layer) Clear() {
	for i := range l.data {
		l.data[i] = 0
	}
}
