package pixtone

import (
	"fmt"
	"math"
)

// NewPixelArray allocates a zero-filled array of the given shape.
func NewPixelArray(height, width, channels int) (*PixelArray, error) {
	if err := checkShape(height, width, channels); err != nil {
		return nil, err
	}
	return &PixelArray{
		Height:   height,
		Width:    width,
		Channels: channels,
		Pix:      make([]uint8, height*width*channels),
	}, nil
}

// GrayFromRows builds a single-channel array from rectangular rows.
func GrayFromRows(rows [][]uint8) (*PixelArray, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}
	w := len(rows[0])
	a, err := NewPixelArray(len(rows), w, 1)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidInput, y, len(row), w)
		}
		copy(a.Pix[y*w:], row)
	}
	return a, nil
}

func checkShape(height, width, channels int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, width, height)
	}
	switch channels {
	case 1, 3, 4:
	default:
		return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidInput, channels)
	}
	return nil
}

// Validate checks that the array is a well-formed rectangular grid.
func (a *PixelArray) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrInvalidInput)
	}
	if err := checkShape(a.Height, a.Width, a.Channels); err != nil {
		return err
	}
	if want := a.Height * a.Width * a.Channels; len(a.Pix) != want {
		return fmt.Errorf("%w: %d samples for %dx%dx%d", ErrInvalidInput, len(a.Pix), a.Width, a.Height, a.Channels)
	}
	return nil
}

// At returns sample (y, x, c).
func (a *PixelArray) At(y, x, c int) uint8 {
	return a.Pix[(y*a.Width+x)*a.Channels+c]
}

// Set stores sample (y, x, c). It is meant for building arrays before they enter a pipeline.
func (a *PixelArray) Set(y, x, c int, v uint8) {
	a.Pix[(y*a.Width+x)*a.Channels+c] = v
}

// Channel extracts plane c as a new single-channel array.
func (a *PixelArray) Channel(c int) (*PixelArray, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if c < 0 || c >= a.Channels {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrInvalidInput, c, a.Channels)
	}
	if a.Channels == 1 {
		return a.clone(), nil
	}
	out := &PixelArray{Height: a.Height, Width: a.Width, Channels: 1, Pix: make([]uint8, a.Height*a.Width)}
	for i := range out.Pix {
		out.Pix[i] = a.Pix[i*a.Channels+c]
	}
	return out, nil
}

// SameShape reports whether b has the same height, width and channel count.
func (a *PixelArray) SameShape(b *PixelArray) bool {
	return a.Height == b.Height && a.Width == b.Width && a.Channels == b.Channels
}

func (a *PixelArray) clone() *PixelArray {
	out := *a
	out.Pix = append([]uint8(nil), a.Pix...)
	return &out
}

func (a *PixelArray) newLike() *PixelArray {
	return &PixelArray{Height: a.Height, Width: a.Width, Channels: a.Channels, Pix: make([]uint8, len(a.Pix))}
}

// At returns sample (y, x, c).
func (f *FloatArray) At(y, x, c int) float64 {
	return f.Pix[(y*f.Width+x)*f.Channels+c]
}

// Clamp converts to a PixelArray for display or encoding.
// Samples are saturated to [0, 255] and truncated toward zero, NaN maps to 0.
func (f *FloatArray) Clamp() *PixelArray {
	out := &PixelArray{Height: f.Height, Width: f.Width, Channels: f.Channels, Pix: make([]uint8, len(f.Pix))}
	for i, v := range f.Pix {
		out.Pix[i] = truncToByte(v)
	}
	return out
}

// MinMax returns the smallest and largest samples.
func (f *FloatArray) MinMax() (lo, hi float64) {
	if len(f.Pix) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Pix {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
