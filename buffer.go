package pixbuf

import (
	"errors"
	"fmt"
	"image"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixels are fewer than width*height.
	ErrDataTooSmall = errors.New("pixbuf: pixel slice too small")
)

// Buffer is a dense, row-major grid of pixels of type P.
//
// The pixel at row y, column x is stored at index y*Width()+x of Pix().
// The length of the storage is always exactly Width()*Height(); there is no
// way to resize a Buffer.
//
// Coordinates are always given as (y, x): row first, then column.
// Accessing a pixel outside the grid panics. Buffer is not safe for
// concurrent mutation; callers that share one across goroutines partition
// it themselves, e.g. with Rows.
type Buffer[P any] struct {
	width  int
	height int
	pix    []P
	view   bool // storage borrowed from another buffer
}

// New creates a width x height buffer with every pixel set to the zero value of P.
// Zero sizes are valid and produce an empty buffer. New panics if either
// dimension is negative.
func New[P any](width, height int) *Buffer[P] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixbuf: negative size %dx%d", width, height))
	}
	return &Buffer[P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

// FromPixels wraps pix as a width x height buffer without copying.
// Elements beyond width*height are not part of the buffer.
func FromPixels[P any](width, height int, pix []P) (*Buffer[P], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if len(pix) < n {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrDataTooSmall, len(pix), n)
	}
	return &Buffer[P]{
		width:  width,
		height: height,
		pix:    pix[:n:n],
	}, nil
}

// Width returns the number of columns.
func (b *Buffer[P]) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer[P]) Height() int {
	return b.height
}

// Len returns the number of pixels, Width()*Height().
func (b *Buffer[P]) Len() int {
	return len(b.pix)
}

// Bounds returns the buffer extent as an image rectangle anchored at the origin.
func (b *Buffer[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// IsEmpty reports whether the buffer holds no pixels.
func (b *Buffer[P]) IsEmpty() bool {
	return len(b.pix) == 0
}

// Pix returns the pixels in row-major order. The slice aliases the buffer:
// writes through it modify the buffer.
func (b *Buffer[P]) Pix() []P {
	return b.pix
}

// Offset returns the index of pixel (y, x) in Pix().
// It panics if (y, x) is outside the buffer.
func (b *Buffer[P]) Offset(y, x int) int {
	if uint(y) >= uint(b.height) || uint(x) >= uint(b.width) {
		panic(fmt.Sprintf("pixbuf: index (%d, %d) out of range [%d x %d]", y, x, b.height, b.width))
	}
	return y*b.width + x
}

// At returns the pixel at row y, column x.
func (b *Buffer[P]) At(y, x int) P {
	return b.pix[b.Offset(y, x)]
}

// Set stores p at row y, column x.
func (b *Buffer[P]) Set(y, x int, p P) {
	b.pix[b.Offset(y, x)] = p
}

// Ptr returns a pointer to the pixel at row y, column x for in-place edits.
func (b *Buffer[P]) Ptr(y, x int) *P {
	return &b.pix[b.Offset(y, x)]
}

// Row returns row y as a slice aliasing the buffer.
func (b *Buffer[P]) Row(y int) []P {
	if uint(y) >= uint(b.height) {
		panic(fmt.Sprintf("pixbuf: row %d out of range [%d]", y, b.height))
	}
	return b.pix[y*b.width : (y+1)*b.width : (y+1)*b.width]
}

// Rows returns rows [y0, y1) as a buffer sharing storage with b.
// Disjoint row ranges may be processed by different goroutines.
func (b *Buffer[P]) Rows(y0, y1 int) *Buffer[P] {
	if y0 < 0 || y1 < y0 || y1 > b.height {
		panic(fmt.Sprintf("pixbuf: rows [%d, %d) out of range [%d]", y0, y1, b.height))
	}
	lo, hi := y0*b.width, y1*b.width
	return &Buffer[P]{
		width:  b.width,
		height: y1 - y0,
		pix:    b.pix[lo:hi:hi],
		view:   true,
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer[P]) Clone() *Buffer[P] {
	pix := make([]P, len(b.pix))
	copy(pix, b.pix)
	return &Buffer[P]{
		width:  b.width,
		height: b.height,
		pix:    pix,
	}
}

// Fill sets every pixel to p.
func (b *Buffer[P]) Fill(p P) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Clear resets every pixel to the zero value of P.
func (b *Buffer[P]) Clear() {
	clear(b.pix)
}
