package pixbuf

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixbuf/rgb"
)

// Image adapts a Buffer to the standard image interfaces so codecs and
// drawing packages can read and write it.
//
// Image follows the image.Image conventions, not the Buffer ones: At and
// Set take (x, y), At returns transparent outside the bounds and Set ignores
// such writes. Colors are exchanged as sRGB-encoded color.NRGBA64 values.
type Image[P rgb.Pixel[P]] struct {
	buf *Buffer[P]
}

// NewImage returns an image.Image view of b. The view aliases b.
func NewImage[P rgb.Pixel[P]](b *Buffer[P]) *Image[P] {
	return &Image[P]{buf: b}
}

// Buffer returns the underlying buffer.
func (m *Image[P]) Buffer() *Buffer[P] {
	return m.buf
}

// ColorModel returns a model that quantizes colors through P.
func (m *Image[P]) ColorModel() color.Model {
	return rgb.Model[P]()
}

// Bounds returns the buffer extent.
func (m *Image[P]) Bounds() image.Rectangle {
	return m.buf.Bounds()
}

// At returns the color of the pixel at column x, row y.
func (m *Image[P]) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.buf.Bounds()) {
		return color.NRGBA64{}
	}
	return rgb.ToNRGBA64(m.buf.pix[y*m.buf.width+x])
}

// Set stores c, converted to P, at column x, row y.
func (m *Image[P]) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(m.buf.Bounds()) {
		return
	}
	m.buf.pix[y*m.buf.width+x] = rgb.FromColor[P](c)
}

// FromImage copies src into a new buffer of P with the same size. The
// top-left pixel of src.Bounds() lands at (0, 0). Pixels are copied one to
// one; nothing is scaled or blended.
func FromImage[P rgb.Pixel[P]](src image.Image) *Buffer[P] {
	r := src.Bounds()
	b := New[P](r.Dx(), r.Dy())
	xdraw.Copy(NewImage(b), image.Point{}, src, r, xdraw.Src, nil)
	return b
}

// Interface checks.
var _ xdraw.Image = (*Image[rgb.SRGBA8])(nil)
