package pixbuf

import (
	"context"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/gogpu/pixbuf/rgb"
)

// ConvertFrom returns a new buffer holding src converted to the
// representation P.
//
// Each pixel is decoded to linear light, mapped to the primaries of P and
// encoded with the transfer curve and component type of P. Pixels are
// converted independently and keep their position; integer components round
// and saturate. The result has the same width and height as src.
//
//	lin := pixbuf.ConvertFrom[rgb.LinearF32](srgbBuf)
func ConvertFrom[P rgb.Pixel[P], Q rgb.Color](src *Buffer[Q]) *Buffer[P] {
	var dst P
	logConvert(src, dst)

	out := New[P](src.width, src.height)
	for i, q := range src.pix {
		out.pix[i] = dst.FromLinear(q.Linear())
	}
	return out
}

// ConvertInto returns a new buffer of Q built from the linear-light value
// of every pixel of b. It is the inverse direction of ConvertFrom: converting
// P to Q and back reproduces the original within the precision of the
// narrower representation.
//
//	gray := pixbuf.ConvertInto[rgb.Gray8](srgbBuf)
func ConvertInto[Q rgb.Target[Q], P rgb.Pixel[P]](b *Buffer[P]) *Buffer[Q] {
	var dst Q
	logConvert(b, dst)

	out := New[Q](b.width, b.height)
	for i, p := range b.pix {
		out.pix[i] = dst.FromLinear(p.Linear())
	}
	return out
}

func logConvert[P any](src *Buffer[P], dst any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	var from P
	l.Debug("pixbuf: convert",
		"from", fmt.Sprintf("%T", from),
		"to", fmt.Sprintf("%T", dst),
		"width", src.width,
		"height", src.height)
}

// Components returns the pixel storage of b reinterpreted as a flat slice of
// its numeric components, without copying. Each pixel contributes
// Layout().Channels consecutive values, pixels follow the row-major order of
// Pix, so the length is Width()*Height()*Channels. Writes through the slice
// modify the buffer.
//
// Components panics if T is not the component type of P or if P's size
// does not match its declared layout.
//
//	raw := pixbuf.Components[uint8](srgbBuf) // R, G, B, R, G, B, ...
func Components[T rgb.Component, P rgb.Pixel[P]](b *Buffer[P]) []T {
	var zero P
	layout := checkLayout(zero)
	if want := rgb.ComponentTypeOf[T](); layout.Component != want {
		panic(fmt.Sprintf("pixbuf: %T has %v components, not %v", zero, layout.Component, want))
	}
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b.pix[0])), len(b.pix)*layout.Channels)
}

// Bytes returns the pixel storage of b as raw bytes in host byte order,
// without copying. The length is Width()*Height()*Layout().PixelSize().
func Bytes[P rgb.Pixel[P]](b *Buffer[P]) []byte {
	var zero P
	layout := checkLayout(zero)
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*int(layout.PixelSize()))
}

// checkLayout verifies that the in-memory size of P is exactly what its
// layout declares, which rules out padding and extra fields.
func checkLayout[P rgb.Pixel[P]](zero P) rgb.Layout {
	layout := zero.Layout()
	if size := unsafe.Sizeof(zero); layout.Channels <= 0 || size != layout.PixelSize() {
		panic(fmt.Sprintf("pixbuf: %T is %d bytes, layout declares %d x %v",
			zero, size, layout.Channels, layout.Component))
	}
	return layout
}
