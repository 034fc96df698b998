package rgb

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	icolor "github.com/gogpu/pixbuf/internal/color"
)

// ErrUnknownColor is returned by Named for names outside the SVG 1.1 set.
var ErrUnknownColor = errors.New("rgb: unknown color name")

// FromColor converts a standard library color, taken as sRGB-encoded with
// premultiplied alpha, to P.
func FromColor[P Target[P]](c color.Color) P {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	l := Linear{
		R:     icolor.SRGBToLinear(float32(n.R) / 0xffff),
		G:     icolor.SRGBToLinear(float32(n.G) / 0xffff),
		B:     icolor.SRGBToLinear(float32(n.B) / 0xffff),
		A:     float32(n.A) / 0xffff,
		Space: SpaceSRGB,
	}
	var zero P
	return zero.FromLinear(l)
}

// ToNRGBA64 encodes c as 16-bit sRGB with straight alpha.
func ToNRGBA64(c Color) color.NRGBA64 {
	l := c.Linear().In(SpaceSRGB)
	return color.NRGBA64{
		R: icolor.Unorm16(icolor.LinearToSRGB(l.R)),
		G: icolor.Unorm16(icolor.LinearToSRGB(l.G)),
		B: icolor.Unorm16(icolor.LinearToSRGB(l.B)),
		A: icolor.Unorm16(l.A),
	}
}

// Model returns a color.Model that quantizes colors through P and reports
// them as color.NRGBA64.
func Model[P Pixel[P]]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return ToNRGBA64(FromColor[P](c))
	})
}

// Named returns the SVG 1.1 named color (e.g. "cornflowerblue") as P.
// Lookup ignores case and surrounding space.
func Named[P Target[P]](name string) (P, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return FromColor[P](c), nil
}
