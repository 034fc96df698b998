package rgb

import icolor "github.com/gogpu/pixbuf/internal/color"

// Color is implemented by values that can be decoded to linear light.
type Color interface {
	// Linear returns the color as linear-light RGB with straight alpha.
	Linear() Linear
}

// Target is implemented by values that can be built from linear light.
// FromLinear is called on the zero value and must not depend on the receiver.
type Target[P any] interface {
	FromLinear(Linear) P
}

// Pixel is a color representation with a fixed component layout. It is the
// capability pixbuf requires for conversions and raw component views.
type Pixel[P any] interface {
	Color
	Target[P]
	Layout() Layout
}

// Linear is the canonical intermediate of every conversion: float32
// linear-light RGB in a known space, with straight alpha (1 is opaque).
type Linear struct {
	R, G, B, A float32
	Space      Space
}

// Linear returns c.
func (c Linear) Linear() Linear { return c }

// FromLinear returns l unchanged, keeping its space.
func (Linear) FromLinear(l Linear) Linear { return l }

// In returns c gamut-mapped to space s. Out-of-gamut results keep negative
// or >1 components; clamping is left to the destination format.
func (c Linear) In(s Space) Linear {
	if c.Space == s {
		return c
	}
	r, g, b := icolor.Convert(c.R, c.G, c.B, c.Space.gamut(), s.gamut())
	return Linear{R: r, G: g, B: b, A: c.A, Space: s}
}

// Luminance returns the relative luminance of c.
func (c Linear) Luminance() float32 {
	return icolor.Luminance(c.R, c.G, c.B, c.Space.gamut())
}
