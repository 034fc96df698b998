package rgb

import "github.com/x448/float16"

// RGB is an opaque color of standard S stored as three components of type T.
type RGB[S Standard, T Component] struct {
	R, G, B T
}

// Linear decodes c to linear light. Alpha is 1.
func (c RGB[S, T]) Linear() Linear {
	space, tf := standardOf[S]()
	return Linear{
		R:     decode(c.R, tf),
		G:     decode(c.G, tf),
		B:     decode(c.B, tf),
		A:     1,
		Space: space,
	}
}

// FromLinear encodes l in standard S. Alpha is dropped.
func (RGB[S, T]) FromLinear(l Linear) RGB[S, T] {
	space, tf := standardOf[S]()
	l = l.In(space)
	return RGB[S, T]{
		R: encode[T](l.R, tf),
		G: encode[T](l.G, tf),
		B: encode[T](l.B, tf),
	}
}

// Layout reports three components of type T.
func (RGB[S, T]) Layout() Layout {
	_, tf := standardOf[S]()
	return Layout{Channels: 3, Component: ComponentTypeOf[T](), Transfer: tf}
}

// RGBA is a color of standard S with straight linear alpha, stored as four
// components of type T.
type RGBA[S Standard, T Component] struct {
	R, G, B, A T
}

// Linear decodes c to linear light.
func (c RGBA[S, T]) Linear() Linear {
	space, tf := standardOf[S]()
	return Linear{
		R:     decode(c.R, tf),
		G:     decode(c.G, tf),
		B:     decode(c.B, tf),
		A:     toFloat(c.A),
		Space: space,
	}
}

// FromLinear encodes l in standard S.
func (RGBA[S, T]) FromLinear(l Linear) RGBA[S, T] {
	space, tf := standardOf[S]()
	l = l.In(space)
	return RGBA[S, T]{
		R: encode[T](l.R, tf),
		G: encode[T](l.G, tf),
		B: encode[T](l.B, tf),
		A: fromFloat[T](l.A),
	}
}

// Layout reports four components of type T, the last one alpha.
func (RGBA[S, T]) Layout() Layout {
	_, tf := standardOf[S]()
	return Layout{Channels: 4, Component: ComponentTypeOf[T](), Alpha: true, Transfer: tf}
}

// Common representations.
type (
	SRGB8        = RGB[SRGB, uint8]
	SRGBA8       = RGBA[SRGB, uint8]
	SRGB16       = RGB[SRGB, uint16]
	SRGBA16      = RGBA[SRGB, uint16]
	LinearF16    = RGB[LinearSRGB, float16.Float16]
	LinearAF16   = RGBA[LinearSRGB, float16.Float16]
	LinearF32    = RGB[LinearSRGB, float32]
	LinearAF32   = RGBA[LinearSRGB, float32]
	LinearF64    = RGB[LinearSRGB, float64]
	DisplayP3F32 = RGB[DisplayP3, float32]
	AdobeRGB8    = RGB[AdobeRGB, uint8]
)

// Interface checks.
var (
	_ Pixel[SRGB8]      = SRGB8{}
	_ Pixel[SRGBA8]     = SRGBA8{}
	_ Pixel[LinearAF16] = LinearAF16{}
	_ Pixel[LinearF32]  = LinearF32{}
	_ Pixel[Gray8]      = Gray8{}
	_ Color             = Linear{}
	_ Target[Linear]    = Linear{}
)
