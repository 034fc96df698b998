package rgb

// Luma is a single-channel luminance value of standard S. The transfer
// curve of S is applied to the luminance, as in gamma-encoded grayscale
// images.
type Luma[S Standard, T Component] struct {
	Y T
}

// Linear decodes c to a neutral gray in the space of S.
func (c Luma[S, T]) Linear() Linear {
	space, tf := standardOf[S]()
	y := decode(c.Y, tf)
	return Linear{R: y, G: y, B: y, A: 1, Space: space}
}

// FromLinear stores the relative luminance of l, measured in the space of S.
func (Luma[S, T]) FromLinear(l Linear) Luma[S, T] {
	space, tf := standardOf[S]()
	return Luma[S, T]{Y: encode[T](l.In(space).Luminance(), tf)}
}

// Layout reports a single component of type T.
func (Luma[S, T]) Layout() Layout {
	_, tf := standardOf[S]()
	return Layout{Channels: 1, Component: ComponentTypeOf[T](), Transfer: tf}
}

// Gray8 is 8-bit gamma-encoded sRGB luminance.
type Gray8 = Luma[SRGB, uint8]
