// Package color provides the scalar color math behind pixbuf/rgb: transfer
// functions, quantization to integer components and gamut matrices.
//
// Every function here works on a single component or a single RGB triple.
// Pixel types, layouts and buffers live in the public packages.
package color

// Gamut identifies a set of RGB primaries. All gamuts share the D65 white point.
type Gamut uint8

const (
	// GamutSRGB is the ITU-R BT.709 / sRGB primaries.
	GamutSRGB Gamut = iota
	// GamutDisplayP3 is the DCI-P3 primaries with a D65 white point.
	GamutDisplayP3
	// GamutAdobeRGB is the Adobe RGB (1998) primaries.
	GamutAdobeRGB
)

// String returns the gamut name.
func (g Gamut) String() string {
	switch g {
	case GamutSRGB:
		return "sRGB"
	case GamutDisplayP3:
		return "DisplayP3"
	case GamutAdobeRGB:
		return "AdobeRGB"
	default:
		return "Unknown"
	}
}
