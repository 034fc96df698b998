package rgb

import (
	icolor "github.com/gogpu/pixbuf/internal/color"
)

// Space identifies the RGB primaries of a color. All spaces use a D65 white point.
type Space uint8

const (
	// SpaceSRGB is the sRGB / BT.709 primaries.
	SpaceSRGB Space = iota
	// SpaceDisplayP3 is the Display P3 primaries.
	SpaceDisplayP3
	// SpaceAdobeRGB is the Adobe RGB (1998) primaries.
	SpaceAdobeRGB
)

func (s Space) gamut() icolor.Gamut {
	switch s {
	case SpaceDisplayP3:
		return icolor.GamutDisplayP3
	case SpaceAdobeRGB:
		return icolor.GamutAdobeRGB
	default:
		return icolor.GamutSRGB
	}
}

// String returns the space name.
func (s Space) String() string {
	if s > SpaceAdobeRGB {
		return "Unknown"
	}
	return s.gamut().String()
}

// Transfer is the encoding curve between linear light and stored values.
type Transfer uint8

const (
	// TransferLinear stores linear light as is.
	TransferLinear Transfer = iota
	// TransferSRGB is the piecewise sRGB curve (IEC 61966-2-1).
	TransferSRGB
	// TransferGamma22 is a pure 2.2 power curve, as used by Adobe RGB.
	TransferGamma22
)

// Decode converts an encoded value to linear light.
func (t Transfer) Decode(v float32) float32 {
	switch t {
	case TransferSRGB:
		return icolor.SRGBToLinear(v)
	case TransferGamma22:
		return icolor.Gamma22ToLinear(v)
	default:
		return v
	}
}

// Encode converts linear light to an encoded value.
func (t Transfer) Encode(l float32) float32 {
	switch t {
	case TransferSRGB:
		return icolor.LinearToSRGB(l)
	case TransferGamma22:
		return icolor.LinearToGamma22(l)
	default:
		return l
	}
}

// String returns the transfer name.
func (t Transfer) String() string {
	switch t {
	case TransferLinear:
		return "Linear"
	case TransferSRGB:
		return "sRGB"
	case TransferGamma22:
		return "Gamma2.2"
	default:
		return "Unknown"
	}
}

// Standard is a compile-time description of an RGB encoding. Implementations
// are zero-size types used as type parameters of the pixel types.
type Standard interface {
	Space() Space
	Transfer() Transfer
}

// SRGB is gamma-encoded sRGB.
type SRGB struct{}

func (SRGB) Space() Space       { return SpaceSRGB }
func (SRGB) Transfer() Transfer { return TransferSRGB }

// LinearSRGB is linear-light sRGB.
type LinearSRGB struct{}

func (LinearSRGB) Space() Space       { return SpaceSRGB }
func (LinearSRGB) Transfer() Transfer { return TransferLinear }

// DisplayP3 is Display P3 primaries with the sRGB curve.
type DisplayP3 struct{}

func (DisplayP3) Space() Space       { return SpaceDisplayP3 }
func (DisplayP3) Transfer() Transfer { return TransferSRGB }

// LinearDisplayP3 is linear-light Display P3.
type LinearDisplayP3 struct{}

func (LinearDisplayP3) Space() Space       { return SpaceDisplayP3 }
func (LinearDisplayP3) Transfer() Transfer { return TransferLinear }

// AdobeRGB is Adobe RGB (1998) with a 2.2 gamma.
type AdobeRGB struct{}

func (AdobeRGB) Space() Space       { return SpaceAdobeRGB }
func (AdobeRGB) Transfer() Transfer { return TransferGamma22 }

// LinearAdobeRGB is linear-light Adobe RGB.
type LinearAdobeRGB struct{}

func (LinearAdobeRGB) Space() Space       { return SpaceAdobeRGB }
func (LinearAdobeRGB) Transfer() Transfer { return TransferLinear }

func standardOf[S Standard]() (Space, Transfer) {
	var s S
	return s.Space(), s.Transfer()
}
