package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Negative input is mirrored so out-of-gamut values survive a round trip.
func SRGBToLinear(s float32) float32 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Negative input is mirrored.
func LinearToSRGB(l float32) float32 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// Gamma22ToLinear decodes a pure 2.2 power curve.
func Gamma22ToLinear(v float32) float32 {
	if v < 0 {
		return -Gamma22ToLinear(-v)
	}
	return float32(math.Pow(float64(v), 2.2))
}

// LinearToGamma22 encodes with a pure 2.2 power curve.
func LinearToGamma22(l float32) float32 {
	if l < 0 {
		return -LinearToGamma22(-l)
	}
	return float32(math.Pow(float64(l), 1.0/2.2))
}

// Unorm8 clamps a float32 to [0,1] and converts to uint8 with rounding.
func Unorm8(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	// Round to nearest integer
	return uint8(v*255.0 + 0.5)
}

// Unorm16 clamps a float32 to [0,1] and converts to uint16 with rounding.
func Unorm16(v float32) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(float64(v)*65535.0 + 0.5)
}
