package color

import "math"

// Lookup tables for the 8-bit sRGB fast path.
//
// Decoding uses one entry per code value, so it is exact. Encoding samples
// the linear range with 12-bit precision, which keeps every 8-bit code within
// one unit of the exact result.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
var (
	srgb8ToLinearLUT [256]float32
	linearToSRGB8LUT [linearLUTSize]uint8
)

const linearLUTSize = 4096

func init() {
	for i := range srgb8ToLinearLUT {
		srgb8ToLinearLUT[i] = float32(srgbEOTF(float64(i) / 255))
	}
	for i := range linearToSRGB8LUT {
		linearToSRGB8LUT[i] = quantize8(srgbOETF(float64(i) / (linearLUTSize - 1)))
	}
}

// SRGB8ToLinear decodes an 8-bit sRGB code value to linear light in [0,1].
//
//	l := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float32 {
	return srgb8ToLinearLUT[s]
}

// LinearToSRGB8 encodes linear light to an 8-bit sRGB code value.
// Input outside [0,1] saturates.
//
//	s := LinearToSRGB8(0.5) // 188 (not 128!)
func LinearToSRGB8(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGB8LUT[int(l*(linearLUTSize-1)+0.5)]
}

func srgbEOTF(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func srgbOETF(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func quantize8(v float64) uint8 {
	n := int(v*255.0 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	//nolint:gosec // G115: n is clamped to [0,255] range
	return uint8(n)
}
