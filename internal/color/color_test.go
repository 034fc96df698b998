package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Negative components come out of gamut mapping and must keep their sign.
func TestTransferNegativeMirrors(t *testing.T) {
	for _, v := range []float32{0.01, 0.3, 0.5, 0.9} {
		if got, want := SRGBToLinear(-v), -SRGBToLinear(v); got != want {
			t.Errorf("SRGBToLinear(%v) = %v, want %v", -v, got, want)
		}
		if got, want := LinearToSRGB(-v), -LinearToSRGB(v); got != want {
			t.Errorf("LinearToSRGB(%v) = %v, want %v", -v, got, want)
		}
		if got, want := Gamma22ToLinear(-v), -Gamma22ToLinear(v); got != want {
			t.Errorf("Gamma22ToLinear(%v) = %v, want %v", -v, got, want)
		}
	}
}

// Maximum error should be less than 1/255 to preserve 8-bit precision.
func TestRoundTripSRGBLinear(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		srgb := float32(i) / 255.0
		roundTrip := LinearToSRGB(SRGBToLinear(srgb))
		if !floatNear(roundTrip, srgb, maxError) {
			t.Errorf("round trip %d/255: got %v, want %v", i, roundTrip, srgb)
		}
	}
}

func TestRoundTripGamma22(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := float32(i) / 255.0
		got := LinearToGamma22(Gamma22ToLinear(v))
		if !floatNear(got, v, 1e-5) {
			t.Errorf("gamma 2.2 round trip %v: got %v", v, got)
		}
	}
	if got := Gamma22ToLinear(0.5); !floatNear(got, float32(math.Pow(0.5, 2.2)), 1e-6) {
		t.Errorf("Gamma22ToLinear(0.5) = %v", got)
	}
}

func TestUnorm8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{1.0 / 255, 1},
		{0.5, 128},
		{0.998, 254},
		{1, 255},
		{2, 255},
		{float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		if got := Unorm8(tt.in); got != tt.want {
			t.Errorf("Unorm8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUnorm16(t *testing.T) {
	tests := []struct {
		in   float32
		want uint16
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 32768},
		{1, 65535},
		{1.5, 65535},
	}
	for _, tt := range tests {
		if got := Unorm16(tt.in); got != tt.want {
			t.Errorf("Unorm16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGamutWhiteIsInvariant(t *testing.T) {
	for _, from := range []Gamut{GamutSRGB, GamutDisplayP3, GamutAdobeRGB} {
		for _, to := range []Gamut{GamutSRGB, GamutDisplayP3, GamutAdobeRGB} {
			r, g, b := Convert(1, 1, 1, from, to)
			if !floatNear(r, 1, 1e-3) || !floatNear(g, 1, 1e-3) || !floatNear(b, 1, 1e-3) {
				t.Errorf("white %v -> %v = (%v, %v, %v)", from, to, r, g, b)
			}
		}
	}
}

func TestGamutRoundTrip(t *testing.T) {
	for _, to := range []Gamut{GamutDisplayP3, GamutAdobeRGB} {
		r, g, b := Convert(0.2, 0.5, 0.8, GamutSRGB, to)
		r, g, b = Convert(r, g, b, to, GamutSRGB)
		if !floatNear(r, 0.2, 1e-4) || !floatNear(g, 0.5, 1e-4) || !floatNear(b, 0.8, 1e-4) {
			t.Errorf("sRGB -> %v -> sRGB = (%v, %v, %v)", to, r, g, b)
		}
	}
}

func TestGamutSameIsIdentity(t *testing.T) {
	r, g, b := Convert(0.1, 0.2, 0.3, GamutAdobeRGB, GamutAdobeRGB)
	if r != 0.1 || g != 0.2 || b != 0.3 {
		t.Errorf("identity conversion changed values: (%v, %v, %v)", r, g, b)
	}
}

// sRGB red lies inside Display P3, so it maps to a less saturated P3 red.
func TestGamutSRGBRedInDisplayP3(t *testing.T) {
	r, g, b := Convert(1, 0, 0, GamutSRGB, GamutDisplayP3)
	if r < 0.8 || r > 0.85 {
		t.Errorf("red = %v, want ~0.822", r)
	}
	if g <= 0 || b < 0 {
		t.Errorf("green/blue = %v/%v, want non-negative", g, b)
	}
}

func TestLuminance(t *testing.T) {
	if y := Luminance(1, 1, 1, GamutSRGB); !floatNear(y, 1, 1e-4) {
		t.Errorf("Luminance(white) = %v, want 1", y)
	}
	if y := Luminance(0, 1, 0, GamutSRGB); !floatNear(y, 0.7152, 1e-4) {
		t.Errorf("Luminance(green) = %v, want 0.7152", y)
	}
}

func TestGamutString(t *testing.T) {
	if GamutDisplayP3.String() != "DisplayP3" || Gamut(99).String() != "Unknown" {
		t.Errorf("unexpected names %q %q", GamutDisplayP3, Gamut(99))
	}
}

// floatNear checks if two float32 values are within epsilon of each other.
func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}
