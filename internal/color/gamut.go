package color

// Convert maps a linear RGB triple between gamuts through CIE XYZ (D65).
// Equal gamuts are returned untouched so no precision is lost.
func Convert(r, g, b float32, from, to Gamut) (float32, float32, float32) {
	if from == to {
		return r, g, b
	}
	x, y, z := ToXYZ(r, g, b, from)
	return FromXYZ(x, y, z, to)
}

// ToXYZ converts linear RGB in the given gamut to CIE XYZ.
func ToXYZ(r, g, b float32, from Gamut) (x, y, z float32) {
	switch from {
	case GamutDisplayP3:
		return 0.48657095*r + 0.2656677*g + 0.19821729*b,
			0.22897457*r + 0.69173855*g + 0.07928691*b,
			0.04511338*g + 1.0439444*b
	case GamutAdobeRGB:
		return 0.5767309*r + 0.185554*g + 0.1881852*b,
			0.2973769*r + 0.6273491*g + 0.0752741*b,
			0.0270343*r + 0.0706872*g + 0.9911085*b
	default:
		return 0.4123908*r + 0.35758433*g + 0.1804808*b,
			0.212639*r + 0.71516865*g + 0.07219232*b,
			0.019330818*r + 0.11919478*g + 0.95053214*b
	}
}

// FromXYZ converts CIE XYZ to linear RGB in the given gamut.
func FromXYZ(x, y, z float32, to Gamut) (r, g, b float32) {
	switch to {
	case GamutDisplayP3:
		return 2.493497*x - 0.9313836*y - 0.4027108*z,
			-0.829489*x + 1.7626641*y + 0.023624685*z,
			0.03584583*x - 0.07617239*y + 0.9568845*z
	case GamutAdobeRGB:
		return 2.041369*x - 0.5649464*y - 0.3446944*z,
			-0.969266*x + 1.8760108*y + 0.041556*z,
			0.0134474*x - 0.1183897*y + 1.0154096*z
	default:
		return 3.24097*x - 1.5373832*y - 0.49861076*z,
			-0.96924365*x + 1.8759675*y + 0.041555058*z,
			0.05563008*x - 0.20397696*y + 1.0569715*z
	}
}

// Luminance returns the relative luminance (the Y of CIE XYZ) of a linear RGB triple.
func Luminance(r, g, b float32, from Gamut) float32 {
	_, y, _ := ToXYZ(r, g, b, from)
	return y
}
