package core

// Color model for the light: a 48-step fully saturated hue wheel plus
// a gamma-corrected white ramp. Both transforms are pure and stateless;
// the Controller computes colors per tick and hands them to PixelLink.

const (
	// HueSteps is the size of the color wheel. The wheel is split in
	// three phases of huePhase steps each; within a phase one channel
	// ramps down, the next ramps up and the third stays at zero.
	HueSteps = 48
	huePhase = 16

	// HueSpacing is the hue distance between adjacent pixels in the
	// rotating animation (8 pixels * 6 = one full wheel).
	HueSpacing = 6

	// BrightMax is the top of the brightness scale.
	BrightMax = 15
)

// brightLevel maps the 0..15 brightness index to an 8-bit channel
// magnitude. Squaring approximates gamma correction: perceived
// brightness steps stay roughly even while the emitted values span
// 0..225.
func brightLevel(bright int) int {
	if bright < 0 {
		bright = 0
	}
	if bright > BrightMax {
		bright = BrightMax
	}
	return bright * bright
}

// WhiteAt returns white at the given brightness index, equal on all
// three channels.
func WhiteAt(bright int) RGB {
	v := uint8(brightLevel(bright))
	return RGB{R: v, G: v, B: v}
}

// HueToColor maps a wheel position and brightness index to a pixel
// value. Exactly one channel is held at zero per phase; the other two
// ramp linearly against each other so their sum stays at the
// brightness level (up to integer truncation). Hue values outside
// 0..47 are folded back onto the wheel, which also absorbs the
// transient 48 the encoder can report at its wrap bound.
func HueToColor(hue, bright int) RGB {
	hue %= HueSteps
	if hue < 0 {
		hue += HueSteps
	}
	v := brightLevel(bright)
	ramp := hue % huePhase
	up := uint8(v * ramp / (huePhase - 1))
	down := uint8(v * (huePhase - 1 - ramp) / (huePhase - 1))
	switch hue / huePhase {
	case 0:
		return RGB{R: down, G: up}
	case 1:
		return RGB{G: down, B: up}
	default:
		return RGB{B: down, R: up}
	}
}
