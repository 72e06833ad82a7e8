package core

import "testing"

func TestHueToColorTable(t *testing.T) {
	// Landmark values computed from the ramp formula:
	// v = bright^2, up = v*ramp/15, down = v*(15-ramp)/15.
	testCases := []struct {
		hue, bright int
		want        RGB
	}{
		{0, 15, RGB{R: 225}},
		{8, 15, RGB{R: 105, G: 120}},
		{15, 15, RGB{R: 0, G: 225}},
		{16, 15, RGB{G: 225}},
		{24, 15, RGB{G: 105, B: 120}},
		{32, 15, RGB{B: 225}},
		{40, 15, RGB{R: 120, B: 105}},
		{47, 15, RGB{R: 225}},
		{0, 5, RGB{R: 25}},
		{8, 5, RGB{R: 11, G: 13}},
		{12, 10, RGB{R: 20, G: 80}},
		{5, 0, RGB{}},
		// out-of-range hues fold back onto the wheel
		{48, 15, RGB{R: 225}},
		{-1, 15, RGB{R: 225}},
	}

	for _, tc := range testCases {
		got := HueToColor(tc.hue, tc.bright)
		if got != tc.want {
			t.Errorf("HueToColor(%d, %d) = %+v, want %+v", tc.hue, tc.bright, got, tc.want)
		}
	}
}

func TestHueToColorRampInvariants(t *testing.T) {
	for bright := 0; bright <= BrightMax; bright++ {
		v := bright * bright
		for hue := 0; hue < HueSteps; hue++ {
			c := HueToColor(hue, bright)

			// The phase's third channel stays at zero.
			var off uint8
			var sum int
			switch hue / huePhase {
			case 0:
				off, sum = c.B, int(c.R)+int(c.G)
			case 1:
				off, sum = c.R, int(c.G)+int(c.B)
			default:
				off, sum = c.G, int(c.B)+int(c.R)
			}
			if off != 0 {
				t.Fatalf("HueToColor(%d, %d) = %+v: off-phase channel not zero", hue, bright, c)
			}

			// The two ramping channels trade off against each other:
			// their sum is the brightness level up to truncation.
			if sum > v || sum < v-1 {
				t.Errorf("HueToColor(%d, %d) channel sum %d, want %d or %d", hue, bright, sum, v-1, v)
			}
		}
	}
}

func TestWhiteAt(t *testing.T) {
	prev := -1
	for bright := 0; bright <= BrightMax; bright++ {
		c := WhiteAt(bright)
		if c.R != c.G || c.G != c.B {
			t.Errorf("WhiteAt(%d) = %+v, want equal channels", bright, c)
		}
		if int(c.R) != bright*bright {
			t.Errorf("WhiteAt(%d).R = %d, want %d", bright, c.R, bright*bright)
		}
		if int(c.R) < prev {
			t.Errorf("WhiteAt(%d) = %d not monotonic (previous %d)", bright, c.R, prev)
		}
		prev = int(c.R)
	}
}
