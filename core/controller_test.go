package core

import (
	"testing"
	"time"
)

type fakeRail struct {
	on   bool
	sets int
}

func (r *fakeRail) SetRail(on bool) {
	r.on = on
	r.sets++
}

type fakeWait struct {
	idles      int
	pressWaits int
}

func (w *fakeWait) Idle(time.Duration) { w.idles++ }
func (w *fakeWait) WaitForPress()      { w.pressWaits++ }

// fakeButton reads held exactly once per injected press, so one
// Controller.Tick sees one full press+release.
type fakeButton struct {
	down bool
}

func (b *fakeButton) Down() bool {
	if b.down {
		b.down = false
		return true
	}
	return false
}

type rig struct {
	c    *Controller
	drv  *recordDriver
	rail *fakeRail
	btn  *fakeButton
	enc  *Encoder
	wait *fakeWait
}

func newRig() *rig {
	drv := &recordDriver{}
	enc := NewEncoder()
	wait := &fakeWait{}
	btn := &fakeButton{}
	rail := &fakeRail{}
	link := NewPixelLink(drv)
	return &rig{
		c:    NewController(link, enc, NewButton(btn, wait), rail, wait),
		drv:  drv,
		rail: rail,
		btn:  btn,
		enc:  enc,
		wait: wait,
	}
}

// press injects one button press and runs the tick that consumes it.
func (r *rig) press() {
	r.btn.down = true
	r.c.Tick()
}

// lastFrame decodes the most recently transmitted frame from the GRB
// wire stream back into pixel values.
func (r *rig) lastFrame(t *testing.T) Frame {
	t.Helper()
	if len(r.drv.stream) < wireBytes {
		t.Fatalf("no complete frame transmitted (%d bytes)", len(r.drv.stream))
	}
	raw := r.drv.stream[len(r.drv.stream)-wireBytes:]
	var f Frame
	for i := range f {
		f[i] = RGB{G: raw[3*i], R: raw[3*i+1], B: raw[3*i+2]}
	}
	return f
}

func TestFourPressesReturnToOff(t *testing.T) {
	r := newRig()
	want := []AppState{StateWhite, StateAnimate, StateSolid, StateOff}
	for _, s := range want {
		r.press()
		if r.c.State() != s {
			t.Fatalf("state = %v, want %v", r.c.State(), s)
		}
	}
}

func TestOffStateWaits(t *testing.T) {
	r := newRig()
	r.c.Tick()
	r.c.Tick()
	if r.wait.pressWaits != 2 {
		t.Errorf("off ticks entered low-power wait %d times, want 2", r.wait.pressWaits)
	}
	if len(r.drv.stream) != 0 {
		t.Errorf("off state transmitted %d bytes, want 0", len(r.drv.stream))
	}
}

func TestWhiteEndToEnd(t *testing.T) {
	r := newRig()

	r.press()
	if r.c.State() != StateWhite {
		t.Fatalf("state = %v, want white", r.c.State())
	}
	if !r.rail.on {
		t.Error("LED rail not enabled on white entry")
	}
	if got := r.enc.Get(); got != initialBrightness {
		t.Errorf("encoder starts at %d, want %d", got, initialBrightness)
	}

	// The white range clamps at both ends.
	rotate(r.enc, 30, cwEdges)
	if got := r.enc.Get(); got != brightMax {
		t.Fatalf("encoder clamps at %d, want %d", got, brightMax)
	}
	rotate(r.enc, 30, ccwEdges)
	if got := r.enc.Get(); got != brightMin {
		t.Fatalf("encoder clamps at %d, want %d", got, brightMin)
	}

	// Dial to 10 and render: 8 identical white pixels.
	rotate(r.enc, 8, cwEdges)
	r.c.Tick()
	if r.c.Brightness() != 10 {
		t.Fatalf("brightness = %d, want 10", r.c.Brightness())
	}
	f := r.lastFrame(t)
	want := WhiteAt(10)
	for i, px := range f {
		if px != want {
			t.Errorf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestAnimateRotatesHues(t *testing.T) {
	r := newRig()
	r.press() // white
	r.press() // animate, countdown forced to zero

	r.c.Tick() // first animation step
	f := r.lastFrame(t)
	for i, px := range f {
		want := HueToColor(1+i*HueSpacing, initialBrightness)
		if px != want {
			t.Errorf("pixel %d = %+v, want %+v", i, px, want)
		}
	}

	// Speed is the encoder reading (still white's range, value 5):
	// the next frame goes out on the sixth following tick.
	before := len(r.drv.stream)
	for i := 0; i < 5; i++ {
		r.c.Tick()
		if len(r.drv.stream) != before {
			t.Fatalf("frame transmitted %d ticks early", 5-i)
		}
	}
	r.c.Tick()
	if len(r.drv.stream) != before+wireBytes {
		t.Fatal("no frame transmitted after countdown expired")
	}
	f = r.lastFrame(t)
	if want := HueToColor(2, initialBrightness); f[0] != want {
		t.Errorf("pixel 0 after second step = %+v, want %+v", f[0], want)
	}
}

func TestSolidHueAndWrap(t *testing.T) {
	r := newRig()
	r.press() // white
	r.press() // animate
	r.press() // solid

	if got := r.enc.Get(); got != 0 {
		t.Fatalf("solid entry encoder = %d, want 0", got)
	}
	rotate(r.enc, 3, cwEdges)
	r.c.Tick()
	if r.c.Hue() != 3 {
		t.Fatalf("hue = %d, want 3", r.c.Hue())
	}
	f := r.lastFrame(t)
	want := HueToColor(3, initialBrightness)
	for i, px := range f {
		if px != want {
			t.Errorf("pixel %d = %+v, want %+v", i, px, want)
		}
	}

	// Hue range wraps: min comes right after max.
	rotate(r.enc, 45, cwEdges)
	if got := r.enc.Get(); got != hueMax {
		t.Fatalf("encoder at top of range = %d, want %d", got, hueMax)
	}
	rotate(r.enc, 1, cwEdges)
	if got := r.enc.Get(); got != 0 {
		t.Errorf("encoder after wrapping = %d, want 0", got)
	}
}

func TestBrightnessAndHueRetainedAcrossStates(t *testing.T) {
	r := newRig()

	// White: dial brightness 5 -> 10.
	r.press()
	rotate(r.enc, 5, cwEdges)
	r.c.Tick()
	if r.c.Brightness() != 10 {
		t.Fatalf("brightness = %d, want 10", r.c.Brightness())
	}

	// Animate renders with the retained brightness and must not
	// overwrite it with the speed reading.
	r.press()
	r.c.Tick()
	if r.c.Brightness() != 10 {
		t.Fatalf("animate changed brightness to %d", r.c.Brightness())
	}
	f := r.lastFrame(t)
	if want := HueToColor(1, 10); f[0] != want {
		t.Errorf("animate pixel 0 = %+v, want %+v (brightness 10)", f[0], want)
	}

	// Solid: dial hue 0 -> 7.
	r.press()
	rotate(r.enc, 7, cwEdges)
	r.c.Tick()
	if r.c.Hue() != 7 {
		t.Fatalf("hue = %d, want 7", r.c.Hue())
	}

	// Off and around again: both scalars survive.
	r.press()
	if r.rail.on {
		t.Error("rail still on in off state")
	}
	r.press() // white
	if got := r.enc.Get(); got != 10 {
		t.Errorf("white re-entry encoder = %d, want retained 10", got)
	}
	r.press() // animate
	r.press() // solid
	if got := r.enc.Get(); got != 7 {
		t.Errorf("solid re-entry encoder = %d, want retained 7", got)
	}
	r.c.Tick()
	if r.c.Hue() != 7 || r.c.Brightness() != 10 {
		t.Errorf("retained bright/hue = %d/%d, want 10/7", r.c.Brightness(), r.c.Hue())
	}
}
