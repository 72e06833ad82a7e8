package core

import "time"

// AppState enumerates the four application states. A confirmed button
// press advances to the next state, wrapping back to off after solid.
type AppState uint8

const (
	StateOff AppState = iota
	StateWhite
	StateAnimate
	StateSolid

	numStates
)

func (s AppState) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateWhite:
		return "white"
	case StateAnimate:
		return "animate"
	case StateSolid:
		return "solid"
	default:
		return "invalid"
	}
}

// Encoder ranges per state. White and animate share one configuration:
// the speed knob in animate reuses the 2..15 brightness range set on
// entry to white rather than reconfiguring. That sharing is inherited
// device behavior and kept deliberately; see DESIGN.md.
const (
	brightMin = 2  // white never turns fully dark; off is its own state
	brightMax = BrightMax
	hueMin    = 0
	hueMax    = HueSteps // one past the last wheel step; folds to 0 on render

	initialBrightness = 5

	// pollInterval paces the main loop in the lit states.
	pollInterval = 10 * time.Millisecond
)

// RailDriver gates the LED supply rail, the off-state power saving
// measure.
type RailDriver interface {
	SetRail(on bool)
}

// WaitDriver provides the controller's two kinds of waiting: a short
// interruptible poll delay, and the off-state low-power wait that
// blocks until button activity. On hardware WaitForPress may put the
// MCU into a sleep mode; edges on the button pin wake it.
type WaitDriver interface {
	Idle(d time.Duration)
	WaitForPress()
}

// Controller is the application state machine. It polls the button,
// reads the encoder, computes colors and emits frames. Single main
// context; the encoder's interrupt context is the only concurrency.
type Controller struct {
	link *PixelLink
	enc  *Encoder
	btn  *Button
	rail RailDriver
	wait WaitDriver

	state      AppState
	brightness int // 0..15, retained across states
	hue        int // wheel index, retained across states

	// animate-only transients
	offset    int // rotating hue offset
	countdown int // poll ticks until the next animation step

	frame Frame
}

// NewController wires the state machine to its collaborators. The
// light starts in the off state with brightness 5 and hue 0.
func NewController(link *PixelLink, enc *Encoder, btn *Button, rail RailDriver, wait WaitDriver) *Controller {
	return &Controller{
		link:       link,
		enc:        enc,
		btn:        btn,
		rail:       rail,
		wait:       wait,
		state:      StateOff,
		brightness: initialBrightness,
		hue:        0,
	}
}

// State returns the current application state.
func (c *Controller) State() AppState { return c.state }

// Brightness returns the retained brightness index.
func (c *Controller) Brightness() int { return c.brightness }

// Hue returns the retained hue wheel index.
func (c *Controller) Hue() int { return c.hue }

// Run executes the cooperative main loop. It never returns; the device
// runs until power-off.
func (c *Controller) Run() {
	c.rail.SetRail(false)
	for {
		c.Tick()
	}
}

// Tick executes one poll iteration of the current state: a button
// check, then the state's per-tick behavior. In the off state the tick
// blocks in the low-power wait instead of busy-polling.
func (c *Controller) Tick() {
	if c.btn.Pressed() {
		c.advance()
		return
	}
	switch c.state {
	case StateOff:
		c.wait.WaitForPress()
	case StateWhite:
		c.brightness = c.enc.Get()
		c.frame.Fill(WhiteAt(c.brightness))
		c.show()
		c.wait.Idle(pollInterval)
	case StateAnimate:
		if c.countdown <= 0 {
			c.countdown = c.enc.Get()
			c.offset++
			if c.offset >= HueSteps {
				c.offset = 0
			}
			for i := range c.frame {
				c.frame[i] = HueToColor(c.offset+i*HueSpacing, c.brightness)
			}
			c.show()
		} else {
			c.countdown--
		}
		c.wait.Idle(pollInterval)
	case StateSolid:
		c.hue = c.enc.Get()
		c.frame.Fill(HueToColor(c.hue, c.brightness))
		c.show()
		c.wait.Idle(pollInterval)
	}
}

// advance moves to the next state and performs its entry action.
// Brightness and hue survive the transition; only the encoder range
// changes hands.
func (c *Controller) advance() {
	c.state++
	if c.state >= numStates {
		c.state = StateOff
	}
	debugPrintln("state -> " + c.state.String() +
		" bright=" + itoa(c.brightness) + " hue=" + itoa(c.hue))

	switch c.state {
	case StateOff:
		c.rail.SetRail(false)
	case StateWhite:
		c.rail.SetRail(true)
		c.enc.Configure(brightMin, brightMax, 1, c.brightness, false)
	case StateAnimate:
		// Encoder keeps white's range; Get now means steps-per-frame.
		c.countdown = 0
	case StateSolid:
		c.enc.Configure(hueMin, hueMax, 1, c.hue, true)
	}
}

// show transmits the working frame and latches it.
func (c *Controller) show() {
	c.link.Transmit(&c.frame)
	c.link.Latch()
}
