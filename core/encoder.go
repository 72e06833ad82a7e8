package core

import "sync/atomic"

// Encoder tracks a quadrature rotary encoder from pin-change edges.
//
// The decoder is edge-driven on channel A only: the platform calls
// Edge from its pin-change handler with the freshly sampled levels of
// both channels. Sampling only A's edges halves the interrupt load but
// also halves the usable resolution, so the position is kept at twice
// the reported scale internally and halved on read; a stray half step
// then never shows up as one-count jitter on Get.
//
// No contact debounce is performed on A/B. Mechanical bounce at the
// edge-sampling point is assumed negligible for this encoder; this is
// a known limitation, not an oversight (the push button, by contrast,
// is debounced in software).
//
// Concurrency: Edge runs in the interrupt context, Get in the main
// context. Edges from one source are never nested, so Edge needs no
// lock against itself; the position register is the only value shared
// across contexts and is published through an atomic so the reader
// sees, at worst, a one-tick-stale but always bounds-valid position.
// Configure is not synchronized against a concurrent edge; callers
// reconfigure only while the knob is at rest, between frames.
type Encoder struct {
	pos atomic.Int32 // doubled scale, bounds applied before every store

	min, max int32 // doubled bounds
	step     int32 // signed; sign flips the decode direction
	wrap     bool

	// edge history needed to disambiguate quadrature transitions
	lastA  bool
	lastB  bool
	lastEq bool // last confirmed A==B parity
}

// NewEncoder returns an encoder with both channels assumed high, the
// rest level of a detented encoder on pull-ups. Call Configure before
// first use.
func NewEncoder() *Encoder {
	return &Encoder{lastA: true, lastB: true, lastEq: true}
}

// Configure resets range, step, direction and position. min and max
// are the reported bounds, step the reported per-detent increment (a
// negative step reverses the knob), wrap selects wrapping instead of
// clamping at the bounds. The initial position is centered inside its
// detent on the doubled scale so half-step noise cannot move the
// reported value.
func (e *Encoder) Configure(min, max, step, initial int, wrap bool) {
	e.min = int32(min) << 1
	e.max = int32(max)<<1 | 1
	e.step = int32(step)
	e.wrap = wrap
	e.lastEq = e.lastA == e.lastB
	e.pos.Store(int32(initial)<<1 | 1)
}

// Edge consumes one pin-change notification. a and b are the current
// levels of the two channels, sampled by the caller inside its
// interrupt handler.
//
// A step is confirmed only when A's level changed and B's level also
// differs from its stored value at that instant. Direction follows the
// new A==B parity: equal means -step, unequal +step. If that parity
// itself flipped since the last confirmed step the delta is applied
// twice, which catches the detent-straddling transition this encoder
// produces on direction changes. That double step is inherited device
// behavior, not textbook quadrature.
func (e *Encoder) Edge(a, b bool) {
	if a == e.lastA {
		return
	}
	e.lastA = a
	if b == e.lastB {
		return
	}
	e.lastB = b

	delta := e.step
	if a == b {
		delta = -delta
	}
	if eq := a == b; eq != e.lastEq {
		e.lastEq = eq
		delta += delta
	}

	p := e.pos.Load() + delta
	if p > e.max {
		if e.wrap {
			p = e.min
		} else {
			p = e.max
		}
	} else if p < e.min {
		if e.wrap {
			p = e.max
		} else {
			p = e.min
		}
	}
	e.pos.Store(p)
}

// Get returns the current position on the reported scale. Safe to call
// from the main context at any time.
func (e *Encoder) Get() int {
	return int(e.pos.Load() >> 1)
}
