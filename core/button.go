package core

import "time"

// debounceTime brackets the release detection on both sides. The
// button is the one input that gets software debounce; a bouncing
// contact here would fire double state transitions, which the user
// sees immediately.
const debounceTime = 10 * time.Millisecond

// ButtonDriver samples the push button. Down reports the raw,
// undebounced physical level (true while held).
type ButtonDriver interface {
	Down() bool
}

// Button turns the raw pin level into confirmed press+release events.
type Button struct {
	drv  ButtonDriver
	wait WaitDriver
}

// NewButton returns a debounced button over drv, using wait for the
// debounce delays.
func NewButton(drv ButtonDriver, wait WaitDriver) *Button {
	return &Button{drv: drv, wait: wait}
}

// Pressed polls the button once. If it is down, Pressed blocks through
// a debounce delay, the release, and a second debounce delay, then
// reports true. A single physical press therefore yields exactly one
// true result no matter how the contacts bounce on make or break.
func (b *Button) Pressed() bool {
	if !b.drv.Down() {
		return false
	}
	b.wait.Idle(debounceTime)
	for b.drv.Down() {
		b.wait.Idle(time.Millisecond)
	}
	b.wait.Idle(debounceTime)
	return true
}
