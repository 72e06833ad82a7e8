//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks all interrupts and returns the previous
// state. Used around the pixel transmit critical section.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the saved interrupt state. A pin-change
// edge raised while masked stays pending and fires here.
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
