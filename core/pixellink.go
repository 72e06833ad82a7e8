package core

// PixelDriver is the abstract single-wire LED transmitter that core
// code uses. Implementations own the per-bit timing: each byte must go
// out MSB first with every bit slot consuming a fixed cycle count
// (hand-timed bit-bang or a hardware serializer such as PIO).
// Platform-specific drivers live under targets/.
type PixelDriver interface {
	// WriteByte shifts one byte onto the wire, MSB first.
	WriteByte(b byte)

	// Latch holds the line idle for at least the chain's reset time,
	// after which the pixels display the received frame. The chain
	// reinterprets any silence above that threshold as end-of-frame,
	// so drivers must not pause mid-frame.
	Latch()
}

// PixelLink serializes frames onto the chain through a PixelDriver.
//
// The wire protocol is unidirectional and unacknowledged; Transmit
// cannot fail at the software level. Correctness rests entirely on the
// driver's bit timing, so the whole frame is shifted out with
// interrupts masked: an encoder edge arriving mid-frame stays pending
// and is serviced right after the mask is lifted, a delay inside a bit
// slot would corrupt the frame.
type PixelLink struct {
	drv PixelDriver
}

// NewPixelLink returns a PixelLink transmitting through drv.
func NewPixelLink(drv PixelDriver) *PixelLink {
	return &PixelLink{drv: drv}
}

// Transmit shifts all 8 pixels out back to back, green-red-blue per
// pixel with no inter-pixel gap. The caller must invoke Latch before
// the next Transmit.
func (l *PixelLink) Transmit(f *Frame) {
	state := disableInterrupts()
	for i := range f {
		l.drv.WriteByte(f[i].G)
		l.drv.WriteByte(f[i].R)
		l.drv.WriteByte(f[i].B)
	}
	restoreInterrupts(state)
}

// Latch ends the frame and lets the chain display it.
func (l *PixelLink) Latch() {
	l.drv.Latch()
}
