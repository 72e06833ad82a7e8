package protocol

import (
	"io"

	"nightknob/core"
)

// TapDriver wraps a PixelDriver and mirrors every latched frame as a
// frame-tap message on w. The wrapped driver sees the identical byte
// stream; the tap only observes.
type TapDriver struct {
	inner   core.PixelDriver
	w       io.Writer
	buf     [FrameLen]byte
	scratch [headerLen + FrameLen + trailerLen]byte
	n       int
}

// NewTapDriver returns a tap around inner writing messages to w,
// typically the device's serial console.
func NewTapDriver(inner core.PixelDriver, w io.Writer) *TapDriver {
	return &TapDriver{inner: inner, w: w}
}

func (t *TapDriver) WriteByte(b byte) {
	t.inner.WriteByte(b)
	if t.n < len(t.buf) {
		t.buf[t.n] = b
		t.n++
	}
}

func (t *TapDriver) Latch() {
	t.inner.Latch()
	if t.n == len(t.buf) {
		msg := AppendFrame(t.scratch[:0], t.buf[:])
		// Best effort: a stalled console must not wedge the light.
		_, _ = t.w.Write(msg)
	}
	t.n = 0
}
