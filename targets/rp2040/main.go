//go:build rp2040 || rp2350

// RP2040/RP2350 build of the night light. The WS2812 chain is driven
// by a PIO state machine, so the per-bit timing is held by hardware
// and the CPU only feeds whole pixels.
package main

import (
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"nightknob/core"
	"nightknob/protocol"
)

// Pin assignment, fixed at compile time.
const (
	pinPixels = machine.GP16 // WS2812 data
	pinRail   = machine.GP15 // LED supply rail gate, high = on
	pinEncA   = machine.GP12 // encoder channel A (interrupt source)
	pinEncB   = machine.GP13 // encoder channel B (sampled only)
	pinButton = machine.GP14 // push button, active low
)

// frameTap mirrors every latched frame over the USB console for the
// host viewer. Costs ~29 bytes of serial traffic per frame.
const frameTap = false

func main() {
	pinRail.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinRail.Low()
	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	enc := core.NewEncoder()
	// Edges on A only; B is sampled inside the handler. The decoder's
	// doubled internal scale absorbs the resolution this gives up.
	err := pinEncA.SetInterrupt(machine.PinToggle, func(machine.Pin) {
		enc.Edge(pinEncA.Get(), pinEncB.Get())
	})
	if err != nil {
		panic("encoder interrupt: " + err.Error())
	}

	sm, _ := pio.PIO0.ClaimStateMachine()
	ws, err := piolib.NewWS2812B(sm, pinPixels)
	if err != nil {
		panic("ws2812 pio: " + err.Error())
	}
	var drv core.PixelDriver = &pioPixels{ws: ws}
	if frameTap {
		drv = protocol.NewTapDriver(drv, machine.Serial)
	}

	core.SetDebugWriter(func(s string) { println(s) })

	wait := &sleepWait{}
	btn := core.NewButton(buttonPin{}, wait)
	ctl := core.NewController(core.NewPixelLink(drv), enc, btn, railPin{}, wait)
	ctl.Run()
}

// pioPixels adapts the PIO WS2812B state machine to core.PixelDriver.
// Bytes arrive in wire order (G, R, B); every third byte completes a
// pixel word for the PIO FIFO.
type pioPixels struct {
	ws   *piolib.WS2812B
	word uint32
	n    uint8
}

func (p *pioPixels) WriteByte(b byte) {
	p.word = p.word<<8 | uint32(b)
	p.n++
	if p.n == 3 {
		for p.ws.IsQueueFull() {
			// The FIFO is 8 deep with Tx join: a full frame fits, so
			// this spin is only hit if a latch was skipped.
		}
		p.ws.PutRaw(p.word << 8)
		p.word, p.n = 0, 0
	}
}

func (p *pioPixels) Latch() {
	// Drain time for the FIFO (8 pixels x 30us) plus the chain's
	// reset threshold, with margin.
	time.Sleep(600 * time.Microsecond)
}

type railPin struct{}

func (railPin) SetRail(on bool) { pinRail.Set(on) }

type buttonPin struct{}

func (buttonPin) Down() bool { return !pinButton.Get() } // active low

type sleepWait struct{}

func (sleepWait) Idle(d time.Duration) { time.Sleep(d) }

// WaitForPress parks the main loop in the off state. TinyGo's timer
// sleep drops the core into a low-power wait between polls; encoder
// edges still fire but the LED rail is down so nothing is rendered.
func (sleepWait) WaitForPress() {
	for pinButton.Get() {
		time.Sleep(20 * time.Millisecond)
	}
}
