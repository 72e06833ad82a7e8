//go:build nrf52840

// nRF52840 build of the night light. No PIO here: the WS2812 chain is
// bit-banged by the cycle-counted assembly driver in
// tinygo.org/x/drivers/ws2812, which is exactly why PixelLink masks
// interrupts for the duration of a frame: a serviced edge inside a
// bit slot would stretch it past the chain's sampling window.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ws2812"

	"nightknob/core"
	"nightknob/protocol"
)

const (
	pinPixels = machine.P0_06
	pinRail   = machine.P0_08
	pinEncA   = machine.P0_11
	pinEncB   = machine.P0_12
	pinButton = machine.P0_13
)

const frameTap = false

func main() {
	pinRail.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinRail.Low()
	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinEncB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinPixels.Configure(machine.PinConfig{Mode: machine.PinOutput})

	enc := core.NewEncoder()
	err := pinEncA.SetInterrupt(machine.PinToggle, func(machine.Pin) {
		enc.Edge(pinEncA.Get(), pinEncB.Get())
	})
	if err != nil {
		panic("encoder interrupt: " + err.Error())
	}

	var drv core.PixelDriver = &bangPixels{dev: ws2812.New(pinPixels)}
	if frameTap {
		drv = protocol.NewTapDriver(drv, machine.Serial)
	}

	core.SetDebugWriter(func(s string) { println(s) })

	wait := &sleepWait{}
	btn := core.NewButton(buttonPin{}, wait)
	ctl := core.NewController(core.NewPixelLink(drv), enc, btn, railPin{}, wait)
	ctl.Run()
}

// bangPixels adapts the assembly bit-bang driver to core.PixelDriver.
type bangPixels struct {
	dev ws2812.Device
}

func (p *bangPixels) WriteByte(b byte) {
	// Cannot fail on a configured output pin; the wire protocol has no
	// error channel either way.
	_ = p.dev.WriteByte(b)
}

func (p *bangPixels) Latch() {
	// Chain reset threshold with margin.
	time.Sleep(300 * time.Microsecond)
}

type railPin struct{}

func (railPin) SetRail(on bool) { pinRail.Set(on) }

type buttonPin struct{}

func (buttonPin) Down() bool { return !pinButton.Get() }

type sleepWait struct{}

func (sleepWait) Idle(d time.Duration) { time.Sleep(d) }

func (sleepWait) WaitForPress() {
	for pinButton.Get() {
		time.Sleep(20 * time.Millisecond)
	}
}
