package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"nightknob/core"
)

// Detent edge sequences as the hardware produces them from the
// pull-up rest level: four electrical edges per click, A leading for
// clockwise, B leading for counter-clockwise.
var (
	cwSeq  = [4][2]bool{{false, true}, {false, false}, {true, false}, {true, true}}
	ccwSeq = [4][2]bool{{true, false}, {false, false}, {false, true}, {true, true}}
)

// runSim drives the real firmware core against terminal-backed fakes:
// stdin presses the button and turns the knob, the strip renders as
// truecolor blocks.
func runSim(log zerolog.Logger) {
	drv := &termPixels{}
	enc := core.NewEncoder()
	wait := simWait{}
	btn := &simButton{}
	rail := &simRail{log: log}
	ctl := core.NewController(core.NewPixelLink(drv), enc, core.NewButton(btn, wait), rail, wait)
	core.SetDebugWriter(func(s string) { log.Debug().Msg(s) })

	fmt.Println("nightknob simulator. b: button, +N/-N: rotate, tN: run N ticks, s: status, q: quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			ctl.Tick()
			continue
		}
		switch line[0] {
		case 'q':
			return
		case 'b':
			btn.press()
			ctl.Tick() // consumes the press and switches state
			ctl.Tick() // first tick of the new state
		case '+', '-':
			n := 1
			if len(line) > 1 {
				if v, err := strconv.Atoi(line[1:]); err == nil {
					n = v
				}
			}
			seq := cwSeq
			if line[0] == '-' {
				seq = ccwSeq
			}
			for i := 0; i < n; i++ {
				for _, lv := range seq {
					enc.Edge(lv[0], lv[1])
				}
			}
			ctl.Tick()
		case 't':
			n := 1
			if len(line) > 1 {
				if v, err := strconv.Atoi(line[1:]); err == nil {
					n = v
				}
			}
			for i := 0; i < n; i++ {
				ctl.Tick()
			}
		case 's':
			log.Info().
				Stringer("state", ctl.State()).
				Int("brightness", ctl.Brightness()).
				Int("hue", ctl.Hue()).
				Bool("rail", rail.on).
				Int("encoder", enc.Get()).
				Msg("status")
		default:
			fmt.Println("commands: b, +N, -N, tN, s, q")
		}
	}
}

// termPixels renders the wire byte stream back into terminal blocks.
type termPixels struct {
	buf [core.NumPixels * 3]byte
	n   int
}

func (t *termPixels) WriteByte(b byte) {
	if t.n < len(t.buf) {
		t.buf[t.n] = b
		t.n++
	}
}

func (t *termPixels) Latch() {
	if t.n == len(t.buf) {
		paintStrip(t.buf[:])
	}
	t.n = 0
}

// simButton reads held exactly once per injected press, giving the
// debouncer a clean press+release.
type simButton struct {
	down bool
}

func (b *simButton) Down() bool {
	if b.down {
		b.down = false
		return true
	}
	return false
}

func (b *simButton) press() { b.down = true }

// simWait never sleeps: simulated time is advanced by running ticks.
type simWait struct{}

func (simWait) Idle(time.Duration) {}
func (simWait) WaitForPress()      {}

type simRail struct {
	log zerolog.Logger
	on  bool
}

func (r *simRail) SetRail(on bool) {
	if on != r.on {
		r.log.Info().Bool("on", on).Msg("led rail")
	}
	r.on = on
}
