package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"nightknob/host/serial"
	"nightknob/protocol"
)

// runViewer decodes the device's frame-tap stream and repaints one
// terminal line with the strip's current colors.
func runViewer(log zerolog.Logger, port serial.Port) error {
	var dec protocol.Decoder
	buf := make([]byte, 256)
	frames := 0
	dropped := 0

	for {
		n, err := port.Read(buf)
		if err != nil && err != io.EOF {
			return fmt.Errorf("serial read: %w", err)
		}
		if n == 0 {
			continue // read timeout, keep listening
		}
		dec.Feed(buf[:n])
		for {
			payload := dec.Next()
			if payload == nil {
				break
			}
			if len(payload) != protocol.FrameLen {
				log.Debug().Int("len", len(payload)).Msg("skipping non-frame payload")
				continue
			}
			paintStrip(payload)
			frames++
			if d := dec.Dropped(); d != dropped {
				log.Warn().Int("bytes", d-dropped).Msg("resynced after line noise")
				dropped = d
			}
			if frames%1000 == 0 {
				log.Debug().Int("frames", frames).Msg("stream healthy")
			}
		}
	}
}

// paintStrip renders one 24-byte GRB payload as truecolor blocks,
// overwriting the current terminal line.
func paintStrip(grb []byte) {
	var b strings.Builder
	b.WriteString("\r\x1b[2K")
	for i := 0; i+2 < len(grb); i += 3 {
		g, r, bl := grb[i], grb[i+1], grb[i+2]
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm  ", r, g, bl)
	}
	b.WriteString("\x1b[0m")
	fmt.Print(b.String())
}
