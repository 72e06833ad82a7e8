// nightknob-host attaches to a running night light and renders its
// frame tap live in the terminal, or runs the firmware core
// interactively on the host for bench-free debugging.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"nightknob/host/config"
	"nightknob/host/serial"
)

var (
	device  = flag.String("device", "", "serial device path (overrides config file)")
	baud    = flag.Int("baud", 0, "baud rate (overrides config file)")
	cfgPath = flag.String("config", "", "YAML config file")
	sim     = flag.Bool("sim", false, "run the firmware core interactively instead of attaching to a device")
	verbose = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if *sim {
		runSim(log)
		return
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("load config")
		}
		cfg = loaded
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeoutMs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open serial port")
	}
	defer port.Close()
	log.Info().Str("device", cfg.Device).Int("baud", cfg.Baud).Msg("connected")

	if err := runViewer(log, port); err != nil {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
