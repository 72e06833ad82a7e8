// Package serial abstracts the host's connection to the device's
// console so the viewer can also be fed from a recording or a test
// buffer.
package serial

import (
	"io"
)

// Port is the host side of the device console.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path, e.g. "/dev/ttyACM0" or "COM3".
	Device string

	// Baud rate. USB CDC consoles ignore it but the field is passed
	// through for real UARTs.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns a configuration suitable for the USB console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
