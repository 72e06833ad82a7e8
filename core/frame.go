package core

// NumPixels is the length of the LED chain. The hardware is a fixed
// ring of 8 pixels; the wire protocol has no length field, the chain
// simply latches whatever was shifted in.
const NumPixels = 8

// RGB is one pixel value, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Frame is one full refresh of the chain. Frames carry no identity:
// one is built and transmitted per refresh, and the LEDs hold the last
// latched frame until the next transmit.
type Frame [NumPixels]RGB

// Fill sets every pixel to c.
func (f *Frame) Fill(c RGB) {
	for i := range f {
		f[i] = c
	}
}

// wireBytes returns the number of payload bytes in one transmitted
// frame (3 bytes per pixel, GRB order).
const wireBytes = NumPixels * 3
