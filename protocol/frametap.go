// Package protocol defines the frame-tap wire format: the firmware can
// mirror every latched LED frame over its serial console, and the host
// viewer decodes the stream for live visualization. The format is a
// one-way debugging tap, not a control channel.
//
// Message layout:
//
//	0x5A 0xA7 | len (1 byte) | payload (len bytes) | crc16 (2 bytes, big endian)
//
// The CRC covers the length byte and the payload. A full LED frame is
// a 24-byte payload, the 8 pixels' GRB bytes in wire order.
package protocol

// FrameLen is the payload size of one LED frame: 8 pixels, 3 bytes
// each, green-red-blue.
const FrameLen = 24

// MaxPayload bounds the length byte a decoder accepts; anything larger
// is treated as line noise.
const MaxPayload = 64

const (
	sig0 = 0x5A
	sig1 = 0xA7

	headerLen  = 3 // two signature bytes + length
	trailerLen = 2 // crc16
)

// AppendFrame appends one framed message carrying payload to dst and
// returns the extended slice. The firmware calls this with a stack
// buffer, so it allocates only when dst lacks capacity.
func AppendFrame(dst, payload []byte) []byte {
	dst = append(dst, sig0, sig1, byte(len(payload)))
	dst = append(dst, payload...)
	crc := CRC16(dst[len(dst)-len(payload)-1:])
	return append(dst, byte(crc>>8), byte(crc))
}

// Decoder reassembles messages from an arbitrarily chunked byte
// stream. It resynchronizes on the signature after garbage or a CRC
// failure, discarding one byte at a time so a signature inside the
// damaged region is not missed.
type Decoder struct {
	buf     []byte
	dropped int
}

// Feed appends raw bytes read from the serial port.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Dropped returns the number of bytes discarded during
// resynchronization since the decoder was created.
func (d *Decoder) Dropped() int {
	return d.dropped
}

// Next returns the next complete, checksum-valid payload, or nil when
// the buffered stream holds none. The returned slice is only valid
// until the next call to Feed or Next.
func (d *Decoder) Next() []byte {
	for {
		// Hunt for the signature.
		for len(d.buf) >= 2 && (d.buf[0] != sig0 || d.buf[1] != sig1) {
			d.skip(1)
		}
		if len(d.buf) < headerLen {
			return nil
		}
		n := int(d.buf[2])
		if n > MaxPayload {
			d.skip(1)
			continue
		}
		total := headerLen + n + trailerLen
		if len(d.buf) < total {
			return nil
		}
		body := d.buf[2 : headerLen+n] // length byte + payload
		want := uint16(d.buf[total-2])<<8 | uint16(d.buf[total-1])
		if CRC16(body) != want {
			d.skip(1)
			continue
		}
		payload := d.buf[headerLen : headerLen+n]
		d.buf = d.buf[total:]
		return payload
	}
}

func (d *Decoder) skip(n int) {
	d.buf = d.buf[n:]
	d.dropped += n
}
