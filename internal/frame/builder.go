package frame

import (
	"fmt"

	"github.com/ErselSeyit/devproto/internal/crc"
	"github.com/ErselSeyit/devproto/internal/protocol"
)

// Build serializes msg into out, returning the number of bytes
// written. out must be at least HeaderSize+len(msg.Payload)+CRCSize
// bytes; Encoded reports that size up front so callers can size a
// buffer without guessing.
func Build(msg Message, out []byte) (int, error) {
	if len(msg.Payload) > MaxPayloadSize {
		return 0, fmt.Errorf("frame: %w: payload of %d bytes exceeds max %d", protocol.ErrOverflow, len(msg.Payload), MaxPayloadSize)
	}
	n := Encoded(msg)
	if len(out) < n {
		return 0, fmt.Errorf("frame: %w: buffer of %d bytes too small for %d-byte frame", protocol.ErrInvalid, len(out), n)
	}

	out[0] = HeaderByte0
	out[1] = HeaderByte1
	out[2] = byte(len(msg.Payload) >> 8)
	out[3] = byte(len(msg.Payload))
	out[4] = byte(msg.Kind)
	out[5] = msg.Seq
	copy(out[HeaderSize:], msg.Payload)

	dataLen := HeaderSize + len(msg.Payload)
	sum := crc.Checksum(out[:dataLen])
	out[dataLen] = byte(sum >> 8)
	out[dataLen+1] = byte(sum)

	return n, nil
}

// Encoded returns the on-wire size of msg once built.
func Encoded(msg Message) int {
	return HeaderSize + len(msg.Payload) + CRCSize
}
