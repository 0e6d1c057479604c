// Package metric implements the typed metric catalogue and the 5-byte
// wire encoding (1-byte type code + 4-byte big-endian IEEE-754 float)
// used in METRICS_RESPONSE payloads.
package metric

import (
	"encoding/binary"
	"math"
)

// Float32ToBE encodes v as 4 big-endian bytes into out, which must be
// at least 4 bytes long.
func Float32ToBE(v float32, out []byte) {
	binary.BigEndian.PutUint32(out, math.Float32bits(v))
}

// Float32FromBE decodes a float32 from the first 4 bytes of data.
func Float32FromBE(data []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(data))
}
