package protocol

import (
	"encoding/binary"
	"fmt"
)

// StatusCode reports a device's overall health.
type StatusCode uint8

const (
	StatusOK          StatusCode = 0x00
	StatusWarning     StatusCode = 0x01
	StatusError       StatusCode = 0x02
	StatusCritical    StatusCode = 0x03
	StatusMaintenance StatusCode = 0x04
	StatusOffline     StatusCode = 0x05
)

func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	case StatusCritical:
		return "CRITICAL"
	case StatusMaintenance:
		return "MAINTENANCE"
	case StatusOffline:
		return "OFFLINE"
	default:
		return "UNKNOWN"
	}
}

// StatusPayloadSize is the fixed wire size of a StatusPayload.
const StatusPayloadSize = 9

// StatusPayload is the STATUS_RESPONSE payload: 1-byte status, 4-byte
// BE uptime seconds, 2-byte BE error count, 2-byte BE warning count.
type StatusPayload struct {
	Status   StatusCode
	Uptime   uint32
	Errors   uint16
	Warnings uint16
}

// Encode writes the payload to out, which must be at least
// StatusPayloadSize bytes.
func (p StatusPayload) Encode(out []byte) (int, error) {
	if len(out) < StatusPayloadSize {
		return 0, fmt.Errorf("status payload: %w: buffer too short", ErrInvalid)
	}
	out[0] = byte(p.Status)
	binary.BigEndian.PutUint32(out[1:5], p.Uptime)
	binary.BigEndian.PutUint16(out[5:7], p.Errors)
	binary.BigEndian.PutUint16(out[7:9], p.Warnings)
	return StatusPayloadSize, nil
}

// DecodeStatusPayload parses a STATUS_RESPONSE payload.
func DecodeStatusPayload(data []byte) (StatusPayload, error) {
	if len(data) < StatusPayloadSize {
		return StatusPayload{}, fmt.Errorf("status payload: %w: too short", ErrInvalid)
	}
	return StatusPayload{
		Status:   StatusCode(data[0]),
		Uptime:   binary.BigEndian.Uint32(data[1:5]),
		Errors:   binary.BigEndian.Uint16(data[5:7]),
		Warnings: binary.BigEndian.Uint16(data[7:9]),
	}, nil
}
