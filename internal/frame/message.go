// Package frame implements the devproto wire frame: constants, a
// zero-allocation streaming parser, and a builder. Frame layout:
//
//	+--------+--------+--------+--------+-------------+--------+
//	| 0xAA55 | LENGTH |  TYPE  |  SEQ   | PAYLOAD     |  CRC   |
//	+--------+--------+--------+--------+-------------+--------+
//	| 2 bytes| 2 bytes| 1 byte | 1 byte | 0-4096 bytes| 2 bytes|
//	         (big-endian)                              (CRC-16-CCITT)
package frame

import (
	"github.com/ErselSeyit/devproto/internal/metric"
	"github.com/ErselSeyit/devproto/internal/protocol"
)

// Wire layout constants.
const (
	HeaderByte0 = 0xAA
	HeaderByte1 = 0x55

	MaxPayloadSize = 4096
	HeaderSize     = 6 // sync(2) + length(2) + type(1) + seq(1)
	CRCSize        = 2
	MinFrameSize   = HeaderSize + CRCSize
	MaxFrameSize   = HeaderSize + MaxPayloadSize + CRCSize
)

// Message is a decoded or to-be-encoded devproto message.
type Message struct {
	Kind    protocol.Kind
	Seq     uint8
	Payload []byte
}

// NewPing builds a PING request carrying no payload.
func NewPing(seq uint8) Message {
	return Message{Kind: protocol.Ping, Seq: seq}
}

// NewPong builds a PONG response carrying no payload.
func NewPong(seq uint8) Message {
	return Message{Kind: protocol.Pong, Seq: seq}
}

// NewMetricsRequest builds a REQUEST_METRICS message asking for the
// given metric types. An empty types list requests every metric the
// device reports (metric.All).
func NewMetricsRequest(seq uint8, types ...metric.Type) Message {
	if len(types) == 0 {
		return Message{Kind: protocol.RequestMetrics, Seq: seq, Payload: []byte{byte(metric.All)}}
	}
	payload := make([]byte, len(types))
	for i, t := range types {
		payload[i] = byte(t)
	}
	return Message{Kind: protocol.RequestMetrics, Seq: seq, Payload: payload}
}

// NewMetricsResponse builds a METRICS_RESPONSE carrying the given
// records packed as 5-byte entries.
func NewMetricsResponse(seq uint8, records []metric.Record) (Message, error) {
	payload := make([]byte, len(records)*metric.EntrySize)
	if _, err := metric.Build(records, payload); err != nil {
		return Message{}, err
	}
	return Message{Kind: protocol.MetricsResponse, Seq: seq, Payload: payload}, nil
}

// NewStatusRequest builds a GET_STATUS request carrying no payload.
func NewStatusRequest(seq uint8) Message {
	return Message{Kind: protocol.GetStatus, Seq: seq}
}

// NewStatusResponse builds a STATUS_RESPONSE carrying an encoded
// StatusPayload.
func NewStatusResponse(seq uint8, status protocol.StatusPayload) (Message, error) {
	payload := make([]byte, protocol.StatusPayloadSize)
	if _, err := status.Encode(payload); err != nil {
		return Message{}, err
	}
	return Message{Kind: protocol.StatusResponse, Seq: seq, Payload: payload}, nil
}

// NewCommand builds an EXECUTE_COMMAND request.
func NewCommand(seq uint8, code protocol.CommandCode, params []byte) Message {
	payload := make([]byte, 1+len(params))
	payload[0] = byte(code)
	copy(payload[1:], params)
	return Message{Kind: protocol.ExecuteCommand, Seq: seq, Payload: payload}
}

// NewCommandResult builds a COMMAND_RESULT response.
func NewCommandResult(seq uint8, result protocol.CommandResultPayload) (Message, error) {
	payload := make([]byte, 2+len(result.Output))
	if _, err := result.Encode(payload); err != nil {
		return Message{}, err
	}
	return Message{Kind: protocol.CommandResult, Seq: seq, Payload: payload}, nil
}
