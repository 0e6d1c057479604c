// Package protocol defines the closed set of message kinds and the
// status/command payload layouts carried over a devproto frame.
package protocol

// Kind identifies what a message's payload means. The numeric ranges
// are load-bearing: a message's Class is derived from its Kind value
// alone, never carried separately on the wire.
type Kind uint8

// Requests: host -> device.
const (
	Ping           Kind = 0x01
	RequestMetrics Kind = 0x02
	ExecuteCommand Kind = 0x03
	SetConfig      Kind = 0x04
	GetStatus      Kind = 0x05
	Reboot         Kind = 0x06
	UpdateFirmware Kind = 0x07
)

// Responses: device -> host.
const (
	Pong            Kind = 0x81
	MetricsResponse Kind = 0x82
	CommandResult   Kind = 0x83
	ConfigAck       Kind = 0x84
	StatusResponse  Kind = 0x85
	RebootAck       Kind = 0x86
)

// Unsolicited events: device -> host.
const (
	AlertEvent        Kind = 0xA1
	ThresholdExceeded Kind = 0xA2
	HardwareFault     Kind = 0xA3
	ConnectionLost    Kind = 0xA4
)

// Class partitions the Kind namespace.
type Class int

const (
	ClassRequest Class = iota
	ClassResponse
	ClassEvent
)

func (c Class) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassResponse:
		return "response"
	case ClassEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Class reports which range k falls in.
func (k Kind) Class() Class {
	switch {
	case k >= 0xA0:
		return ClassEvent
	case k >= 0x80:
		return ClassResponse
	default:
		return ClassRequest
	}
}

// IsResponse reports whether k is in the 0x80-0x9F response range.
func (k Kind) IsResponse() bool { return k >= 0x80 && k < 0xA0 }

// IsEvent reports whether k is in the 0xA0-0xFF event range.
func (k Kind) IsEvent() bool { return k >= 0xA0 }

// ResponseKind returns the response kind for request kind k (k | 0x80).
func ResponseKind(k Kind) Kind { return k | 0x80 }
