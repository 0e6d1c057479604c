package frame

import (
	"fmt"

	"github.com/ErselSeyit/devproto/internal/crc"
	"github.com/ErselSeyit/devproto/internal/protocol"
)

type state uint8

const (
	stateIdle state = iota
	stateHeaderLo
	stateLengthHi
	stateLengthLo
	stateType
	stateSeq
	statePayload
	stateCRCHi
	stateCRCLo
)

// Stats are the parser's monotonic counters. They only ever increase
// over a Parser's lifetime (Reset does not clear them).
type Stats struct {
	FramesParsed uint64
	CRCErrors    uint64
	SyncErrors   uint64
}

// Parser is a zero-allocation, byte-at-a-time devproto frame decoder.
// It holds a fixed MaxFrameSize buffer so that feeding bytes never
// allocates; a Message handed to a Feed callback aliases that buffer
// and is only valid until the next byte is fed.
//
// The zero value is ready to use.
type Parser struct {
	observer Observer

	state state
	buf   [MaxFrameSize]byte
	pos   int

	expectedLen     int
	payloadReceived int
	kind            protocol.Kind
	seq             uint8
	crcReceived     uint16

	stats Stats
}

// NewParser returns a Parser that reports frame and error events to
// observer. A nil observer is fine; events are simply not reported.
func NewParser(observer Observer) *Parser {
	return &Parser{observer: observer}
}

// Stats returns a snapshot of the parser's counters.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Reset returns the parser to its initial state, discarding any
// partially assembled frame. It does not clear the counters returned
// by Stats.
func (p *Parser) Reset() {
	p.state = stateIdle
	p.pos = 0
	p.expectedLen = 0
	p.payloadReceived = 0
	p.kind = 0
	p.seq = 0
	p.crcReceived = 0
}

// FeedByte advances the state machine by one byte. When a complete,
// CRC-verified frame is assembled it returns (msg, true, nil); msg's
// Payload aliases the parser's internal buffer and is invalidated by
// the next call to FeedByte, Feed, or Reset. A non-nil error indicates
// a length overflow or a CRC failure; the parser has already resumed
// scanning for the next frame by the time it returns. Bytes discarded
// while searching for a header are counted in Stats but return no error.
func (p *Parser) FeedByte(b byte) (msg Message, complete bool, err error) {
	switch p.state {
	case stateIdle:
		if b == HeaderByte0 {
			p.buf[0] = b
			p.pos = 1
			p.state = stateHeaderLo
		} else {
			p.stats.SyncErrors++
			if p.observer != nil {
				p.observer.OnSyncError()
			}
		}

	case stateHeaderLo:
		switch b {
		case HeaderByte1:
			p.buf[1] = b
			p.pos = 2
			p.state = stateLengthHi
		case HeaderByte0:
			// Could be the start of a new frame; stay synced on it.
			p.buf[0] = b
			p.pos = 1
		default:
			p.stats.SyncErrors++
			if p.observer != nil {
				p.observer.OnSyncError()
			}
			p.Reset()
		}

	case stateLengthHi:
		p.buf[2] = b
		p.pos = 3
		p.expectedLen = int(b) << 8
		p.state = stateLengthLo

	case stateLengthLo:
		p.buf[3] = b
		p.pos = 4
		p.expectedLen |= int(b)
		if p.expectedLen > MaxPayloadSize {
			p.stats.SyncErrors++
			if p.observer != nil {
				p.observer.OnOverflow()
			}
			p.Reset()
			return Message{}, false, fmt.Errorf("frame: %w: payload length %d exceeds max %d", protocol.ErrOverflow, p.expectedLen, MaxPayloadSize)
		}
		p.state = stateType

	case stateType:
		p.buf[4] = b
		p.pos = 5
		p.kind = protocol.Kind(b)
		p.state = stateSeq

	case stateSeq:
		p.buf[5] = b
		p.pos = 6
		p.seq = b
		p.payloadReceived = 0
		if p.expectedLen == 0 {
			p.state = stateCRCHi
		} else {
			p.state = statePayload
		}

	case statePayload:
		if p.pos >= MaxFrameSize {
			p.stats.SyncErrors++
			if p.observer != nil {
				p.observer.OnOverflow()
			}
			p.Reset()
			return Message{}, false, fmt.Errorf("frame: %w: frame buffer exhausted", protocol.ErrOverflow)
		}
		p.buf[p.pos] = b
		p.pos++
		p.payloadReceived++
		if p.payloadReceived >= p.expectedLen {
			p.state = stateCRCHi
		}

	case stateCRCHi:
		p.crcReceived = uint16(b) << 8
		p.state = stateCRCLo

	case stateCRCLo:
		p.crcReceived |= uint16(b)

		dataLen := HeaderSize + p.expectedLen
		calc := crc.Checksum(p.buf[:dataLen])
		if calc != p.crcReceived {
			p.stats.CRCErrors++
			if p.observer != nil {
				p.observer.OnCRCError()
			}
			p.Reset()
			return Message{}, false, fmt.Errorf("frame: %w: calculated 0x%04X, received 0x%04X", protocol.ErrCRC, calc, p.crcReceived)
		}

		p.stats.FramesParsed++
		out := Message{Kind: p.kind, Seq: p.seq}
		if p.expectedLen > 0 {
			out.Payload = p.buf[HeaderSize:dataLen]
		}
		if p.observer != nil {
			p.observer.OnFrame(out)
		}
		p.Reset()
		return out, true, nil
	}

	return Message{}, false, nil
}

// Feed processes data and invokes onMessage for each complete frame in
// order. Each Message passed to onMessage aliases the parser's
// internal buffer and must not be retained past the call. Sync and
// CRC errors are reported through the parser's Observer (if any) and
// counted in Stats, but do not stop the scan: Feed always consumes all
// of data.
func (p *Parser) Feed(data []byte, onMessage func(Message)) {
	for _, b := range data {
		if msg, complete, _ := p.FeedByte(b); complete {
			onMessage(msg)
		}
	}
}

// ParseInto decodes data into out, copying each message's payload so
// the result remains valid after the call returns (unlike Feed's
// zero-copy callback). It returns the number of messages written,
// stopping early if out fills up before data is exhausted.
func (p *Parser) ParseInto(data []byte, out []Message) (int, error) {
	if len(out) == 0 {
		return 0, nil
	}
	n := 0
	for _, b := range data {
		if n >= len(out) {
			break
		}
		msg, complete, _ := p.FeedByte(b)
		if !complete {
			continue
		}
		cp := Message{Kind: msg.Kind, Seq: msg.Seq}
		if len(msg.Payload) > 0 {
			cp.Payload = append([]byte(nil), msg.Payload...)
		}
		out[n] = cp
		n++
	}
	return n, nil
}
