package transport

import (
	"net"
	"time"
)

// LoopbackTransport carries devproto frames over an in-memory
// net.Pipe connection. It exists for tests that want a real Transport
// without a serial port or listening socket.
type LoopbackTransport struct {
	conn net.Conn
}

// NewLoopbackPair returns two connected LoopbackTransports; bytes
// written to one are read from the other.
func NewLoopbackPair() (a, b *LoopbackTransport) {
	ca, cb := net.Pipe()
	return &LoopbackTransport{conn: ca}, &LoopbackTransport{conn: cb}
}

func (l *LoopbackTransport) Send(p []byte) (int, error) { return l.conn.Write(p) }

func (l *LoopbackTransport) Recv(out []byte, timeout time.Duration) (int, error) {
	if timeout > 0 {
		if err := l.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return 0, err
		}
		defer l.conn.SetReadDeadline(time.Time{})
	}
	return l.conn.Read(out)
}

func (l *LoopbackTransport) Available() (int, error) { return 0, nil }
func (l *LoopbackTransport) Flush() error             { return nil }
func (l *LoopbackTransport) Close() error             { return l.conn.Close() }
func (l *LoopbackTransport) Kind() Kind               { return KindLoopback }
