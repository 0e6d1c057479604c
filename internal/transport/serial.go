package transport

import (
	"time"

	"github.com/tarm/serial"
)

// SerialTransport carries devproto frames over a serial port. It is a
// thin pass-through to github.com/tarm/serial; open/close lifecycle
// (retry on disconnect, hot-plug detection) is left to the caller.
type SerialTransport struct {
	port *serial.Port
}

// OpenSerial opens name at baud with the given read timeout and
// returns a ready-to-use SerialTransport.
func OpenSerial(name string, baud int, readTimeout time.Duration) (*SerialTransport, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud, ReadTimeout: readTimeout})
	if err != nil {
		return nil, err
	}
	return &SerialTransport{port: port}, nil
}

func (s *SerialTransport) Send(p []byte) (int, error) { return s.port.Write(p) }

// Recv ignores timeout: tarm/serial fixes its read timeout at Open
// time and offers no per-call override.
func (s *SerialTransport) Recv(out []byte, timeout time.Duration) (int, error) {
	return s.port.Read(out)
}

// Available always reports 0: tarm/serial exposes no portable way to
// query queued-but-unread bytes ahead of a Read.
func (s *SerialTransport) Available() (int, error) { return 0, nil }

func (s *SerialTransport) Flush() error { return s.port.Flush() }
func (s *SerialTransport) Close() error { return s.port.Close() }
func (s *SerialTransport) Kind() Kind   { return KindSerial }
