package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/ErselSeyit/devproto/internal/frame"
	"github.com/ErselSeyit/devproto/internal/metrics"
	"github.com/ErselSeyit/devproto/internal/transport"
)

// This exercises the intended wiring between the builder, an
// AsyncSender, a Transport, and the parser's metrics on one real
// pipeline: build a frame, hand it to an AsyncSender whose hooks
// record built/sent/dropped counts, carry it over a loopback
// transport, and parse it back out with a PromObserver attached.
func TestPipelineWiresCounters(t *testing.T) {
	before := metrics.Snap()

	a, b := transport.NewLoopbackPair()
	defer a.Close()
	defer b.Close()

	received := make(chan frame.Message, 1)
	go func() {
		var obs metrics.PromObserver
		p := frame.NewParser(obs)
		buf := make([]byte, 256)
		for {
			n, err := b.Recv(buf, time.Second)
			if err != nil {
				return
			}
			p.Feed(buf[:n], func(msg frame.Message) {
				received <- msg
			})
		}
	}()

	send := func(p []byte) error {
		_, err := a.Send(p)
		return err
	}
	sender := transport.NewAsyncSender(context.Background(), 4, send, transport.Hooks{
		OnAfter: metrics.IncFramesSent,
		OnDrop:  func() error { metrics.IncFramesDropped(); return transport.ErrAsyncSenderClosed },
	})
	defer sender.Close()

	msg := frame.NewPing(7)
	wire := make([]byte, frame.Encoded(msg))
	if _, err := frame.Build(msg, wire); err != nil {
		t.Fatalf("Build: %v", err)
	}
	metrics.IncFramesBuilt()

	if err := sender.Send(wire); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-received:
		if got.Kind != msg.Kind || got.Seq != msg.Seq {
			t.Fatalf("got %+v, want %+v", got, msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame to round-trip")
	}

	after := metrics.Snap()
	if after.FramesBuilt != before.FramesBuilt+1 {
		t.Errorf("FramesBuilt = %d, want %d", after.FramesBuilt, before.FramesBuilt+1)
	}
	if after.FramesSent != before.FramesSent+1 {
		t.Errorf("FramesSent = %d, want %d", after.FramesSent, before.FramesSent+1)
	}
	if after.FramesParsed != before.FramesParsed+1 {
		t.Errorf("FramesParsed = %d, want %d", after.FramesParsed, before.FramesParsed+1)
	}
}

func TestAsyncSenderDropIncrementsCounter(t *testing.T) {
	before := metrics.Snap()

	blocked := make(chan struct{})
	sender := transport.NewAsyncSender(context.Background(), 0, func([]byte) error {
		<-blocked
		return nil
	}, transport.Hooks{
		OnDrop: func() error { metrics.IncFramesDropped(); return nil },
	})
	defer func() {
		close(blocked)
		sender.Close()
	}()

	// With a zero-capacity channel a Send only queues if the worker is
	// already waiting to receive. Either the worker is ready for the
	// first Send and then stays blocked in send, so the second drops, or
	// it is not yet ready, so the first drops and the second is taken.
	// Exactly one of the two Sends drops.
	_ = sender.Send([]byte{0x01})
	time.Sleep(20 * time.Millisecond)
	if err := sender.Send([]byte{0x02}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	after := metrics.Snap()
	if after.FramesDropped != before.FramesDropped+1 {
		t.Errorf("FramesDropped = %d, want %d", after.FramesDropped, before.FramesDropped+1)
	}
}
