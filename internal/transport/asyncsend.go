package transport

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// AsyncSender is a reusable asynchronous frame transmitter that
// funnels writes through a single goroutine (fan-in). It provides
// non-blocking enqueue semantics: if the internal buffer is full,
// Send invokes the configured OnDrop hook and returns its error
// (usually an overflow sentinel). This keeps producers from blocking
// behind a slow or wedged transport.
//
// Life-cycle:
//
//	a := NewAsyncSender(ctx, buf, sendFn, hooks)
//	a.Send(encodedFrame)
//	a.Close()
//
// After Close returns no more payloads will be processed. Callers
// should not call Send after Close.
//
// Hooks let each caller keep distinct metrics/logging without
// duplicating the goroutine and buffer plumbing.
type AsyncSender struct {
	mu     sync.Mutex
	ch     chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	send   func([]byte) error
	hooks  Hooks
	closed atomic.Bool
}

// Hooks customize AsyncSender behavior.
type Hooks struct {
	// OnError is called when send returns a non-nil error (frame not sent).
	OnError func(error)
	// OnAfter is called only after a successful send.
	OnAfter func()
	// OnDrop is called when the buffer is full; its returned error is
	// returned from Send. If nil, the overflow is silent.
	OnDrop func() error
}

// ErrAsyncSenderClosed is returned by Send once Close has been called.
var ErrAsyncSenderClosed = errors.New("async sender closed")

// NewAsyncSender constructs an AsyncSender with a buffered channel of
// size buf. send is typically a wrapper around a Transport's Send that
// discards the byte count, given an already-built frame.
func NewAsyncSender(parent context.Context, buf int, send func([]byte) error, hooks Hooks) *AsyncSender {
	ctx, cancel := context.WithCancel(parent)
	a := &AsyncSender{
		ch:     make(chan []byte, buf),
		ctx:    ctx,
		cancel: cancel,
		send:   send,
		hooks:  hooks,
	}
	a.wg.Add(1)
	go a.loop()
	return a
}

func (a *AsyncSender) loop() {
	defer a.wg.Done()
	for {
		select {
		case frame, ok := <-a.ch:
			if !ok {
				return
			}
			if err := a.send(frame); err != nil {
				if a.hooks.OnError != nil {
					a.hooks.OnError(err)
				}
				continue
			}
			if a.hooks.OnAfter != nil {
				a.hooks.OnAfter()
			}
		case <-a.ctx.Done():
			return
		}
	}
}

// Send queues an already-built frame for asynchronous transmission or
// returns the drop error if the buffer is full.
func (a *AsyncSender) Send(frame []byte) error {
	if a.closed.Load() {
		return ErrAsyncSenderClosed
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed.Load() {
		return ErrAsyncSenderClosed
	}
	select {
	case a.ch <- frame:
		return nil
	default:
		if a.hooks.OnDrop != nil {
			return a.hooks.OnDrop()
		}
		return nil
	}
}

// Close stops the worker and waits for it to exit. A send already in
// progress finishes; frames still queued in the buffer may be discarded
// without being sent.
func (a *AsyncSender) Close() {
	if a.closed.Swap(true) {
		return
	}
	a.cancel()
	a.mu.Lock()
	close(a.ch)
	a.mu.Unlock()
	a.wg.Wait()
}
