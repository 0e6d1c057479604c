package frame

import "github.com/ErselSeyit/devproto/internal/logging"

// LoggingObserver reports parser events through the package-wide
// structured logger. It is meant for development and diagnostics; the
// per-event hooks are cheap but not free, so production pipelines that
// care about the hot path should prefer metrics.PromObserver or a no-op.
type LoggingObserver struct{}

func (LoggingObserver) OnFrame(msg Message) {
	logging.L().Debug("frame parsed", "kind", msg.Kind, "seq", msg.Seq, "payload_len", len(msg.Payload))
}

func (LoggingObserver) OnCRCError() {
	logging.L().Warn("frame crc mismatch")
}

func (LoggingObserver) OnSyncError() {
	logging.L().Debug("frame sync byte discarded")
}

func (LoggingObserver) OnOverflow() {
	logging.L().Warn("frame payload overflow")
}
