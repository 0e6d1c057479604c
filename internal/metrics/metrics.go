package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/ErselSeyit/devproto/internal/frame"
	"github.com/ErselSeyit/devproto/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters
var (
	FramesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_frames_parsed_total",
		Help: "Total frames successfully parsed and CRC-verified.",
	})
	CRCErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_crc_errors_total",
		Help: "Total frames discarded due to a CRC mismatch.",
	})
	SyncErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_sync_errors_total",
		Help: "Total bytes discarded while resynchronizing on the frame header.",
	})
	OverflowErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_overflow_errors_total",
		Help: "Total frames rejected for declaring or accumulating an oversize payload.",
	})
	FramesBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_frames_built_total",
		Help: "Total frames serialized by the builder.",
	})
	FramesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_frames_sent_total",
		Help: "Total frames written to a transport.",
	})
	FramesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devproto_frames_dropped_total",
		Help: "Total frames dropped by an AsyncSender due to a full buffer.",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "errors_total",
		Help: "Error counters by subsystem.",
	}, []string{"where"})

	readinessMu sync.RWMutex
	readinessFn func() bool
)

// Error label constants (stable label values to bound cardinality).
const (
	ErrTransportRead  = "transport_read"
	ErrTransportWrite = "transport_write"
	ErrFrameCRC       = "frame_crc"
	ErrFrameOverflow  = "frame_overflow"
	ErrFrameSync      = "frame_sync"
)

// StartHTTP serves Prometheus metrics at /metrics and readiness at
// /ready on addr.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters for cheap in-process inspection (avoids
// scraping Prometheus from within the same process).
var (
	localFramesParsed   uint64
	localCRCErrors      uint64
	localSyncErrors     uint64
	localOverflowErrors uint64
	localFramesBuilt    uint64
	localFramesSent     uint64
	localFramesDropped  uint64
	localErrors         uint64
)

// Snapshot is a cheap copy of the local counters.
type Snapshot struct {
	FramesParsed   uint64
	CRCErrors      uint64
	SyncErrors     uint64
	OverflowErrors uint64
	FramesBuilt    uint64
	FramesSent     uint64
	FramesDropped  uint64
	Errors         uint64 // sum across error labels
}

func Snap() Snapshot {
	return Snapshot{
		FramesParsed:   atomic.LoadUint64(&localFramesParsed),
		CRCErrors:      atomic.LoadUint64(&localCRCErrors),
		SyncErrors:     atomic.LoadUint64(&localSyncErrors),
		OverflowErrors: atomic.LoadUint64(&localOverflowErrors),
		FramesBuilt:    atomic.LoadUint64(&localFramesBuilt),
		FramesSent:     atomic.LoadUint64(&localFramesSent),
		FramesDropped:  atomic.LoadUint64(&localFramesDropped),
		Errors:         atomic.LoadUint64(&localErrors),
	}
}

func IncFramesBuilt() {
	FramesBuilt.Inc()
	atomic.AddUint64(&localFramesBuilt, 1)
}

func IncFramesSent() {
	FramesSent.Inc()
	atomic.AddUint64(&localFramesSent, 1)
}

func IncFramesDropped() {
	FramesDropped.Inc()
	atomic.AddUint64(&localFramesDropped, 1)
}

func IncError(label string) {
	Errors.WithLabelValues(label).Inc()
	atomic.AddUint64(&localErrors, 1)
}

// InitBuildInfo sets the build info gauge and pre-registers error label
// series so the first error of each kind doesn't pay registration
// latency.
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
	for _, lbl := range []string{ErrTransportRead, ErrTransportWrite, ErrFrameCRC, ErrFrameOverflow, ErrFrameSync} {
		Errors.WithLabelValues(lbl).Add(0)
	}
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil { // not set yet: treat as ready so /ready doesn't flap at startup
		return true
	}
	return fn()
}

// Ready is a concise alias used at call sites.
func Ready() bool { return IsReady() }

// PromObserver implements frame.Observer by feeding the parser's
// events into the package counters above.
type PromObserver struct{}

func (PromObserver) OnFrame(frame.Message) {
	FramesParsed.Inc()
	atomic.AddUint64(&localFramesParsed, 1)
}

func (PromObserver) OnCRCError() {
	CRCErrors.Inc()
	atomic.AddUint64(&localCRCErrors, 1)
	IncError(ErrFrameCRC)
}

func (PromObserver) OnSyncError() {
	SyncErrors.Inc()
	atomic.AddUint64(&localSyncErrors, 1)
	IncError(ErrFrameSync)
}

func (PromObserver) OnOverflow() {
	OverflowErrors.Inc()
	atomic.AddUint64(&localOverflowErrors, 1)
	IncError(ErrFrameOverflow)
}

var _ frame.Observer = PromObserver{}
