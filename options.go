package bitvec

import (
	"golang.org/x/time/rate"

	"github.com/hupe1980/bitvec/snapshot"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	compression      snapshot.Compression
	limiter          *rate.Limiter
	concurrency      int
	prefix           string
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      snapshot.CompressionLZ4,
		concurrency:      8,
	}
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCompression selects the snapshot payload compression.
// Default: snapshot.CompressionLZ4.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithRateLimit throttles blob store requests to r per second with the given
// burst. Each Save, Load and Delete takes one token.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(o *options) {
		o.limiter = rate.NewLimiter(r, burst)
	}
}

// WithConcurrency bounds the number of parallel fetches in LoadAll.
// Values below 1 mean unbounded.
// Default: 8.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithPrefix places every snapshot below prefix in the blob store.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}
