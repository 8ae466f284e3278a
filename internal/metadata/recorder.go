package metadata

import (
	"time"

	"go.uber.org/zap"
)

/*
Metadata Collected
- Render timestamps and durations
- Message content hashes
- Reading direction decisions
- Wrapped-run counts
- Fallback occurrences

Structured logging is preferred.

Allowed:
- Primitive values
- Timestamps
- Hashes
- Durations
- Directions

Determinism guarantees:
 - Metadata does not affect control flow
 - Output is stable given identical inputs

Metadata is write-only.
No component may read metadata to influence render decisions.
*/

/*
Sink captures structured render events.
It must not:
- perform I/O decisions
- affect control flow
Ordering guarantees:
- Events are recorded synchronously in the order a single caller emits them.
- No global ordering across concurrent renders is guaranteed.
- Ordering is provided for debuggability, not causality.
*/
type Sink interface {
	RecordRender(
		messageHash string,
		direction string,
		duration time.Duration,
		rtlRuns int,
		ltrRuns int,
		cacheHit bool,
	)

	// RecordFallback captures a fail-soft downgrade: the caller received the
	// untouched renderer output instead of direction-wrapped markup.
	RecordFallback(
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)

	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
}

// ZapRecorder is the production Sink. It translates render events into
// structured zap entries and nothing else.
type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(logger *zap.Logger) *ZapRecorder {
	return &ZapRecorder{
		logger: logger,
	}
}

func (r *ZapRecorder) RecordRender(
	messageHash string,
	direction string,
	duration time.Duration,
	rtlRuns int,
	ltrRuns int,
	cacheHit bool,
) {
	r.logger.Info("render",
		zap.String("hash", messageHash),
		zap.String("direction", direction),
		zap.Duration("duration", duration),
		zap.Int("rtl_runs", rtlRuns),
		zap.Int("ltr_runs", ltrRuns),
		zap.Bool("cache_hit", cacheHit),
	)
}

func (r *ZapRecorder) RecordFallback(
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	r.logger.Warn("fallback",
		append(attrFields(attrs),
			zap.String("package", packageName),
			zap.String("action", action),
			zap.Int("cause", int(cause)),
			zap.String("details", details),
		)...,
	)
}

func (r *ZapRecorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	r.logger.Error("error",
		append(attrFields(attrs),
			zap.Time("observed_at", observedAt),
			zap.String("package", packageName),
			zap.String("action", action),
			zap.Int("cause", int(cause)),
			zap.String("details", details),
		)...,
	)
}

func attrFields(attrs []Attribute) []zap.Field {
	fields := make([]zap.Field, 0, len(attrs)+5)
	for _, a := range attrs {
		fields = append(fields, zap.String(string(a.Key), a.Value))
	}
	return fields
}

// NoopSink implements Sink but does nothing.
// Callers (or tests) decide whether to inject ZapRecorder or NoopSink.
// Purpose is to keep metadata orthogonal.
type NoopSink struct{}

func (n *NoopSink) RecordRender(
	messageHash string,
	direction string,
	duration time.Duration,
	rtlRuns int,
	ltrRuns int,
	cacheHit bool,
) {
}

func (n *NoopSink) RecordFallback(
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}
