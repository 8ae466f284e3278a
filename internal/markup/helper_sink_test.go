package markup_test

import (
	"time"

	"github.com/rohmanhakim/msgrender/internal/metadata"
)

// mockSink is a test double for metadata.Sink
type mockSink struct {
	renderEvents   []renderEvent
	fallbackEvents []fallbackEvent
	errorEvents    []errorEvent
}

type renderEvent struct {
	messageHash string
	direction   string
	duration    time.Duration
	rtlRuns     int
	ltrRuns     int
	cacheHit    bool
}

type fallbackEvent struct {
	packageName string
	action      string
	cause       metadata.ErrorCause
	details     string
	attrs       []metadata.Attribute
}

type errorEvent struct {
	observedAt  time.Time
	packageName string
	action      string
	cause       metadata.ErrorCause
	details     string
	attrs       []metadata.Attribute
}

func (m *mockSink) RecordRender(
	messageHash string,
	direction string,
	duration time.Duration,
	rtlRuns int,
	ltrRuns int,
	cacheHit bool,
) {
	m.renderEvents = append(m.renderEvents, renderEvent{
		messageHash: messageHash,
		direction:   direction,
		duration:    duration,
		rtlRuns:     rtlRuns,
		ltrRuns:     ltrRuns,
		cacheHit:    cacheHit,
	})
}

func (m *mockSink) RecordFallback(
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	m.fallbackEvents = append(m.fallbackEvents, fallbackEvent{
		packageName: packageName,
		action:      action,
		cause:       cause,
		details:     details,
		attrs:       attrs,
	})
}

func (m *mockSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	m.errorEvents = append(m.errorEvents, errorEvent{
		observedAt:  observedAt,
		packageName: packageName,
		action:      action,
		cause:       cause,
		details:     details,
		attrs:       attrs,
	})
}
