package metadata

import (
	"time"
)

type RenderEvent struct {
	messageHash string
	direction   string
	duration    time.Duration
	rtlRuns     int
	ltrRuns     int
	cacheHit    bool
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, metrics, reporting).

	Rules:
	 - ErrorCause is for observability only.
	 - It must never be used to derive fallback, continuation, or abort decisions.
	 - ErrorCause MUST NOT influence control flow.
	 - ErrorCause values MUST have stable, package-agnostic semantics.
	 - Pipeline packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

Meaning:
  - The failure does not map cleanly to any known category.
  - Used as a safe fallback, including recovered panics.

# CauseMarkupInvalid

Meaning:
  - Rendered markup could not be parsed or traversed.

Examples:
  - Fragment parse failure
  - A node shape the reconstructor cannot re-emit

# CauseInputOversize

Meaning:
  - Input exceeded a configured size or nesting ceiling.

Examples:
  - Message length above the configured maximum
  - Element nesting deeper than the recursion guard permits

# CauseRenderFailure

Meaning:
  - The Markdown renderer collaborator failed to produce HTML.

# CauseInvariantViolation

Meaning:
  - A system-level invariant was violated.

Examples:
  - Reconstructed output losing or duplicating text content
  - Internal consistency checks failing
*/
const (
	CauseUnknown ErrorCause = iota
	CauseMarkupInvalid
	CauseInputOversize
	CauseRenderFailure
	CauseInvariantViolation
)

type ErrorRecord struct {
	packageName string
	action      string
	cause       ErrorCause
	errorString string
	observedAt  time.Time
	attrs       []Attribute
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrTime      AttributeKey = "time"
	AttrDirection AttributeKey = "direction"
	AttrLength    AttributeKey = "length"
	AttrDepth     AttributeKey = "depth"
	AttrField     AttributeKey = "field"
	AttrHash      AttributeKey = "hash"
	AttrMessage   AttributeKey = "message"
)
