package pipeline

import (
	"github.com/rohmanhakim/msgrender/internal/script"
)

// RenderedMessage is the final outcome handed back to the caller: the HTML
// to inject and the base reading direction for the containing block.
type RenderedMessage struct {
	html      string
	direction script.Script
}

func (r RenderedMessage) HTML() string {
	return r.html
}

func (r RenderedMessage) Direction() script.Script {
	return r.direction
}

// NewRenderedMessage creates a RenderedMessage for testing purposes.
// The fields remain private to maintain immutability.
func NewRenderedMessage(html string, direction script.Script) RenderedMessage {
	return RenderedMessage{
		html:      html,
		direction: direction,
	}
}

// Policy holds the per-pipeline render policy.
type Policy struct {
	// allowRawHTML is forwarded to the Markdown renderer; it is a trust
	// decision made by the embedding application, not by this pipeline.
	allowRawHTML bool
	// maxMessageLen is the size ceiling (bytes) above which the direction
	// transform is skipped. Zero means unbounded.
	maxMessageLen int
	// maxNestingDepth bounds reconstruction recursion. Zero means unbounded.
	maxNestingDepth int
}

func NewPolicy(allowRawHTML bool, maxMessageLen int, maxNestingDepth int) Policy {
	return Policy{
		allowRawHTML:    allowRawHTML,
		maxMessageLen:   maxMessageLen,
		maxNestingDepth: maxNestingDepth,
	}
}

func DefaultPolicy() Policy {
	return Policy{
		allowRawHTML:    false,
		maxMessageLen:   1 << 20,
		maxNestingDepth: 256,
	}
}

func (p Policy) AllowRawHTML() bool {
	return p.allowRawHTML
}

func (p Policy) MaxMessageLen() int {
	return p.maxMessageLen
}

func (p Policy) MaxNestingDepth() int {
	return p.maxNestingDepth
}
