/*
MessagePipeline is the sole entry point for turning a raw chat message into
displayable HTML plus a reading direction.

Fail-soft contract:
 - Render never returns an error and never panics into the caller.
 - The worst observable outcome is "RTL wrapping was skipped", never
   corrupted or missing content.
 - Guard trips, parse failures, and recovered panics all degrade to the
   untouched renderer output with direction ltr.

Two-phase design:
 - A cheap linear scan of the raw message decides whether any RTL work is
   needed at all. The majority of messages contain no RTL script and must
   not pay parse or tree-walk cost.
 - Only when the scan triggers is the rendered HTML parsed and rewrapped.

Metadata emission is observational only and MUST NOT influence render
decisions.
*/
package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rohmanhakim/msgrender/internal/cache"
	"github.com/rohmanhakim/msgrender/internal/markup"
	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/internal/renderer"
	"github.com/rohmanhakim/msgrender/internal/script"
	"github.com/rohmanhakim/msgrender/pkg/hashutil"
	"golang.org/x/net/html"
)

type MessagePipeline struct {
	metadataSink  metadata.Sink
	renderer      renderer.MarkdownRenderer
	reconstructor markup.TreeReconstructor
	// renderCache is optional; nil disables memoization.
	renderCache *cache.RenderCache
	policy      Policy
}

func NewMessagePipeline(
	metadataSink metadata.Sink,
	renderCache *cache.RenderCache,
	policy Policy,
) MessagePipeline {
	return MessagePipeline{
		metadataSink:  metadataSink,
		renderer:      renderer.NewMarkdownRenderer(metadataSink),
		reconstructor: markup.NewTreeReconstructor(metadataSink),
		renderCache:   renderCache,
		policy:        policy,
	}
}

// Render converts rawMessage to HTML and decides the base reading
// direction of its containing block.
func (p *MessagePipeline) Render(rawMessage string) RenderedMessage {
	callerMethod := "MessagePipeline.Render"
	startTime := time.Now()

	if rawMessage == "" {
		return NewRenderedMessage("", script.LTR)
	}

	key := hashutil.MessageKey(rawMessage, p.policy.allowRawHTML)

	if p.renderCache != nil {
		if entry, found := p.renderCache.Get(key); found {
			p.metadataSink.RecordRender(
				key,
				entry.Direction.String(),
				time.Since(startTime),
				0,
				0,
				true,
			)
			return NewRenderedMessage(entry.HTML, entry.Direction)
		}
	}

	htmlOut, renderErr := p.renderer.Render(
		rawMessage,
		renderer.NewRenderParam(p.policy.allowRawHTML),
	)
	if renderErr != nil {
		// The renderer already recorded the error. Degrade to escaped plain
		// text so the message content still reaches the caller.
		htmlOut = "<p>" + html.EscapeString(rawMessage) + "</p>"
		p.metadataSink.RecordFallback(
			"pipeline",
			callerMethod,
			metadata.CauseRenderFailure,
			"markdown render failed; message degraded to escaped plain text",
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrHash, key),
			},
		)
	}

	rendered := p.rewrap(rawMessage, htmlOut, callerMethod)

	if p.renderCache != nil && renderErr == nil {
		p.renderCache.Put(key, cache.Entry{
			HTML:      rendered.html,
			Direction: rendered.direction,
		})
	}

	var rtlRuns, ltrRuns int
	if rendered.direction == script.RTL {
		rtlRuns, ltrRuns = markup.CountWrappedRuns(rendered.html)
	}
	p.metadataSink.RecordRender(
		key,
		rendered.direction.String(),
		time.Since(startTime),
		rtlRuns,
		ltrRuns,
		false,
	)

	return rendered
}

// rewrap applies the direction transform to already-rendered HTML.
// Every failure path returns htmlOut untouched with direction ltr.
func (p *MessagePipeline) rewrap(
	rawMessage string,
	htmlOut string,
	callerMethod string,
) (out RenderedMessage) {
	defer func() {
		if r := recover(); r != nil {
			p.metadataSink.RecordError(
				time.Now(),
				"pipeline",
				callerMethod,
				metadata.CauseUnknown,
				fmt.Sprintf("recovered panic during rewrap: %v", r),
				[]metadata.Attribute{},
			)
			out = NewRenderedMessage(htmlOut, script.LTR)
		}
	}()

	// Size guard comes first: it is O(1) and spares even the linear
	// pre-scan on pathological inputs.
	if p.policy.maxMessageLen > 0 && len(rawMessage) > p.policy.maxMessageLen {
		p.metadataSink.RecordFallback(
			"pipeline",
			callerMethod,
			metadata.CauseInputOversize,
			"message exceeds configured maximum length; direction wrapping skipped",
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrLength, strconv.Itoa(len(rawMessage))),
			},
		)
		return NewRenderedMessage(htmlOut, script.LTR)
	}

	// Pre-scan the raw message, not the rendered HTML.
	if !script.ContainsRTL(rawMessage) {
		return NewRenderedMessage(htmlOut, script.LTR)
	}

	wrapped, err := p.reconstructor.Rewrap(
		htmlOut,
		markup.NewRewrapParam(p.policy.maxNestingDepth),
	)
	if err != nil {
		// The reconstructor already recorded the error.
		p.metadataSink.RecordFallback(
			"pipeline",
			callerMethod,
			metadata.CauseMarkupInvalid,
			"reconstruction failed; original markup returned unchanged",
			[]metadata.Attribute{},
		)
		return NewRenderedMessage(htmlOut, script.LTR)
	}

	return NewRenderedMessage(wrapped, script.RTL)
}
