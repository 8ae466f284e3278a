/*
Responsibilities
- Convert raw Markdown messages to HTML
- Enforce the raw-HTML passthrough policy

The renderer is consumed as a black box by the rest of the pipeline: one
string in, one string out. It never inspects scripts or directions; that
is downstream work.
*/
package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/pkg/failure"
)

type MarkdownRenderer struct {
	metadataSink metadata.Sink
}

func NewMarkdownRenderer(metadataSink metadata.Sink) MarkdownRenderer {
	return MarkdownRenderer{
		metadataSink: metadataSink,
	}
}

func (m *MarkdownRenderer) Render(
	text string,
	param RenderParam,
) (string, failure.ClassifiedError) {
	rendered, err := render(text, param.allowRawHTML)
	if err != nil {
		var renderError *RenderError
		errors.As(err, &renderError)
		m.metadataSink.RecordError(
			time.Now(),
			"renderer",
			"MarkdownRenderer.Render",
			mapRenderErrorToMetadataCause(renderError),
			err.Error(),
			[]metadata.Attribute{},
		)
		return "", renderError
	}
	return rendered, nil
}

// render is a stateless pure function from Markdown text to HTML.
// gomarkdown does not return errors, but a panic on adversarial input must
// not escape to the caller, so it is recovered and classified here.
func render(text string, allowRawHTML bool) (out string, rerr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			rerr = &RenderError{
				Message:   fmt.Sprintf("markdown renderer panicked: %v", r),
				Retryable: false,
				Cause:     ErrCauseRenderPanic,
			}
		}
	}()

	p := parser.NewWithExtensions(parser.CommonExtensions)

	flags := mdhtml.CommonFlags
	if !allowRawHTML {
		flags |= mdhtml.SkipHTML
	}
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: flags,
	})

	doc := p.Parse([]byte(text))
	return string(markdown.Render(doc, r)), nil
}
