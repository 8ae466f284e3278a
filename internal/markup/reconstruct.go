/*
Responsibilities
- Parse rendered HTML fragments into a node tree
- Re-emit the tree with direction wrappers around text runs
- Preserve element structure, attribute order, and sibling order exactly

The reconstructor is a structural transform, not a sanitizer: it does not
validate the markup it receives, it only guarantees it never corrupts it.
Comments are dropped. Attribute values and text content are escaped on
re-emission; the parser hands back decoded values, so serializing them
verbatim would corrupt the markup.
*/
package markup

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/internal/script"
	"github.com/rohmanhakim/msgrender/pkg/failure"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type TreeReconstructor struct {
	metadataSink metadata.Sink
}

func NewTreeReconstructor(metadataSink metadata.Sink) TreeReconstructor {
	return TreeReconstructor{
		metadataSink: metadataSink,
	}
}

// Rewrap parses fragment as body content and re-emits it with every
// non-whitespace text run wrapped in a direction-tagged element.
// The input is returned untouched by the caller on any error; Rewrap
// itself never writes a partial result.
func (t *TreeReconstructor) Rewrap(
	fragment string,
	param RewrapParam,
) (string, failure.ClassifiedError) {
	rewrapped, err := rewrap(fragment, param)
	if err != nil {
		var markupError *MarkupError
		errors.As(err, &markupError)
		t.metadataSink.RecordError(
			time.Now(),
			"markup",
			"TreeReconstructor.Rewrap",
			mapMarkupErrorToMetadataCause(markupError),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrLength, strconv.Itoa(len(fragment))),
			},
		)
		return "", markupError
	}
	return rewrapped, nil
}

// rewrap is a stateless pure function from an HTML fragment to the same
// fragment with direction wrappers inserted around text.
func rewrap(fragment string, param RewrapParam) (string, *MarkupError) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(fragment) + len(fragment)/2)
	for _, n := range nodes {
		if err := reconstructNode(&sb, n, 0, param.MaxNestingDepth); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// parseFragment parses fragment in a body context, yielding the top-level
// sibling nodes without any synthetic html/head/body wrapping.
func parseFragment(fragment string) ([]*html.Node, *MarkupError) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, &MarkupError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseUnparseable,
		}
	}
	return nodes, nil
}

// reconstructNode re-emits one node and its subtree in order.
// Recursion depth equals input nesting depth; the guard turns pathological
// nesting into a classified error instead of exhausting the stack.
func reconstructNode(sb *strings.Builder, n *html.Node, depth int, maxDepth int) *MarkupError {
	if n == nil {
		return &MarkupError{
			Message:   "encountered nil node during reconstruction",
			Retryable: false,
			Cause:     ErrCauseNilNode,
		}
	}
	if maxDepth > 0 && depth > maxDepth {
		return &MarkupError{
			Message:   "element nesting exceeds configured maximum of " + strconv.Itoa(maxDepth),
			Retryable: false,
			Cause:     ErrCauseDepthExceeded,
		}
	}

	switch n.Type {
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		sb.WriteByte('<')
		sb.WriteString(tag)
		for _, attr := range n.Attr {
			sb.WriteByte(' ')
			sb.WriteString(attr.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(attr.Val))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if voidElements[tag] {
			return nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := reconstructNode(sb, c, depth+1, maxDepth); err != nil {
				return err
			}
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')

	case html.TextNode:
		writeSegmented(sb, n.Data)

	case html.CommentNode, html.DoctypeNode:
		// Dropped: comments carry no visible content and doctypes have no
		// business inside a message fragment.
	}

	return nil
}

// writeSegmented splits a text run into same-script chunks and emits each
// one. Whitespace-only chunks pass through raw so inter-element spacing
// survives; everything else gets a direction wrapper.
func writeSegmented(sb *strings.Builder, text string) {
	for _, chunk := range script.Segment(text) {
		if chunk.Text == "" {
			continue
		}
		if strings.TrimSpace(chunk.Text) == "" {
			sb.WriteString(chunk.Text)
			continue
		}
		sb.WriteByte('<')
		sb.WriteString(wrapperTag)
		sb.WriteString(` dir="`)
		sb.WriteString(chunk.Script.String())
		sb.WriteString(`" style="`)
		sb.WriteString(wrapperStyle)
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(chunk.Text))
		sb.WriteString("</")
		sb.WriteString(wrapperTag)
		sb.WriteByte('>')
	}
}
