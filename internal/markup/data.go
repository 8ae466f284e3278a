package markup

// wrapperTag is the element inserted around every non-whitespace text
// chunk. The dir attribute carries the chunk's script direction and the
// style hint keeps the wrapped run flowing as its own inline block so
// neighbouring runs of the opposite direction do not reorder visually.
const (
	wrapperTag   = "span"
	wrapperStyle = "display: inline-block"
)

// voidElements never take a close tag. Emitting one (e.g. </br>) would
// change the parsed structure and break the round-trip invariant.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RewrapParam holds configuration parameters for tree reconstruction.
// This allows external configuration without hardcoding magic values.
type RewrapParam struct {
	// MaxNestingDepth is the deepest element nesting the reconstructor will
	// recurse into. Zero means unbounded.
	MaxNestingDepth int
}

func NewRewrapParam(maxNestingDepth int) RewrapParam {
	return RewrapParam{
		MaxNestingDepth: maxNestingDepth,
	}
}

func DefaultRewrapParam() RewrapParam {
	return RewrapParam{
		MaxNestingDepth: 256,
	}
}
