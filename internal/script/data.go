package script

// Script identifies the reading direction of a run of text.
// It is derived purely from code-point ranges and carries no identity.
type Script int

const (
	// LTR for Latin and every other non-Arabic script.
	LTR Script = iota
	// RTL for runs carrying Arabic-block code points.
	RTL
)

// String returns the direction as it appears in a dir attribute ("ltr" or "rtl").
func (s Script) String() string {
	if s == RTL {
		return "rtl"
	}
	return "ltr"
}

// Chunk is one maximal same-script run of a text node.
// Chunks produced from a single run are ordered: concatenating their Text
// fields reproduces the original character sequence exactly.
type Chunk struct {
	Text   string
	Script Script
}
