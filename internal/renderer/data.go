package renderer

// RenderParam holds the policy knobs for one Markdown render.
type RenderParam struct {
	allowRawHTML bool
}

// NewRenderParam builds a RenderParam. allowRawHTML controls whether
// literal HTML in the message passes through to the output or is skipped
// by the renderer; the decision belongs to the caller's trust policy, not
// to this package.
func NewRenderParam(allowRawHTML bool) RenderParam {
	return RenderParam{
		allowRawHTML: allowRawHTML,
	}
}

func (p RenderParam) AllowRawHTML() bool {
	return p.allowRawHTML
}
