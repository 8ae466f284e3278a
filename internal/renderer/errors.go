package renderer

import (
	"fmt"

	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/pkg/failure"
)

type RenderErrorCause string

const (
	ErrCauseRenderPanic = "renderer panic"
)

type RenderError struct {
	Message   string
	Retryable bool
	Cause     RenderErrorCause
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("renderer error: %s", e.Cause)
}

func (e *RenderError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func (e *RenderError) IsRetryable() bool {
	return e.Retryable
}

// mapRenderErrorToMetadataCause maps renderer-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapRenderErrorToMetadataCause(err *RenderError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseRenderPanic:
		return metadata.CauseRenderFailure
	default:
		return metadata.CauseUnknown
	}
}
