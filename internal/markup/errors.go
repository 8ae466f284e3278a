package markup

import (
	"fmt"

	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/pkg/failure"
)

type MarkupErrorCause string

const (
	ErrCauseUnparseable   = "unparseable fragment"
	ErrCauseDepthExceeded = "nesting depth exceeded"
	ErrCauseNilNode       = "nil node"
)

type MarkupError struct {
	Message   string
	Retryable bool
	Cause     MarkupErrorCause
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("markup error: %s", e.Cause)
}

func (e *MarkupError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func (e *MarkupError) IsRetryable() bool {
	return e.Retryable
}

// mapMarkupErrorToMetadataCause maps markup-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapMarkupErrorToMetadataCause(err *MarkupError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseUnparseable:
		return metadata.CauseMarkupInvalid
	case ErrCauseDepthExceeded:
		return metadata.CauseInputOversize
	default:
		return metadata.CauseUnknown
	}
}
