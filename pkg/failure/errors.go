package failure

type Severity int

// pipeline control flow
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

// ClassifiedError is the error contract every pipeline stage returns.
// Stages classify, the orchestrator decides; severity never triggers
// behavior inside the stage that produced it.
type ClassifiedError interface {
	error
	Severity() Severity
}
