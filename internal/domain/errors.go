package domain

import "fmt"

// RunError is the base error type with pipeline context.
type RunError struct {
	Phase   string // "config", "scan", "parse", "browser", "interact", "sink"
	CaseID  string
	Message string
	Cause   error
}

func (e *RunError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.CaseID != "" {
		s += fmt.Sprintf(" %s", e.CaseID)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *RunError) Unwrap() error {
	return e.Cause
}

// NewError creates a new RunError.
func NewError(phase, caseID, message string, cause error) *RunError {
	return &RunError{
		Phase:   phase,
		CaseID:  caseID,
		Message: message,
		Cause:   cause,
	}
}
