// Package verdict derives a pass/fail status plus a human-readable remark
// from what an interaction strategy observed. All verdict policy lives
// here so the rules are testable without a browser.
package verdict

import (
	"fmt"
	"strings"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Engine evaluates observations against the case's expectations.
type Engine struct{}

// NewEngine creates a new VerdictEngine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate returns the status and remark for one executed case.
func (e *Engine) Evaluate(tc domain.TestCase, obs domain.Observation) (domain.Status, string) {
	switch obs.Kind {
	case domain.LivenessCheck:
		return e.liveness(obs)
	case domain.ClearCheck:
		return e.clear(obs)
	default:
		return e.accuracy(tc, obs)
	}
}

// accuracy is strict, case-sensitive string equality over trimmed output.
// No fuzzy matching despite the domain's output variability; that is a
// documented limitation, not a defect.
func (e *Engine) accuracy(tc domain.TestCase, obs domain.Observation) (domain.Status, string) {
	actual := strings.TrimSpace(obs.ActualOutput)
	expected := strings.TrimSpace(tc.ExpectedOutput)
	if actual == expected {
		return domain.StatusPass, ""
	}
	if actual == "" {
		return domain.StatusFail, "No output generated"
	}
	return domain.StatusFail, "Output differs from expected"
}

// liveness only verifies that some output appeared, not that it is correct.
func (e *Engine) liveness(obs domain.Observation) (domain.Status, string) {
	if strings.TrimSpace(obs.ActualOutput) != "" {
		return domain.StatusPass, ""
	}
	return domain.StatusFail, "Real-time update failed"
}

// clear passes only when both the input field and the output are empty
// after the clear action. The strategy's note (e.g. the missing-button
// fallback) is carried into the remark either way.
func (e *Engine) clear(obs domain.Observation) (domain.Status, string) {
	if obs.InputValue == "" && obs.ActualOutput == "" {
		return domain.StatusPass, obs.Note
	}
	remark := fmt.Sprintf("Clear left input %q and output %q", obs.InputValue, obs.ActualOutput)
	if obs.Note != "" {
		remark = obs.Note + "; " + remark
	}
	return domain.StatusFail, remark
}
