// Package strategy implements the browser interaction protocol for each
// kind of test case. Strategies only observe; deriving pass/fail from an
// Observation is the verdict engine's job.
package strategy

import (
	"context"

	"github.com/translit-qa/translit-e2e/internal/browser"
	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Strategy executes the interaction protocol for one case against a live
// page and reports what it saw.
type Strategy interface {
	Name() string
	Run(ctx context.Context, page *browser.Page, tc domain.TestCase) (domain.Observation, error)
}

// Accuracy fills the input in one shot, waits for the UI to settle, and
// captures the rendered output for exact-match checking. Used for both
// Positive and Negative cases.
type Accuracy struct {
	timing config.TimingConfig
}

// NewAccuracy creates the accuracy strategy.
func NewAccuracy(timing config.TimingConfig) *Accuracy {
	return &Accuracy{timing: timing}
}

func (s *Accuracy) Name() string { return "accuracy" }

// Run never fails past the interaction layer: once the input is submitted,
// whatever the output surface holds (possibly nothing) is the observation.
func (s *Accuracy) Run(ctx context.Context, page *browser.Page, tc domain.TestCase) (domain.Observation, error) {
	if err := page.Fill(ctx, tc.Input); err != nil {
		return domain.Observation{}, err
	}
	page.Settle(ctx, s.timing.AccuracySettle())

	out, err := page.OutputText(ctx)
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.Observation{Kind: domain.AccuracyCheck, ActualOutput: out}, nil
}

// RealTime simulates live typing character by character and checks that
// the output surface updated at all. It verifies liveness, not
// correctness.
type RealTime struct {
	timing config.TimingConfig
}

// NewRealTime creates the real-time update strategy.
func NewRealTime(timing config.TimingConfig) *RealTime {
	return &RealTime{timing: timing}
}

func (s *RealTime) Name() string { return "realtime" }

func (s *RealTime) Run(ctx context.Context, page *browser.Page, tc domain.TestCase) (domain.Observation, error) {
	if err := page.ClearInput(ctx); err != nil {
		return domain.Observation{}, err
	}
	if err := page.TypeSlowly(ctx, tc.Input, s.timing.TypeDelay()); err != nil {
		return domain.Observation{}, err
	}
	page.Settle(ctx, s.timing.RealTimeSettle())

	out, err := page.OutputText(ctx)
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.Observation{Kind: domain.LivenessCheck, ActualOutput: out}, nil
}

// Clear fills the input, activates the clear control (or falls back to
// clearing the field directly when the app has no such button), and reads
// back both surfaces.
type Clear struct {
	timing config.TimingConfig
}

// NewClear creates the clear-function strategy.
func NewClear(timing config.TimingConfig) *Clear {
	return &Clear{timing: timing}
}

func (s *Clear) Name() string { return "clear" }

// FallbackNote is recorded when no explicit clear button exists on the
// page and the strategy cleared the input surface itself.
const FallbackNote = "No explicit Clear button found, used browser clear event"

func (s *Clear) Run(ctx context.Context, page *browser.Page, tc domain.TestCase) (domain.Observation, error) {
	if err := page.Fill(ctx, tc.Input); err != nil {
		return domain.Observation{}, err
	}
	page.Settle(ctx, s.timing.ClearSettle())

	note := ""
	found, err := page.ClickClear(ctx)
	if err != nil {
		return domain.Observation{}, err
	}
	if !found {
		if err := page.ClearInput(ctx); err != nil {
			return domain.Observation{}, err
		}
		note = FallbackNote
	}
	page.Settle(ctx, s.timing.ClearSettle())

	value, err := page.InputValue(ctx)
	if err != nil {
		return domain.Observation{}, err
	}
	out, err := page.OutputText(ctx)
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.Observation{
		Kind:         domain.ClearCheck,
		ActualOutput: out,
		InputValue:   value,
		Note:         note,
	}, nil
}
