package strategy

import (
	"strings"

	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Selector routes a classified case to its interaction strategy.
type Selector struct {
	conv     config.ConventionsConfig
	accuracy Strategy
	realTime Strategy
	clear    Strategy
}

// NewSelector creates a Selector over the three strategy variants.
func NewSelector(conv config.ConventionsConfig, timing config.TimingConfig) *Selector {
	return &Selector{
		conv:     conv,
		accuracy: NewAccuracy(timing),
		realTime: NewRealTime(timing),
		clear:    NewClear(timing),
	}
}

// ForCase picks the strategy for one case. Positive and Negative cases
// always take the accuracy path. Within the UI category the clear
// convention (or the one designated exception case) wins over the
// real-time prefix; a UI case matching neither convention falls back to
// the accuracy check.
func (s *Selector) ForCase(tc domain.TestCase) Strategy {
	if tc.Category != domain.UI {
		return s.accuracy
	}
	if strings.Contains(tc.CaseID, s.conv.ClearMarker) || tc.CaseID == s.conv.ClearExceptionID {
		return s.clear
	}
	if strings.HasPrefix(tc.CaseID, s.conv.RealTimePrefix) {
		return s.realTime
	}
	return s.accuracy
}
