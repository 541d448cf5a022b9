// Package classify assigns each test case a behavioral category from the
// naming convention of its identifier.
package classify

import (
	"strings"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Classifier maps a case identifier to its category.
type Classifier interface {
	Classify(identifier string) domain.Category
}

// ConventionClassifier classifies by identifier prefix/substring sniffing.
// It exists behind the Classifier interface so the convention can later be
// swapped for an explicit category column without touching callers.
type ConventionClassifier struct{}

// NewClassifier creates a new ConventionClassifier.
func NewClassifier() *ConventionClassifier {
	return &ConventionClassifier{}
}

// Classify is a pure, total function over identifiers. The Neg prefix is
// checked first on purpose: "Neg_UI_003" is Negative, not UI, while
// "Pos_UI_0002" and anything else containing "UI" is UI. Reordering these
// checks changes behavior.
func (c *ConventionClassifier) Classify(identifier string) domain.Category {
	if strings.HasPrefix(identifier, "Neg") {
		return domain.Negative
	}
	if strings.HasPrefix(identifier, "Pos_UI") || strings.Contains(identifier, "UI") {
		return domain.UI
	}
	return domain.Positive
}
