// Package cases builds immutable TestCase values from parsed table records.
package cases

import (
	"strings"

	"github.com/translit-qa/translit-e2e/internal/classify"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Builder converts raw records into classified test cases.
type Builder struct {
	classifier classify.Classifier
}

// NewBuilder creates a Builder using the given classifier.
func NewBuilder(c classify.Classifier) *Builder {
	return &Builder{classifier: c}
}

// Build constructs one TestCase per record. Records whose trimmed
// identifier is empty are dropped to keep the non-empty caseId invariant;
// columns beyond the fourth are ignored.
func (b *Builder) Build(records [][]string) []domain.TestCase {
	var out []domain.TestCase
	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		id := strings.TrimSpace(rec[0])
		if id == "" {
			continue
		}
		out = append(out, domain.TestCase{
			CaseID:         id,
			Description:    rec[1],
			Input:          rec[2],
			ExpectedOutput: rec[3],
			Category:       b.classifier.Classify(id),
		})
	}
	return out
}
