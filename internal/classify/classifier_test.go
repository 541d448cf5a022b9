package classify_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/translit-qa/translit-e2e/internal/classify"
	"github.com/translit-qa/translit-e2e/internal/domain"
)

var _ = Describe("ConventionClassifier", func() {
	var c *classify.ConventionClassifier

	BeforeEach(func() {
		c = classify.NewClassifier()
	})

	It("should classify Neg-prefixed identifiers as Negative", func() {
		Expect(c.Classify("Neg_007")).To(Equal(domain.Negative))
	})

	It("should classify Pos_UI identifiers as UI", func() {
		Expect(c.Classify("Pos_UI_0002")).To(Equal(domain.UI))
	})

	It("should classify any identifier containing UI as UI", func() {
		Expect(c.Classify("Something_UI_x")).To(Equal(domain.UI))
	})

	It("should let the Neg prefix win over a UI substring", func() {
		// The check order is part of the contract: Neg_UI_* cases take
		// the accuracy path, not the UI path.
		Expect(c.Classify("Neg_UI_003")).To(Equal(domain.Negative))
	})

	It("should default everything else to Positive", func() {
		Expect(c.Classify("Pos_014")).To(Equal(domain.Positive))
		Expect(c.Classify("")).To(Equal(domain.Positive))
		Expect(c.Classify("random")).To(Equal(domain.Positive))
	})
})
