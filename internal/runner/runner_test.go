package runner_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
	"github.com/translit-qa/translit-e2e/internal/runner"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	return log
}

var _ = Describe("Runner", func() {
	Describe("LoadCases", func() {
		var cfg *config.Config

		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			table := "TC ID,Test Case Name,Input,Expected Output\n" +
				"Pos_001,simple,mama gedara yanawa,මම ගෙදර යනවා\n" +
				"Neg_007,numbers,123,123\n" +
				"Pos_UI_0002,live typing,mama,මම\n" +
				"broken,row,short\n"
			Expect(os.WriteFile(filepath.Join(dir, "cases.csv"), []byte(table), 0644)).To(Succeed())

			cfg = config.DefaultConfig()
			cfg.Input.Directories = []string{dir}
		})

		It("should build the classified case set from discovered tables", func() {
			r := runner.New(cfg, quietLogger(), false)
			cases, err := r.LoadCases()
			Expect(err).ToNot(HaveOccurred())
			Expect(cases).To(HaveLen(3))
			Expect(cases[0].Category).To(Equal(domain.Positive))
			Expect(cases[1].Category).To(Equal(domain.Negative))
			Expect(cases[2].Category).To(Equal(domain.UI))
		})

		It("should return no cases for an empty directory", func() {
			cfg.Input.Directories = []string{GinkgoT().TempDir()}
			r := runner.New(cfg, quietLogger(), false)
			cases, err := r.LoadCases()
			Expect(err).ToNot(HaveOccurred())
			Expect(cases).To(BeEmpty())
		})

		It("should skip unscannable directories instead of failing", func() {
			cfg.Input.Directories = append(cfg.Input.Directories, filepath.Join(GinkgoT().TempDir(), "missing"))
			r := runner.New(cfg, quietLogger(), false)
			cases, err := r.LoadCases()
			Expect(err).ToNot(HaveOccurred())
			Expect(cases).To(HaveLen(3))
		})
	})

	Describe("PrintSummary", func() {
		It("should render totals and per-case rows", func() {
			s := &runner.Summary{
				RunID:  "test-run",
				Total:  3,
				Passed: 1,
				Failed: 1, Errored: 1,
				Outcomes: []runner.CaseOutcome{
					{Case: domain.TestCase{CaseID: "Pos_002"}, Status: domain.StatusFail, Remark: "Output differs from expected"},
					{Case: domain.TestCase{CaseID: "Pos_001"}, Status: domain.StatusPass},
					{Case: domain.TestCase{CaseID: "Pos_003"}, Errored: true, Err: errors.New("page failed to load")},
				},
			}

			var buf bytes.Buffer
			runner.PrintSummary(&buf, s)
			out := buf.String()

			Expect(out).To(ContainSubstring("Pos_001"))
			Expect(out).To(ContainSubstring("Output differs from expected"))
			Expect(out).To(ContainSubstring("page failed to load"))
			Expect(out).To(ContainSubstring("1 passed"))
			Expect(out).To(ContainSubstring("1 failed"))
			Expect(out).To(ContainSubstring("1 errored"))
			// Outcomes arrive in completion order; the table is sorted.
			Expect(out).To(MatchRegexp(`(?s)Pos_001.*Pos_002.*Pos_003`))
		})
	})
})
