package runner

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// PrintSummary renders the per-case outcomes and the run totals. The
// durable results table has the full detail; this is the console view.
func PrintSummary(w io.Writer, s *Summary) {
	outcomes := make([]CaseOutcome, len(s.Outcomes))
	copy(outcomes, s.Outcomes)
	// Tasks complete in any order; sort for a stable console view.
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Case.CaseID < outcomes[j].Case.CaseID
	})

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	errored := color.New(color.FgYellow).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Case", "Category", "Status", "Remark"})
	table.SetAutoWrapText(false)

	for _, o := range outcomes {
		status := pass(string(domain.StatusPass))
		remark := o.Remark
		switch {
		case o.Errored:
			status = errored("ERROR")
			remark = o.Err.Error()
		case o.Status == domain.StatusFail:
			status = fail(string(domain.StatusFail))
		}
		table.Append([]string{o.Case.CaseID, o.Case.Category.String(), status, remark})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d case(s): %s, %s, %s\n",
		s.Total,
		pass(fmt.Sprintf("%d passed", s.Passed)),
		fail(fmt.Sprintf("%d failed", s.Failed)),
		errored(fmt.Sprintf("%d errored", s.Errored)),
	)
}
