package cli

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/translit-qa/translit-e2e/internal/runner"
	"github.com/translit-qa/translit-e2e/internal/strategy"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List parsed test cases without touching the browser",
	Long: `Parses and classifies every discovered case table and prints the
resulting case set with each case's category and interaction strategy.
Useful for checking a table before burning time on a full run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		r := runner.New(cfg, log, false)
		testCases, err := r.LoadCases()
		if err != nil {
			return err
		}
		if len(testCases) == 0 {
			log.Warn("No test cases found")
			return nil
		}

		selector := strategy.NewSelector(cfg.Conventions, cfg.Timing)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Case", "Category", "Strategy", "Description"})
		table.SetAutoWrapText(false)
		for _, tc := range testCases {
			table.Append([]string{
				tc.CaseID,
				tc.Category.String(),
				selector.ForCase(tc).Name(),
				tc.Description,
			})
		}
		table.Render()

		log.Infof("%d case(s) parsed", len(testCases))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}
