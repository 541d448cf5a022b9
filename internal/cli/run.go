package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/runner"
)

var (
	headed      bool
	concurrency int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute every test case against the live UI",
	Long: `Discovers case tables, classifies each case, runs its interaction
protocol in its own browser page, and appends one result row per case.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if headed {
			headless := false
			cfg.Run.Headless = &headless
		}
		if concurrency > 0 {
			cfg.Run.Concurrency = concurrency
		}

		log.Infof("Target application: %s", cfg.App.BaseURL)
		log.Infof("Results table: %s", cfg.Results.File)

		r := runner.New(cfg, log, !verbose)
		summary, err := r.Run(cmd.Context())
		if err != nil {
			return err
		}

		runner.PrintSummary(os.Stdout, summary)
		if summary.Failed > 0 || summary.Errored > 0 {
			// Per-case detail is already durable in the results table.
			return fmt.Errorf("%d of %d case(s) did not pass", summary.Failed+summary.Errored, summary.Total)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&headed, "headed", false, "run the browser with a visible window")
	runCmd.Flags().IntVar(&concurrency, "concurrency", 0, "override run.concurrency from the config")
	rootCmd.AddCommand(runCmd)
}

// loadConfig loads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
