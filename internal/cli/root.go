package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	log     *logrus.Logger
)

// rootCmd is the base command for translit-e2e.
var rootCmd = &cobra.Command{
	Use:   "translit-e2e",
	Short: "Drive the transliteration web app through its UI and record verdicts",
	Long: `translit-e2e reads a delimited table of test cases, runs each one
against the live transliteration UI in an isolated browser page, and
appends a PASS/FAIL row per case to the cumulative results table.

Everything is driven by a YAML configuration file (translit-e2e.yaml).
A .env file, when present, can override the target URL via TRANSLIT_BASE_URL.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "translit-e2e.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	log = logrus.New()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
