package config

// DefaultConfig returns a Config with sensible default values. The settle
// delays match the timings the suite has always used against the
// transliteration app: it exposes no completion signal, so the waits are
// unconditional worst-case budgets.
func DefaultConfig() *Config {
	recursive := true
	headless := true
	return &Config{
		Input: InputConfig{
			Directories: []string{"testcases"},
			Include:     []string{"*.csv"},
			Exclude:     []string{"results*.csv"},
			Recursive:   &recursive,
		},
		App: AppConfig{
			BaseURL:          "http://localhost:3000",
			InputSelector:    "input",
			OutputSelector:   ".output-text",
			ClearButtonTexts: []string{"clear", "x"},
		},
		Timing: TimingConfig{
			AccuracySettleMs:   3000,
			RealTimeSettleMs:   2000,
			ClearSettleMs:      1000,
			TypeDelayMs:        100,
			StablePollMs:       250,
			PollStableOutput:   false,
			NavigationTimeoutS: 30,
		},
		Conventions: ConventionsConfig{
			RealTimePrefix:   "Pos_UI",
			ClearMarker:      "Clear",
			ClearExceptionID: "Pos_UI_0005",
		},
		Results: ResultsConfig{
			File: "results.csv",
		},
		Run: RunConfig{
			Concurrency: 4,
			Headless:    &headless,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
