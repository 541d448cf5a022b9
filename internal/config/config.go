package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	App         AppConfig         `yaml:"app"`
	Timing      TimingConfig      `yaml:"timing"`
	Conventions ConventionsConfig `yaml:"ui_conventions"`
	Results     ResultsConfig     `yaml:"results"`
	Run         RunConfig         `yaml:"run"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// InputConfig describes where case tables live.
type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

// AppConfig describes the UI surfaces of the transliteration app.
type AppConfig struct {
	BaseURL          string   `yaml:"base_url"`
	InputSelector    string   `yaml:"input_selector"`  // first match is used
	OutputSelector   string   `yaml:"output_selector"` // last match is used
	ClearButtonTexts []string `yaml:"clear_button_texts"`
}

// TimingConfig holds the settle delays and typing cadence. The settle
// delays are worst-case budgets: when stable-output polling is enabled the
// runner returns as soon as two consecutive output reads agree.
type TimingConfig struct {
	AccuracySettleMs   int  `yaml:"accuracy_settle_ms"`
	RealTimeSettleMs   int  `yaml:"realtime_settle_ms"`
	ClearSettleMs      int  `yaml:"clear_settle_ms"`
	TypeDelayMs        int  `yaml:"type_delay_ms"`
	StablePollMs       int  `yaml:"stable_poll_ms"`
	PollStableOutput   bool `yaml:"poll_stable_output"`
	NavigationTimeoutS int  `yaml:"navigation_timeout_s"`
}

// ConventionsConfig names the identifier conventions that route UI cases
// to their strategy variant.
type ConventionsConfig struct {
	RealTimePrefix   string `yaml:"realtime_prefix"`
	ClearMarker      string `yaml:"clear_marker"`
	ClearExceptionID string `yaml:"clear_exception_id"`
}

// ResultsConfig locates the results table.
type ResultsConfig struct {
	File string `yaml:"file"`
}

// RunConfig controls execution.
type RunConfig struct {
	Concurrency int  `yaml:"concurrency"`
	Headless    *bool `yaml:"headless"`
}

// LoggingConfig mirrors logrus levels.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AccuracySettle returns the accuracy settle budget as a duration.
func (t TimingConfig) AccuracySettle() time.Duration {
	return time.Duration(t.AccuracySettleMs) * time.Millisecond
}

// RealTimeSettle returns the real-time settle budget as a duration.
func (t TimingConfig) RealTimeSettle() time.Duration {
	return time.Duration(t.RealTimeSettleMs) * time.Millisecond
}

// ClearSettle returns the clear settle budget as a duration.
func (t TimingConfig) ClearSettle() time.Duration {
	return time.Duration(t.ClearSettleMs) * time.Millisecond
}

// TypeDelay returns the inter-character typing delay as a duration.
func (t TimingConfig) TypeDelay() time.Duration {
	return time.Duration(t.TypeDelayMs) * time.Millisecond
}

// StablePoll returns the stable-output poll interval as a duration.
func (t TimingConfig) StablePoll() time.Duration {
	return time.Duration(t.StablePollMs) * time.Millisecond
}

// NavigationTimeout returns the per-navigation timeout as a duration.
func (t TimingConfig) NavigationTimeout() time.Duration {
	return time.Duration(t.NavigationTimeoutS) * time.Second
}

// Load reads a YAML configuration file and returns a Config with defaults
// applied for anything the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", "", "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", "", "failed to parse config file", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays supported environment variables over the file values.
// TRANSLIT_BASE_URL wins over app.base_url so CI can point the same suite
// at a different deployment.
func (c *Config) applyEnv() {
	if url := os.Getenv("TRANSLIT_BASE_URL"); url != "" {
		c.App.BaseURL = url
	}
	if file := os.Getenv("TRANSLIT_RESULTS_FILE"); file != "" {
		c.Results.File = file
	}
}
