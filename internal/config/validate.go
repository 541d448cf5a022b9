package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if cfg.App.BaseURL == "" {
		errs = append(errs, "app.base_url must not be empty")
	} else if u, err := url.Parse(cfg.App.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("app.base_url is not a valid absolute URL (got %q)", cfg.App.BaseURL))
	}
	if cfg.App.InputSelector == "" {
		errs = append(errs, "app.input_selector must not be empty")
	}
	if cfg.App.OutputSelector == "" {
		errs = append(errs, "app.output_selector must not be empty")
	}

	if cfg.Timing.AccuracySettleMs < 0 || cfg.Timing.RealTimeSettleMs < 0 || cfg.Timing.ClearSettleMs < 0 {
		errs = append(errs, "timing settle delays must not be negative")
	}
	if cfg.Timing.TypeDelayMs < 0 {
		errs = append(errs, "timing.type_delay_ms must not be negative")
	}
	if cfg.Timing.PollStableOutput && cfg.Timing.StablePollMs <= 0 {
		errs = append(errs, "timing.stable_poll_ms must be positive when poll_stable_output is enabled")
	}

	if cfg.Conventions.RealTimePrefix == "" {
		errs = append(errs, "ui_conventions.realtime_prefix must not be empty")
	}
	if cfg.Conventions.ClearMarker == "" {
		errs = append(errs, "ui_conventions.clear_marker must not be empty")
	}

	if cfg.Results.File == "" {
		errs = append(errs, "results.file must not be empty")
	}

	if cfg.Run.Concurrency < 1 {
		errs = append(errs, "run.concurrency must be at least 1")
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", strings.Join(errs, "; "), nil)
	}
	return nil
}
