// Package runner wires the full pipeline: scan for case tables, parse and
// classify cases, drive the browser once per case, derive verdicts and
// persist results. Failures never cross case boundaries.
package runner

import (
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/translit-qa/translit-e2e/internal/browser"
	"github.com/translit-qa/translit-e2e/internal/cases"
	"github.com/translit-qa/translit-e2e/internal/classify"
	"github.com/translit-qa/translit-e2e/internal/config"
	"github.com/translit-qa/translit-e2e/internal/domain"
	"github.com/translit-qa/translit-e2e/internal/scanner"
	"github.com/translit-qa/translit-e2e/internal/sink"
	"github.com/translit-qa/translit-e2e/internal/strategy"
	"github.com/translit-qa/translit-e2e/internal/tabular"
	"github.com/translit-qa/translit-e2e/internal/verdict"
)

// CaseOutcome is the in-memory record of one executed case, used for the
// end-of-run summary. Errored marks cases whose interaction or persistence
// failed; those have no recorded verdict.
type CaseOutcome struct {
	Case    domain.TestCase
	Status  domain.Status
	Remark  string
	Errored bool
	Err     error
}

// Summary aggregates a whole run.
type Summary struct {
	RunID    string
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Outcomes []CaseOutcome
}

// Runner executes the suite outside of ginkgo, one errgroup task per case.
type Runner struct {
	cfg      *config.Config
	scanner  scanner.Scanner
	parser   tabular.Parser
	builder  *cases.Builder
	selector *strategy.Selector
	engine   *verdict.Engine
	sink     sink.Sink
	driver   *browser.Driver
	log      *logrus.Logger
	progress bool
}

// New creates a Runner with the default component wiring.
func New(cfg *config.Config, log *logrus.Logger, progress bool) *Runner {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	headless := true
	if cfg.Run.Headless != nil {
		headless = *cfg.Run.Headless
	}
	return &Runner{
		cfg:      cfg,
		scanner:  scanner.NewScanner(recursive),
		parser:   tabular.NewParser(),
		builder:  cases.NewBuilder(classify.NewClassifier()),
		selector: strategy.NewSelector(cfg.Conventions, cfg.Timing),
		engine:   verdict.NewEngine(),
		sink:     sink.NewCSVSink(cfg.Results.File),
		driver:   browser.NewDriver(cfg.App, cfg.Timing, headless),
		log:      log,
		progress: progress,
	}
}

// LoadCases discovers every case table and builds the read-only case set
// for this run. Malformed rows are dropped by the parser without error;
// duplicate identifiers are kept but logged, since results rows are keyed
// by identifier.
func (r *Runner) LoadCases() ([]domain.TestCase, error) {
	var files []string
	for _, dir := range r.cfg.Input.Directories {
		r.log.Debugf("Scanning directory: %s", dir)
		found, err := r.scanner.Scan(dir, r.cfg.Input.Include, r.cfg.Input.Exclude)
		if err != nil {
			r.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var all []domain.TestCase
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.NewError("parse", "", "failed to read case table "+path, err)
		}
		built := r.builder.Build(r.parser.Parse(string(content)))
		r.log.Debugf("Loaded %d case(s) from %s", len(built), path)
		for _, tc := range built {
			if seen[tc.CaseID] {
				r.log.Warnf("Duplicate case identifier %q in %s", tc.CaseID, path)
			}
			seen[tc.CaseID] = true
			all = append(all, tc)
		}
	}
	return all, nil
}

// Run executes every case and returns the run summary. Only setup
// failures (no browser, unreadable tables, sink header) abort the run;
// anything that goes wrong inside a case stays inside that case.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	testCases, err := r.LoadCases()
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: uuid.NewString(), Total: len(testCases)}
	if len(testCases) == 0 {
		r.log.Warn("No test cases found")
		return summary, nil
	}
	r.log.Infof("Run %s: executing %d case(s) with concurrency %d",
		summary.RunID, len(testCases), r.cfg.Run.Concurrency)

	// Header init is the only cross-task race; close it before any task starts.
	if err := r.sink.EnsureHeader(); err != nil {
		return nil, err
	}

	if err := r.driver.Connect(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := r.driver.Close(); err != nil {
			r.log.Warnf("Browser shutdown: %v", err)
		}
	}()

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(testCases)), "running cases")
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(r.cfg.Run.Concurrency)

	for _, tc := range testCases {
		g.Go(func() error {
			outcome := r.runCase(ctx, tc)

			mu.Lock()
			summary.Outcomes = append(summary.Outcomes, outcome)
			switch {
			case outcome.Errored:
				summary.Errored++
			case outcome.Status == domain.StatusPass:
				summary.Passed++
			default:
				summary.Failed++
			}
			mu.Unlock()

			if bar != nil {
				_ = bar.Add(1)
			}
			// Case failures are recorded, never propagated: one hung or
			// broken page must not cancel the sibling tasks.
			return nil
		})
	}
	_ = g.Wait()

	r.log.Infof("Run %s complete: %d passed, %d failed, %d errored",
		summary.RunID, summary.Passed, summary.Failed, summary.Errored)
	return summary, nil
}

// runCase executes one case on its own isolated page.
func (r *Runner) runCase(ctx context.Context, tc domain.TestCase) CaseOutcome {
	page, err := r.driver.NewPage(ctx, r.cfg.App.BaseURL)
	if err != nil {
		r.log.Warnf("%s: %v", tc.CaseID, err)
		return CaseOutcome{Case: tc, Errored: true, Err: err}
	}
	defer func() {
		if err := page.Close(); err != nil {
			r.log.Debugf("%s: page close: %v", tc.CaseID, err)
		}
	}()

	strat := r.selector.ForCase(tc)
	r.log.Debugf("%s: category=%s strategy=%s", tc.CaseID, tc.Category, strat.Name())

	obs, err := strat.Run(ctx, page, tc)
	if err != nil {
		r.log.Warnf("%s: interaction failed: %v", tc.CaseID, err)
		return CaseOutcome{Case: tc, Errored: true, Err: err}
	}

	status, remark := r.engine.Evaluate(tc, obs)
	rec := domain.ResultRecord{
		CaseID:         tc.CaseID,
		Description:    tc.Description,
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
		ActualOutput:   obs.ActualOutput,
		Status:         status,
		Remark:         remark,
	}
	if err := r.sink.Append(rec); err != nil {
		r.log.Errorf("%s: %v", tc.CaseID, err)
		return CaseOutcome{Case: tc, Errored: true, Err: err}
	}

	return CaseOutcome{Case: tc, Status: status, Remark: remark}
}
