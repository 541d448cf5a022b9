// Package sink persists one durable result row per executed case into the
// shared results table. The table accumulates across runs unless cleared
// externally.
package sink

import (
	"os"
	"strings"
	"sync"

	"github.com/translit-qa/translit-e2e/internal/domain"
)

// Header is the fixed results-table header. The eighth column is reserved
// for manual coverage notes and always written empty by this tool.
const Header = `TC ID,Test Case Name,Input,Expected Output,Actual Output,Status (PASS/FAIL),Remarks,What is covered by the test`

// Sink records executed cases.
type Sink interface {
	EnsureHeader() error
	Append(rec domain.ResultRecord) error
}

// CSVSink appends quote-escaped rows to a delimited UTF-8 file. All writes
// happen under one mutex so concurrent case tasks cannot interleave rows;
// header initialization additionally runs at most once per process.
type CSVSink struct {
	path string

	mu       sync.Mutex
	initOnce sync.Once
	initErr  error
}

// NewCSVSink creates a sink writing to the given file path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Path returns the results file path.
func (s *CSVSink) Path() string {
	return s.path
}

// EnsureHeader creates the results table with its header if the file does
// not exist yet. It never overwrites an existing table and is safe to call
// from every worker: the existence check and the header write run once,
// before any append can proceed.
func (s *CSVSink) EnsureHeader() error {
	s.initOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, err := os.Stat(s.path); err == nil {
			return
		} else if !os.IsNotExist(err) {
			s.initErr = domain.NewError("sink", "", "failed to stat results table", err)
			return
		}

		f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				return
			}
			s.initErr = domain.NewError("sink", "", "failed to create results table", err)
			return
		}
		defer f.Close()

		if _, err := f.WriteString(Header + "\n"); err != nil {
			s.initErr = domain.NewError("sink", "", "failed to write results header", err)
		}
	})
	return s.initErr
}

// Append serializes rec as one delimited line and appends it atomically.
// Every field is quote-wrapped with embedded quotes doubled.
func (s *CSVSink) Append(rec domain.ResultRecord) error {
	if err := s.EnsureHeader(); err != nil {
		return err
	}

	line := strings.Join([]string{
		escape(rec.CaseID),
		escape(rec.Description),
		escape(rec.Input),
		escape(rec.ExpectedOutput),
		escape(rec.ActualOutput),
		escape(string(rec.Status)),
		escape(rec.Remark),
		escape(""), // reserved coverage column
	}, ",") + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return domain.NewError("sink", rec.CaseID, "failed to open results table", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return domain.NewError("sink", rec.CaseID, "failed to append result row", err)
	}
	return nil
}

// escape wraps a field in quotes, doubling any embedded quote character.
func escape(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
