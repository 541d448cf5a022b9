package domain

// Category is the behavioral category of a test case, derived from its
// identifier's naming convention.
type Category int

const (
	// Positive cases expect the transliterator to produce the exact
	// expected output for a well-formed input.
	Positive Category = iota
	// Negative cases feed malformed or adversarial input and still check
	// the rendered output against an expected value.
	Negative
	// UI cases exercise interface behavior (real-time updates, the clear
	// control) rather than transliteration accuracy.
	UI
)

// String returns the category name used in logs and the case listing.
func (c Category) String() string {
	switch c {
	case Negative:
		return "Negative"
	case UI:
		return "UI"
	default:
		return "Positive"
	}
}

// Status is the verdict of one executed case.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// TestCase is one row of the input table, immutable after construction.
type TestCase struct {
	CaseID         string
	Description    string
	Input          string // text submitted to the UI
	ExpectedOutput string // may be empty
	Category       Category
}

// CheckKind tags an Observation with the verdict policy that applies to it.
type CheckKind int

const (
	// AccuracyCheck compares observed output against the expected output.
	AccuracyCheck CheckKind = iota
	// LivenessCheck only requires that some output appeared.
	LivenessCheck
	// ClearCheck requires both the input field and the output to be empty.
	ClearCheck
)

// Observation is what an interaction strategy saw in the browser.
// InputValue is only meaningful for ClearCheck; Note carries a strategy
// remark (e.g. the clear-button fallback) that must survive into the
// recorded result.
type Observation struct {
	Kind         CheckKind
	ActualOutput string
	InputValue   string
	Note         string
}

// ResultRecord is one appended row of the results table. Created exactly
// once per executed case, never mutated.
type ResultRecord struct {
	CaseID         string
	Description    string
	Input          string
	ExpectedOutput string
	ActualOutput   string // empty means "no output observed"
	Status         Status
	Remark         string // empty allowed
}
