// Package tabular parses the semi-structured delimited case table into
// raw records. It is deliberately not a general CSV reader: the quoting
// rules match the table format the transliteration suite has always used,
// including its quirks.
package tabular

import "strings"

// MinFields is the number of columns a row needs to become a test case:
// identifier, description, input text, expected output.
const MinFields = 4

// Parser turns raw delimited text into ordered records of trimmed fields.
type Parser interface {
	Parse(raw string) [][]string
}

// DefaultParser implements Parser with a single-pass character scan.
type DefaultParser struct{}

// NewParser creates a new DefaultParser.
func NewParser() *DefaultParser {
	return &DefaultParser{}
}

// Parse splits raw text into records. Blank lines are dropped, the first
// remaining line is treated as the header and skipped, and any record with
// fewer than MinFields fields is discarded.
func (p *DefaultParser) Parse(raw string) [][]string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) <= 1 {
		return nil
	}

	var records [][]string
	for _, line := range lines[1:] {
		fields := splitLine(line)
		if len(fields) < MinFields {
			continue
		}
		records = append(records, fields)
	}
	return records
}

// splitLine scans one line left to right. A double quote toggles quoted
// mode and is consumed; doubled quotes are NOT unescaped, only toggled.
// A delimiter outside quoted mode ends the current field. Unbalanced
// quotes swallow the rest of the line into the current field.
func splitLine(line string) []string {
	var fields []string
	var buf strings.Builder
	insideQuoted := false

	for _, r := range line {
		switch {
		case r == '"':
			insideQuoted = !insideQuoted
		case r == ',' && !insideQuoted:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(buf.String()))
	return fields
}
