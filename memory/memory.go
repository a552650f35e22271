// Package memory renders past coaching sessions into the bounded context
// that personalizes future prompts.
package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// maxContextRecords bounds how much history a prompt ever carries.
const maxContextRecords = 4

// FirstSession is returned when there is no history at all.
const FirstSession = "No previous sessions — this is the first one."

// SessionRecord is one row of coaching history. Records are append-only and
// never mutated after creation.
type SessionRecord struct {
	Date           string
	Title          string
	WordCount      int
	Patterns       []string
	Summary        string
	Metrics        string
	Recommendation string
}

// Summarize renders the most recent records (at most four) one per line,
// preserving the order the caller supplied.
func Summarize(records []SessionRecord) string {
	if len(records) == 0 {
		return FirstSession
	}
	if len(records) > maxContextRecords {
		records = records[len(records)-maxContextRecords:]
	}
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%s] %q (%d words)", r.Date, r.Title, r.WordCount)
		if len(r.Patterns) > 0 {
			fmt.Fprintf(&sb, " — patterns: %s", strings.Join(r.Patterns, ","))
		}
		if r.Summary != "" {
			fmt.Fprintf(&sb, " — %s", r.Summary)
		}
		if r.Metrics != "" {
			fmt.Fprintf(&sb, " — metrics: %s", r.Metrics)
		}
	}
	return sb.String()
}

// Row serializes a record for the session log store.
func (r SessionRecord) Row() []string {
	return []string{
		r.Date,
		r.Title,
		strconv.Itoa(r.WordCount),
		strings.Join(r.Patterns, ","),
		r.Summary,
		r.Metrics,
		r.Recommendation,
	}
}

// FromRow rebuilds a record from a stored row. Short or malformed rows
// yield a partially filled record rather than an error.
func FromRow(row []string) SessionRecord {
	var r SessionRecord
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	r.Date = get(0)
	r.Title = get(1)
	r.WordCount, _ = strconv.Atoi(get(2))
	if p := get(3); p != "" {
		for _, code := range strings.Split(p, ",") {
			if code = strings.TrimSpace(code); code != "" {
				r.Patterns = append(r.Patterns, code)
			}
		}
	}
	r.Summary = get(4)
	r.Metrics = get(5)
	r.Recommendation = get(6)
	return r
}
