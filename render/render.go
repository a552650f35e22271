// Package render converts coaching output into a display document. Pure
// formatting: inputs are never mutated.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/sagarmenon/writing-coach-agent/coach"
	"github.com/sagarmenon/writing-coach-agent/metrics"
)

// Fixed pass/fail thresholds for the metrics panel.
const (
	goodSceneRatio    = 30.0 // percent of tokens
	goodQualifierRate = 15.0 // per 500 words, at most
	goodSentenceVar   = 4.0  // stddev of sentence lengths
	goodConcreteRatio = 1.5  // concrete : abstract
	goodProperRate    = 4.0  // per 500 words
)

// Document renders the feedback body plus optional metrics and
// recommendation panels into HTML. A nil scorecard omits the metrics panel
// entirely; a nil recommendation omits its panel.
func Document(feedback string, sc *metrics.Scorecard, rec *coach.Recommendation) (string, error) {
	var md strings.Builder
	md.WriteString(feedback)

	if sc != nil {
		md.WriteString("\n\n---\n\n## The Numbers\n\n")
		for _, line := range metricsPanel(sc) {
			md.WriteString(line)
			md.WriteByte('\n')
		}
	}

	if rec != nil && rec.Title != "" {
		md.WriteString("\n\n---\n\n## Read This Next\n\n")
		fmt.Fprintf(&md, "**%s**", rec.Title)
		if rec.Author != "" {
			fmt.Fprintf(&md, " — %s", rec.Author)
		}
		md.WriteByte('\n')
		if rec.Why != "" {
			fmt.Fprintf(&md, "\n%s\n", rec.Why)
		}
		if rec.Where != "" {
			fmt.Fprintf(&md, "\nFind it: %s\n", rec.Where)
		}
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}

func metricsPanel(sc *metrics.Scorecard) []string {
	lines := []string{
		fmt.Sprintf("- word count: %d", sc.WordCount),
		panelLine("scene ratio", fmt.Sprintf("%.1f%%", sc.SceneRatioPct),
			sc.SceneRatioPct >= goodSceneRatio, fmt.Sprintf("target ≥ %.0f%%", goodSceneRatio)),
		panelLine("qualifier density", fmt.Sprintf("%.1f per 500 words", sc.QualifierPer500),
			sc.QualifierPer500 <= goodQualifierRate, fmt.Sprintf("target ≤ %.0f", goodQualifierRate)),
		panelLine("sentence variety", fmt.Sprintf("%.2f stddev", sc.SentenceStdDev),
			sc.SentenceStdDev >= goodSentenceVar, fmt.Sprintf("target ≥ %.0f", goodSentenceVar)),
		panelLine("concrete/abstract", fmt.Sprintf("%.2f", sc.ConcreteAbstractRatio),
			sc.ConcreteAbstractRatio >= goodConcreteRatio, fmt.Sprintf("target ≥ %.1f", goodConcreteRatio)),
		panelLine("proper-noun density", fmt.Sprintf("%.1f per 500 words", sc.ProperNounPer500),
			sc.ProperNounPer500 >= goodProperRate, fmt.Sprintf("target ≥ %.0f", goodProperRate)),
	}
	if sc.EdgesJudged {
		lines = append(lines,
			panelLine("opening", verdictWord(sc.OpeningStrong), sc.OpeningStrong, "specificity vs middle"),
			panelLine("closing", verdictWord(sc.ClosingStrong), sc.ClosingStrong, "specificity vs middle"),
		)
	}
	return lines
}

func panelLine(label, value string, pass bool, target string) string {
	mark := "needs work"
	if pass {
		mark = "good"
	}
	return fmt.Sprintf("- %s: %s — **%s** (%s)", label, value, mark, target)
}

func verdictWord(strong bool) string {
	if strong {
		return "strong"
	}
	return "weak"
}
