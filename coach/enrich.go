package coach

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sagarmenon/writing-coach-agent/memory"
	"github.com/sagarmenon/writing-coach-agent/store"
)

// Recommendation is the enrichment result: one piece worth studying.
type Recommendation struct {
	Title  string
	Author string
	Why    string
	Where  string
}

// DraftMeta identifies the draft a verdict belongs to.
type DraftMeta struct {
	Date  string
	Title string
}

// Line prefixes of the recommendation reply protocol.
const (
	recTitle  = "TITLE:"
	recAuthor = "AUTHOR:"
	recWhy    = "WHY:"
	recWhere  = "WHERE:"
)

// problemStatements maps weakness codes to the reading need they create.
var problemStatements = map[string]string{
	"W1": "writing endings that resonate instead of recapping the argument",
	"W2": "developing a thesis into a full essay with body and evidence",
	"W3": "scene-building and specificity — inhabiting a moment instead of summarizing it",
	"W4": "knowing when a conceit can carry a whole essay",
	"W5": "building arguments from lived observation rather than citations",
	"W6": "sustaining a regular publishing practice",
	"W7": "writing with conviction, without reflexive disclaimers",
}

const fallbackProblem = "scene-building and specificity — inhabiting a moment instead of summarizing it"

func problemStatement(code string) string {
	if s, ok := problemStatements[code]; ok {
		return s
	}
	return fallbackProblem
}

// ParseRecommendation reads the four-field reply defensively: any field may
// be absent, and a reply with no title means no recommendation was found.
func ParseRecommendation(reply string) *Recommendation {
	var rec Recommendation
	for _, line := range strings.Split(reply, "\n") {
		label := strings.TrimLeft(strings.TrimSpace(line), "#*- ")
		switch {
		case strings.HasPrefix(label, recTitle):
			rec.Title = trimValue(strings.TrimPrefix(label, recTitle))
		case strings.HasPrefix(label, recAuthor):
			rec.Author = trimValue(strings.TrimPrefix(label, recAuthor))
		case strings.HasPrefix(label, recWhy):
			rec.Why = trimValue(strings.TrimPrefix(label, recWhy))
		case strings.HasPrefix(label, recWhere):
			rec.Where = trimValue(strings.TrimPrefix(label, recWhere))
		}
	}
	if rec.Title == "" {
		return nil
	}
	return &rec
}

// EnrichAndPersist runs the slow post-coaching work: one search-augmented
// recommendation call plus the session-log appends. It is meant to run
// detached (see Detach) and never reports failure to the caller — every
// error is logged and swallowed here.
func (o *Orchestrator) EnrichAndPersist(ctx context.Context, v Verdict, meta DraftMeta) {
	rec := o.recommend(ctx, v)

	record := memory.SessionRecord{
		Date:      meta.Date,
		Title:     meta.Title,
		WordCount: v.WordCount,
		Patterns:  v.Patterns,
		Summary:   v.Summary,
	}
	if v.Scorecard != nil {
		record.Metrics = scorecardSummary(v.Scorecard)
	}
	if rec != nil {
		record.Recommendation = rec.Title
	}

	if o.log == nil {
		o.logger.Warn("session store absent, skipping append")
		return
	}
	if err := o.log.Append(ctx, store.RangeSessions, record.Row()); err != nil {
		o.logger.Warn("session append failed", zap.Error(err))
	}
	if rec != nil {
		row := []string{meta.Date, rec.Title, rec.Author, rec.Why, rec.Where, v.Dominant}
		if err := o.log.Append(ctx, store.RangeRecommendations, row); err != nil {
			o.logger.Warn("recommendation append failed", zap.Error(err))
		}
	}
}

func (o *Orchestrator) recommend(ctx context.Context, v Verdict) *Recommendation {
	if o.search == nil {
		return nil
	}
	reply, err := o.search.Complete(ctx, buildRecommendationPrompt(o.profile, problemStatement(v.Dominant)))
	if err != nil {
		o.logger.Warn("recommendation call failed", zap.Error(err))
		return nil
	}
	return ParseRecommendation(reply)
}

// Detach runs fn in its own goroutine behind a panic boundary. The caller's
// response path never waits on it and never sees its outcome.
func Detach(logger *zap.Logger, name string, fn func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("detached task panicked",
					zap.String("task", name), zap.Any("panic", r))
			}
		}()
		fn()
	}()
}
