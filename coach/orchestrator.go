// Package coach turns a submitted draft into a structured coaching verdict:
// it classifies the submission, assembles the prompt from the fixed brief,
// recent sessions and heuristic metrics, issues one generative call, and
// parses the reply's trailer protocol.
package coach

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sagarmenon/writing-coach-agent/memory"
	"github.com/sagarmenon/writing-coach-agent/metrics"
	"github.com/sagarmenon/writing-coach-agent/store"
)

// draftThreshold is the sole branch point of the pipeline: more words than
// this means a genuine draft, anything else is an excuse.
const draftThreshold = 80

// historyWindow bounds how many session rows are read back for context.
const historyWindow = 4

// Verdict is the parsed result of one coaching call. It is built once per
// request, split into displayed and persisted parts, and not retained.
type Verdict struct {
	Feedback  string
	Patterns  []string
	Summary   string
	Dominant  string
	WordCount int
	Scorecard *metrics.Scorecard
}

// IsDraft reports whether text is substantial enough to coach as a draft.
func IsDraft(text string) bool {
	return len(strings.Fields(text)) > draftThreshold
}

// Orchestrator owns the coaching calls. The profile is immutable after
// construction; all other state is request-scoped.
type Orchestrator struct {
	llm     LLMClient
	search  LLMClient
	profile Profile
	log     store.RowLog
	logger  *zap.Logger
}

// New builds an Orchestrator. search and log may be nil: enrichment then
// skips the recommendation call, and history reads come back empty.
func New(llm LLMClient, search LLMClient, profile Profile, log store.RowLog, logger *zap.Logger) (*Orchestrator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		llm:     llm,
		search:  search,
		profile: profile,
		log:     log,
		logger:  logger,
	}, nil
}

// Evaluate coaches a genuine draft: one generative call, hard failure on
// error, trailer-parsed reply. note is optional writer-supplied context.
func (o *Orchestrator) Evaluate(ctx context.Context, draft, note string, history []memory.SessionRecord) (Verdict, error) {
	v := Verdict{WordCount: len(strings.Fields(draft))}
	if sc, ok := metrics.Score(draft); ok {
		v.Scorecard = &sc
	}

	prompt := buildCoachingPrompt(o.profile, memory.Summarize(history), scorecardSummary(v.Scorecard), draft, note)
	raw, err := o.llm.Complete(ctx, prompt)
	if err != nil {
		return Verdict{}, err
	}

	body, t := ParseTrailers(raw)
	v.Feedback = body
	v.Patterns = t.Patterns
	v.Summary = t.Summary
	v.Dominant = t.Dominant
	return v, nil
}

// ExcuseResponse handles a non-draft reply: shorter prompt, no memory, no
// metrics, no trailer parsing. The reply is returned as-is.
func (o *Orchestrator) ExcuseResponse(ctx context.Context, reason string) (string, error) {
	return o.llm.Complete(ctx, buildExcusePrompt(o.profile, reason))
}

// History loads the recent session records. An absent or failing store
// yields empty history, never an error.
func (o *Orchestrator) History(ctx context.Context) []memory.SessionRecord {
	if o.log == nil {
		return nil
	}
	rows, err := o.log.Tail(ctx, store.RangeSessions, historyWindow)
	if err != nil {
		o.logger.Warn("history read failed", zap.Error(err))
		return nil
	}
	records := make([]memory.SessionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, memory.FromRow(row))
	}
	return records
}
