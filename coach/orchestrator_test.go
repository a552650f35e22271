package coach

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sagarmenon/writing-coach-agent/memory"
)

// fakeLog is an in-memory RowLog with switchable failure modes.
type fakeLog struct {
	mu         sync.Mutex
	rows       map[string][][]string
	failAppend bool
	failTail   bool
}

func newFakeLog() *fakeLog {
	return &fakeLog{rows: make(map[string][][]string)}
}

func (f *fakeLog) Append(_ context.Context, name string, row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend {
		return errors.New("append refused")
	}
	f.rows[name] = append(f.rows[name], row)
	return nil
}

func (f *fakeLog) Tail(_ context.Context, name string, k int) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTail {
		return nil, errors.New("tail refused")
	}
	rows := f.rows[name]
	if len(rows) > k {
		rows = rows[len(rows)-k:]
	}
	return rows, nil
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestIsDraftBoundary(t *testing.T) {
	assert.False(t, IsDraft(words(80)), "80 tokens is not a draft")
	assert.True(t, IsDraft(words(81)), "81 tokens is a draft")
	assert.False(t, IsDraft(""))
}

func TestNewRequiresLLM(t *testing.T) {
	_, err := New(nil, nil, DefaultProfile(), nil, nil)
	assert.Error(t, err)
}

func TestEvaluateParsesReply(t *testing.T) {
	mock := &MockLLM{Reply: `ONE-LINE OVERALL READ
Good bones, weak ending.

— Your Coach

PATTERNS: W1,W3
SUMMARY: A chawl scene that recaps itself.
DOMINANT_WEAKNESS: W1`}
	o, err := New(mock, nil, DefaultProfile(), nil, zap.NewNop())
	require.NoError(t, err)

	v, err := o.Evaluate(context.Background(), words(90), "", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"W1", "W3"}, v.Patterns)
	assert.Equal(t, "A chawl scene that recaps itself.", v.Summary)
	assert.Equal(t, "W1", v.Dominant)
	assert.Equal(t, 90, v.WordCount)
	require.NotNil(t, v.Scorecard)
	assert.NotContains(t, v.Feedback, "PATTERNS:")

	// One call, carrying brief, memory sentinel, metrics and format.
	assert.Equal(t, 1, mock.Calls)
	sys := mock.LastPrompt.System
	assert.Contains(t, sys, "SCENE-BUILDING AVOIDANCE")
	assert.Contains(t, sys, memory.FirstSession)
	assert.Contains(t, sys, "words 90")
	for _, h := range sectionHeaders {
		assert.Contains(t, sys, h)
	}
}

func TestEvaluateShortDraftHasNoScorecard(t *testing.T) {
	mock := &MockLLM{Reply: "fine"}
	o, _ := New(mock, nil, DefaultProfile(), nil, nil)

	v, err := o.Evaluate(context.Background(), words(40), "", nil)
	require.NoError(t, err)
	assert.Nil(t, v.Scorecard)
	assert.Contains(t, mock.LastPrompt.System, "Draft too short for metrics.")
}

func TestEvaluateServiceFailureIsHard(t *testing.T) {
	o, _ := New(&MockLLM{Err: errors.New("model down")}, nil, DefaultProfile(), nil, nil)
	_, err := o.Evaluate(context.Background(), words(90), "", nil)
	assert.Error(t, err)
}

func TestExcuseResponse(t *testing.T) {
	mock := &MockLLM{Reply: "No draft. Write the chawl scene.\n— Your Coach"}
	o, _ := New(mock, nil, DefaultProfile(), nil, nil)

	out, err := o.ExcuseResponse(context.Background(), "travel week, no time")
	require.NoError(t, err)
	assert.Equal(t, mock.Reply, out)
	// The excuse path has no memory, metrics, or trailer protocol.
	assert.NotContains(t, mock.LastPrompt.System, trailerPatterns)
	assert.NotContains(t, mock.LastPrompt.System, "RECENT SESSIONS")
	assert.Contains(t, mock.LastPrompt.User, "travel week, no time")
}

func TestHistory(t *testing.T) {
	log := newFakeLog()
	r := memory.SessionRecord{Date: "2026-08-23", Title: "Biryani", WordCount: 900}
	require.NoError(t, log.Append(context.Background(), "sessions", r.Row()))

	o, _ := New(&MockLLM{}, nil, DefaultProfile(), log, nil)
	got := o.History(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Biryani", got[0].Title)
}

func TestHistoryToleratesAbsentStore(t *testing.T) {
	o, _ := New(&MockLLM{}, nil, DefaultProfile(), nil, nil)
	assert.Empty(t, o.History(context.Background()))

	failing := newFakeLog()
	failing.failTail = true
	o, _ = New(&MockLLM{}, nil, DefaultProfile(), failing, nil)
	assert.Empty(t, o.History(context.Background()))
}

func TestRotationPromptWraps(t *testing.T) {
	s1, b1 := RotationPrompt(1)
	s9, b9 := RotationPrompt(9)
	assert.Equal(t, s1, s9)
	assert.Equal(t, b1, b9)

	s2, _ := RotationPrompt(2)
	assert.NotEqual(t, s1, s2)
}

func TestWeeklyPromptNoHistorySkipsLLM(t *testing.T) {
	mock := &MockLLM{Reply: "unused"}
	o, _ := New(mock, nil, DefaultProfile(), nil, nil)

	subject, body, err := o.WeeklyPrompt(context.Background(), 1, nil)
	require.NoError(t, err)
	wantSubject, wantBody := RotationPrompt(1)
	assert.Equal(t, wantSubject, subject)
	assert.Equal(t, wantBody, body)
	assert.Zero(t, mock.Calls)
}

func TestWeeklyPromptPersonalizesFromHistory(t *testing.T) {
	mock := &MockLLM{Reply: "Sagar.\n\nThe W1 pattern again.\n— Your Coach"}
	o, _ := New(mock, nil, DefaultProfile(), nil, nil)

	history := []memory.SessionRecord{{Date: "2026-08-23", Title: "Turtle", Patterns: []string{"W1"}}}
	subject, body, err := o.WeeklyPrompt(context.Background(), 3, history)
	require.NoError(t, err)
	assert.Equal(t, mock.Reply, body)
	wantSubject, _ := RotationPrompt(3)
	assert.Equal(t, wantSubject, subject)
	assert.Equal(t, 1, mock.Calls)
	assert.Contains(t, mock.LastPrompt.System, "Turtle")
}
