package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarmenon/writing-coach-agent/coach"
	"github.com/sagarmenon/writing-coach-agent/metrics"
)

func TestDocumentConvertsEmphasis(t *testing.T) {
	doc, err := Document("First paragraph with **emphasis**.\n\nSecond paragraph.", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, doc, "<strong>emphasis</strong>")
	assert.Contains(t, doc, "<p>Second paragraph.</p>")
	assert.NotContains(t, doc, "The Numbers")
}

func TestDocumentOmitsMetricsPanelWithoutScorecard(t *testing.T) {
	doc, err := Document("Body.", nil, nil)
	require.NoError(t, err)
	assert.NotContains(t, doc, "The Numbers")
	assert.NotContains(t, doc, "scene ratio")
}

func TestDocumentMetricsPanelJudgments(t *testing.T) {
	sc := &metrics.Scorecard{
		WordCount:             500,
		SceneRatioPct:         31.0,
		QualifierPer500:       20.0,
		SentenceStdDev:        5.1,
		ConcreteAbstractRatio: 0.8,
		ProperNounPer500:      6.0,
	}
	doc, err := Document("Body.", sc, nil)
	require.NoError(t, err)
	assert.Contains(t, doc, "The Numbers")
	assert.Contains(t, doc, "scene ratio: 31.0%")
	assert.Contains(t, doc, "qualifier density: 20.0 per 500 words")
	assert.Contains(t, doc, "<strong>needs work</strong>")
	assert.Contains(t, doc, "<strong>good</strong>")
	// Edges not judged: no opening/closing rows.
	assert.NotContains(t, doc, "opening:")
}

func TestDocumentEdgeRows(t *testing.T) {
	sc := &metrics.Scorecard{WordCount: 200, EdgesJudged: true, OpeningStrong: true}
	doc, err := Document("Body.", sc, nil)
	require.NoError(t, err)
	assert.Contains(t, doc, "opening: strong")
	assert.Contains(t, doc, "closing: weak")
}

func TestDocumentRecommendationPanel(t *testing.T) {
	rec := &coach.Recommendation{
		Title:  "Total Eclipse",
		Author: "Annie Dillard",
		Why:    "Scene as argument.",
		Where:  "Teaching a Stone to Talk",
	}
	doc, err := Document("Body.", nil, rec)
	require.NoError(t, err)
	assert.Contains(t, doc, "Read This Next")
	assert.Contains(t, doc, "<strong>Total Eclipse</strong>")
	assert.Contains(t, doc, "Annie Dillard")
	assert.Contains(t, doc, "Teaching a Stone to Talk")

	// A titleless recommendation renders nothing.
	doc, err = Document("Body.", nil, &coach.Recommendation{Author: "x"})
	require.NoError(t, err)
	assert.NotContains(t, doc, "Read This Next")
}
