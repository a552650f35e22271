package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrailersAtEnd(t *testing.T) {
	reply := `ONE-LINE OVERALL READ
The scene works, the ending deflates.

— Your Coach

PATTERNS: W1, W3
SUMMARY: Strong chawl scene undercut by a recap ending.
DOMINANT_WEAKNESS: W1`

	body, tr := ParseTrailers(reply)
	assert.Equal(t, []string{"W1", "W3"}, tr.Patterns)
	assert.Equal(t, "Strong chawl scene undercut by a recap ending.", tr.Summary)
	assert.Equal(t, "W1", tr.Dominant)
	assert.NotContains(t, body, "PATTERNS:")
	assert.NotContains(t, body, "SUMMARY:")
	assert.NotContains(t, body, "DOMINANT_WEAKNESS:")
	assert.Contains(t, body, "The scene works, the ending deflates.")
}

func TestParseTrailersAnyPositionAnyOrder(t *testing.T) {
	reply := `DOMINANT_WEAKNESS: W5
First paragraph.
SUMMARY: Mid-reply summary.
Second paragraph.
PATTERNS: W5,W7`

	body, tr := ParseTrailers(reply)
	assert.Equal(t, "W5", tr.Dominant)
	assert.Equal(t, []string{"W5", "W7"}, tr.Patterns)
	assert.Equal(t, "Mid-reply summary.", tr.Summary)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", body)
}

func TestParseTrailersMissing(t *testing.T) {
	reply := "Just prose, no structure at all.\nSecond line."
	body, tr := ParseTrailers(reply)
	assert.Equal(t, reply, body)
	assert.Empty(t, tr.Patterns)
	assert.Empty(t, tr.Summary)
	assert.Equal(t, FallbackWeakness, tr.Dominant)
}

func TestParseTrailersDecoratedLabels(t *testing.T) {
	reply := "Body.\n**PATTERNS: W2**\n- SUMMARY: Bulleted summary.\n## DOMINANT_WEAKNESS: w4 extra words"
	body, tr := ParseTrailers(reply)
	assert.Equal(t, "Body.", body)
	assert.Equal(t, []string{"W2"}, tr.Patterns)
	assert.Equal(t, "Bulleted summary.", tr.Summary)
	assert.Equal(t, "W4", tr.Dominant)
}

func TestParseTrailersEmptyDominantFallsBack(t *testing.T) {
	_, tr := ParseTrailers("Body.\nDOMINANT_WEAKNESS:")
	assert.Equal(t, FallbackWeakness, tr.Dominant)
}

func TestParseTrailersBodyOrderPreserved(t *testing.T) {
	body, _ := ParseTrailers("alpha\nPATTERNS: W1\nbeta\ngamma")
	assert.Equal(t, "alpha\nbeta\ngamma", body)
}
