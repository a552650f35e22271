// Package metrics computes heuristic writing measurements from raw draft
// text. Scoring is pure and deterministic: no I/O, no external models.
package metrics

import (
	"math"
	"strings"
	"unicode"
)

const (
	// minScoreTokens is the floor below which a draft carries too little
	// signal to measure.
	minScoreTokens = 50
	// edgeJudgeTokens: opening/closing strength is judged only when the
	// draft is long enough to leave a non-empty middle slice.
	edgeJudgeTokens = 100
	// edgeWindow is the token width of the opening and closing slices.
	edgeWindow = 50
)

// Scorecard is the structured output of one scoring pass.
type Scorecard struct {
	WordCount             int     `json:"word_count"`
	ConcreteAbstractRatio float64 `json:"concrete_abstract_ratio"`
	SentenceStdDev        float64 `json:"sentence_std_dev"`
	QualifierPer500       float64 `json:"qualifier_per_500"`
	SceneRatioPct         float64 `json:"scene_ratio_pct"`
	OpeningStrong         bool    `json:"opening_strong"`
	ClosingStrong         bool    `json:"closing_strong"`
	EdgesJudged           bool    `json:"edges_judged"`
	ProperNounPer500      float64 `json:"proper_noun_per_500"`
}

// Score measures a draft. ok is false when the text is under 50 tokens —
// too short to score, not an error.
func Score(text string) (Scorecard, bool) {
	tokens := strings.Fields(text)
	n := len(tokens)
	if n < minScoreTokens {
		return Scorecard{}, false
	}

	proper := properNounFlags(tokens)

	var properCount, abstractCount, qualifierCount, sceneCount int
	for i, tok := range tokens {
		if proper[i] {
			properCount++
		}
		w := normalize(tok)
		if _, ok := abstractNouns[w]; ok {
			abstractCount++
		}
		if _, ok := qualifierWords[w]; ok {
			qualifierCount++
		}
		if _, ok := sceneVerbs[w]; ok {
			sceneCount++
		}
	}

	sc := Scorecard{
		WordCount:             n,
		ConcreteAbstractRatio: round2(float64(properCount) / float64(floor1(abstractCount))),
		SentenceStdDev:        round2(sentenceStdDev(text)),
		QualifierPer500:       round1(float64(qualifierCount) / float64(n) * 500),
		SceneRatioPct:         round1(float64(sceneCount) / float64(n) * 100),
		ProperNounPer500:      round1(float64(properCount) / float64(n) * 500),
	}

	if n > edgeJudgeTokens {
		opening := specificity(tokens[:edgeWindow], proper[:edgeWindow])
		closing := specificity(tokens[n-edgeWindow:], proper[n-edgeWindow:])
		middle := specificity(tokens[edgeWindow:n-edgeWindow], proper[edgeWindow:n-edgeWindow])
		sc.OpeningStrong = opening >= middle
		sc.ClosingStrong = closing >= middle
		sc.EdgesJudged = true
	}

	return sc, true
}

// properNounFlags marks tokens that look like proper nouns: initial
// uppercase, not at a sentence start, not in the capitalization stopword set.
func properNounFlags(tokens []string) []bool {
	flags := make([]bool, len(tokens))
	for i, tok := range tokens {
		if i == 0 || endsSentence(tokens[i-1]) {
			continue
		}
		word := strings.TrimLeftFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if word == "" {
			continue
		}
		r := []rune(word)[0]
		if !unicode.IsUpper(r) {
			continue
		}
		if _, stop := capStopwords[normalize(word)]; stop {
			continue
		}
		flags[i] = true
	}
	return flags
}

// sentenceStdDev is the population standard deviation of per-sentence token
// counts. Fragments of two tokens or fewer are discarded; fewer than three
// qualifying sentences yields 0.
func sentenceStdDev(text string) float64 {
	frags := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var lengths []int
	for _, f := range frags {
		if n := len(strings.Fields(f)); n > 2 {
			lengths = append(lengths, n)
		}
	}
	if len(lengths) < 3 {
		return 0
	}
	var sum float64
	for _, n := range lengths {
		sum += float64(n)
	}
	mean := sum / float64(len(lengths))
	var varsum float64
	for _, n := range lengths {
		d := float64(n) - mean
		varsum += d * d
	}
	return math.Sqrt(varsum / float64(len(lengths)))
}

// specificity scores a token slice: (proper nouns + scene verbs − abstract
// nouns) per token. Higher means more grounded prose.
func specificity(tokens []string, proper []bool) float64 {
	score := 0
	for i, tok := range tokens {
		if proper[i] {
			score++
		}
		w := normalize(tok)
		if _, ok := sceneVerbs[w]; ok {
			score++
		}
		if _, ok := abstractNouns[w]; ok {
			score--
		}
	}
	return float64(score) / float64(floor1(len(tokens)))
}

func endsSentence(tok string) bool {
	t := strings.TrimRight(tok, `"')`+"`")
	return strings.HasSuffix(t, ".") || strings.HasSuffix(t, "!") || strings.HasSuffix(t, "?")
}

func normalize(tok string) string {
	return strings.ToLower(strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	}))
}

func floor1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
