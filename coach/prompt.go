package coach

import (
	"fmt"
	"strings"

	"github.com/sagarmenon/writing-coach-agent/metrics"
)

// The five fixed sections every coaching reply must carry, in order.
var sectionHeaders = []string{
	"ONE-LINE OVERALL READ",
	"WHAT'S WORKING",
	"WHAT'S BROKEN",
	"THE ENDING",
	"ONE INSTRUCTION",
}

func buildCoachingPrompt(p Profile, memoryContext, scoreSummary, draft, note string) Prompt {
	var sys strings.Builder
	fmt.Fprintf(&sys, "You are %s's personal writing coach.\n", firstName(p.Writer))
	sys.WriteString("Here is your complete coaching brief — read it carefully before responding:\n\n")
	sys.WriteString(p.Brief())

	sys.WriteString("\nRECENT SESSIONS:\n")
	sys.WriteString(memoryContext)
	sys.WriteString("\n\nDRAFT METRICS (heuristic, use as signal not verdict):\n")
	sys.WriteString(scoreSummary)

	sys.WriteString("\n\nRESPONSE FORMAT — use exactly these five section headers, in order:\n")
	for i, h := range sectionHeaders {
		fmt.Fprintf(&sys, "%d. %s\n", i+1, h)
	}
	sys.WriteString(`Keep the total response under 600 words. Tight. No padding.
End the coaching body with a single, specific instruction. Sign off as: — Your Coach

After the sign-off, append exactly three machine-readable lines:
PATTERNS: comma-separated weakness codes observed in this draft (e.g. W1,W3)
SUMMARY: one sentence describing this draft and its main problem
DOMINANT_WEAKNESS: the single most significant code (one of W1..W7)`)

	var user strings.Builder
	user.WriteString("Here is this week's draft.\n\n")
	if note != "" {
		fmt.Fprintf(&user, "Writer's note: %s\n\n", note)
	}
	fmt.Fprintf(&user, "DRAFT:\n%s\n\n", draft)
	user.WriteString("Give me your coaching response. Be specific. Be demanding. Reference the writer's actual work where relevant.")

	return Prompt{System: sys.String(), User: user.String()}
}

func buildExcusePrompt(p Profile, reason string) Prompt {
	var sys strings.Builder
	fmt.Fprintf(&sys, "You are %s's writing coach. No draft was sent this week — a reason or excuse arrived instead.\n\n", firstName(p.Writer))
	sys.WriteString("Your coaching brief:\n")
	sys.WriteString(p.Brief())
	sys.WriteString("\nBe direct. Don't accept the excuse. Name the avoidance.\n")
	sys.WriteString("Redirect to the specific piece the writer committed to.\n")
	sys.WriteString("Keep it under 150 words. No warmth. Just the redirect.\nSign off as: — Your Coach")

	user := fmt.Sprintf("The reply contained no draft. Here is what it said:\n\n%q\n\nRespond as the coach.", reason)
	return Prompt{System: sys.String(), User: user}
}

func buildWeeklyPrompt(p Profile, memoryContext, theme string) Prompt {
	var sys strings.Builder
	fmt.Fprintf(&sys, "You are %s's writing coach, writing the weekly Sunday check-in email.\n\n", firstName(p.Writer))
	sys.WriteString("Your coaching brief:\n")
	sys.WriteString(p.Brief())
	sys.WriteString("\nRECENT SESSIONS:\n")
	sys.WriteString(memoryContext)
	sys.WriteString(`

Write the body of this week's check-in. Ground it in what the recent sessions
show: name the pattern that keeps recurring and give one concrete assignment
for the coming week. Under 200 words. End by asking for a reply with the
draft. Sign off as: — Your Coach`)

	user := fmt.Sprintf("This week's default theme, for reference:\n\n%s\n\nWrite the personalized check-in.", theme)
	return Prompt{System: sys.String(), User: user}
}

func buildRecommendationPrompt(p Profile, problem string) Prompt {
	sys := `You are a reading scout for a writing coach. Search for one published
essay, story, or book chapter that is a masterclass in the named craft
problem. Prefer pieces available online. Reply with exactly four lines:
TITLE: the piece's title
AUTHOR: who wrote it
WHY: one sentence on what it demonstrates about this problem
WHERE: where to read it (publication, collection, or URL)`

	user := fmt.Sprintf("The writer: %s.\nCraft problem to address: %s\nFind the single best piece to study.", p.Writer, problem)
	return Prompt{System: sys, User: user}
}

// scorecardSummary flattens a scorecard into one prompt-friendly line.
func scorecardSummary(sc *metrics.Scorecard) string {
	if sc == nil {
		return "Draft too short for metrics."
	}
	s := fmt.Sprintf("words %d, concrete/abstract %.2f, sentence stddev %.2f, qualifiers/500 %.1f, scene %.1f%%, proper nouns/500 %.1f",
		sc.WordCount, sc.ConcreteAbstractRatio, sc.SentenceStdDev,
		sc.QualifierPer500, sc.SceneRatioPct, sc.ProperNounPer500)
	if sc.EdgesJudged {
		s += fmt.Sprintf(", opening strong %v, closing strong %v", sc.OpeningStrong, sc.ClosingStrong)
	}
	return s
}

func firstName(writer string) string {
	fields := strings.FieldsFunc(writer, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return writer
	}
	return fields[0]
}
