package coach

import (
	"fmt"
	"strings"
)

// FallbackWeakness is the dominant code assumed when the model omits the
// DOMINANT_WEAKNESS trailer. Scene-building is the default coaching target.
const FallbackWeakness = "W3"

// Weakness is one recurring writing problem from the closed W1..W7 set.
type Weakness struct {
	Code string
	Name string
	Note string
}

// Profile is the fixed coaching brief baked into every prompt. It is built
// once at startup and never mutated per request.
type Profile struct {
	Writer      string
	Identity    string
	Strengths   []string
	Weaknesses  []Weakness
	Commitments []string
	Taste       string
	Philosophy  []string
}

// KnownCode reports whether code belongs to the profile's weakness set.
func (p Profile) KnownCode(code string) bool {
	for _, w := range p.Weaknesses {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Brief renders the full coaching context block for prompts.
func (p Profile) Brief() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "WRITER: %s\n%s\n", p.Writer, p.Identity)

	sb.WriteString("\n=== STRENGTHS (never undermine these) ===\n")
	for i, s := range p.Strengths {
		fmt.Fprintf(&sb, "S%d. %s\n", i+1, s)
	}

	sb.WriteString("\n=== WEAKNESSES (push hard on these) ===\n")
	for _, w := range p.Weaknesses {
		fmt.Fprintf(&sb, "%s. %s — %s\n", w.Code, w.Name, w.Note)
	}

	sb.WriteString("\n=== ACTIVE COMMITMENTS ===\n")
	for _, c := range p.Commitments {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	if p.Taste != "" {
		sb.WriteString("\n=== TASTE ===\n")
		sb.WriteString(p.Taste)
		sb.WriteByte('\n')
	}

	sb.WriteString("\n=== COACHING PHILOSOPHY ===\n")
	for _, ph := range p.Philosophy {
		fmt.Fprintf(&sb, "- %s\n", ph)
	}
	return sb.String()
}

// DefaultProfile is the standing brief for Sagar's coaching setup.
func DefaultProfile() Profile {
	return Profile{
		Writer:   "Sagar Menon, 26, Bombay",
		Identity: "NEWSLETTER: Public Record on Substack. 22 confirmed articles across 4 years.\nWORK: Founder of Mauka (communication education) and Citta (mental health for students).",
		Strengths: []string{
			"THE SENTENCE — writes sentences that stop readers cold. Protect at all costs.",
			"FORMAL RANGE — can write in 6+ registers: analytical essay, timestamped vignette, city meditation, word-prompt essay, how-to, essay series.",
			"COUNTER-INTUITIVE OBSERVATION — consistently finds the unexpected flip of common wisdom.",
			"CULTURAL SPECIFICITY — writes India from the inside, without explaining it to outsiders. Never over-explains.",
			"EARNED PERSONAL ANCHOR — specific, unpretentious stories that ground abstract ideas.",
			"DRY, POINTED HUMOR — never tries too hard, always has a point of view.",
			"STRUCTURAL ARCHITECTURE — thinks in skeletons, not just paragraphs.",
		},
		Weaknesses: []Weakness{
			{Code: "W1", Name: "ENDINGS THAT DEFLATE", Note: "most pieces trail off with a summary or restatement. Never end with a recap; end with a resonance."},
			{Code: "W2", Name: "THESIS-STATEMENTS PUBLISHED AS FULL ESSAYS", Note: "800 word minimum before any piece ships."},
			{Code: "W3", Name: "SCENE-BUILDING AVOIDANCE", Note: "summarizes instead of inhabits moments. One scene minimum per personal essay."},
			{Code: "W4", Name: "WORD-ESSAY SERIES DILUTION", Note: "only publish word essays when the second-layer argument can be stated in one sentence before writing."},
			{Code: "W5", Name: "OVER-RELIANCE ON WESTERN CANON", Note: "the best piece cites no one. Model that."},
			{Code: "W6", Name: "INCONSISTENT PUBLISHING CADENCE", Note: "22 articles in 4 years. Needs a bi-weekly rhythm."},
			{Code: "W7", Name: "REFLEX DISCLAIMERS", Note: "one disclaimer max, placed after the argument, never before."},
		},
		Commitments: []string{
			"800 word minimum before publishing",
			"One scene minimum in every personal essay",
			"Word essay only if second-layer argument stated in one sentence first",
			"No ending that recaps",
			"The chawl visit essay (full scene, not summary) — overdue",
			"The arranged marriage → communication essay — most important unwritten piece",
			"The full Confidence Needs Curiosity essay — thesis needs its body",
		},
		Taste: "S-Tier: EdTech failing, Building Depth. A-Tier: Building Agency, Building Taste, On Grief, PUC certificates, Biryani, a night at the hospital. B-Tier: Grass, Sparkle, How to run, Turtle. C-Tier: Cookie, 3 questions, Pants.",
		Philosophy: []string{
			"Be a whiplash coach, not a cheerleader",
			"Name the avoidance for what it is",
			"Specific > general always",
			"If the piece is good, say why specifically. If it's weak, say why specifically.",
			"Always end with ONE concrete instruction for the next draft or next session",
			"Never give generic writing advice — everything must be calibrated to the writer's specific work",
		},
	}
}
