package coach

import "strings"

// Trailer labels the model is instructed to append to a coaching reply.
const (
	trailerPatterns = "PATTERNS:"
	trailerSummary  = "SUMMARY:"
	trailerDominant = "DOMINANT_WEAKNESS:"
)

// Trailers holds the machine-parseable fields extracted from a reply.
type Trailers struct {
	Patterns []string
	Summary  string
	Dominant string
}

// ParseTrailers splits a raw reply into the displayable body and the trailer
// fields. Trailer lines may appear anywhere, in any order, and any of them
// may be missing: patterns and summary default to empty, the dominant
// weakness to FallbackWeakness. All other lines are preserved verbatim in
// their original order.
func ParseTrailers(reply string) (string, Trailers) {
	t := Trailers{Dominant: FallbackWeakness}
	var body []string

	for _, line := range strings.Split(reply, "\n") {
		// Models sometimes bold or bullet the labels; strip decoration
		// before matching but keep body lines untouched.
		label := strings.TrimLeft(strings.TrimSpace(line), "#*- ")
		switch {
		case strings.HasPrefix(label, trailerPatterns):
			t.Patterns = splitCodes(strings.TrimPrefix(label, trailerPatterns))
		case strings.HasPrefix(label, trailerSummary):
			t.Summary = trimValue(strings.TrimPrefix(label, trailerSummary))
		case strings.HasPrefix(label, trailerDominant):
			if v := trimValue(strings.TrimPrefix(label, trailerDominant)); v != "" {
				t.Dominant = strings.ToUpper(strings.Fields(v)[0])
			}
		default:
			body = append(body, line)
		}
	}

	// Stripping trailers can leave dangling blank lines at the end.
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return strings.Join(body, "\n"), t
}

func splitCodes(s string) []string {
	var codes []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.ToUpper(trimValue(c)); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

func trimValue(s string) string {
	return strings.Trim(s, "* \t")
}
