package metrics

// Fixed marker-word tables used by the scorers. These are deliberately small
// heuristic lists, not a language model.

var abstractNouns = wordSet(
	"success", "failure", "growth", "happiness", "freedom", "justice",
	"truth", "beauty", "meaning", "purpose", "value", "values", "quality",
	"process", "system", "concept", "idea", "ideas", "theory", "approach",
	"strategy", "mindset", "perspective", "insight", "impact", "importance",
	"significance", "confidence", "curiosity", "ambition", "discipline",
	"clarity", "creativity", "passion", "potential", "progress", "society",
	"culture", "knowledge", "wisdom", "power", "fear", "love", "agency",
	"taste", "depth", "framework", "frameworks", "principle", "principles",
)

var qualifierWords = wordSet(
	"very", "quite", "rather", "somewhat", "fairly", "really", "just",
	"perhaps", "maybe", "possibly", "probably", "arguably", "basically",
	"actually", "generally", "usually", "often", "sometimes", "mostly",
	"slightly", "almost", "nearly", "apparently", "likely", "seemingly",
	"kind", "sort", "bit", "little", "relatively", "essentially",
)

var sceneVerbs = wordSet(
	"walked", "ran", "grabbed", "looked", "watched", "stood", "sat",
	"smiled", "laughed", "shouted", "whispered", "turned", "opened",
	"closed", "pushed", "pulled", "held", "dropped", "reached", "stared",
	"nodded", "leaned", "stepped", "climbed", "knocked", "picked",
	"threw", "caught", "waved", "pointed", "paused", "breathed",
	"listened", "touched", "carried", "waited", "crossed", "slammed",
)

// capStopwords are capitalized-but-not-proper tokens: pronouns, function
// words that survive mid-sentence capitalization, weekdays and months.
var capStopwords = wordSet(
	"i", "i'm", "i've", "i'd", "i'll", "the", "a", "an", "and", "but",
	"or", "so", "yet", "if", "when", "then", "my", "we", "he", "she",
	"it", "they", "you", "this", "that", "there", "here", "not", "no",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sunday", "january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
