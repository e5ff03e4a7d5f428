package nlp

import "strings"

// stopWords are tokens too common in resumes to be useful as search keywords.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {},
	"him": {}, "his": {}, "how": {}, "man": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "with": {},
	"have": {}, "this": {}, "that": {}, "from": {}, "they": {},
	"been": {}, "were": {}, "will": {}, "more": {}, "when": {},
	"work": {}, "worked": {}, "working": {}, "years": {}, "year": {},
	"experience": {}, "skills": {}, "using": {}, "used": {},
	"responsible": {}, "including": {}, "various": {},
}

// IsStopWord reports whether the lower-cased token is in the fixed stop set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// Keywords tokenizes text on whitespace and returns up to max unique
// lower-cased tokens in first-occurrence order. Tokens of length <= 3,
// stop words and pure punctuation are dropped. Order is deliberately
// insertion order, not frequency rank.
func Keywords(text string, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		tok = strings.ToLower(strings.Trim(tok, ".,;:!?()[]{}<>\"'`|/\\-_"))
		if len(tok) <= 3 {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == max {
			break
		}
	}
	return out
}
