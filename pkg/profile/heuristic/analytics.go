package heuristic

import "strings"

// TextStats are informational metrics about the extracted text. They are
// logged for operators and never make it into the canonical profile.
type TextStats struct {
	WordCount       int     `json:"wordCount"`
	LineCount       int     `json:"lineCount"`
	SkillsCount     int     `json:"skillsCount"`
	AvgWordsPerLine float64 `json:"avgWordsPerLine"`
	// Crude readability ratio: words per sentence, where a sentence is
	// approximated by a period.
	ReadabilityRatio float64 `json:"readabilityRatio"`
}

// Analyze computes text statistics alongside the detected skill count.
func Analyze(text string, skillsCount int) TextStats {
	words := len(strings.Fields(text))
	lines := 0
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	sentences := strings.Count(text, ".")
	if sentences == 0 {
		sentences = 1
	}

	stats := TextStats{
		WordCount:        words,
		LineCount:        lines,
		SkillsCount:      skillsCount,
		ReadabilityRatio: float64(words) / float64(sentences),
	}
	if lines > 0 {
		stats.AvgWordsPerLine = float64(words) / float64(lines)
	}
	return stats
}
