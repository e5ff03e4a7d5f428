package heuristic

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/artem13815/resume-ingest/pkg/nlp"
	"github.com/artem13815/resume-ingest/pkg/profile"
)

// Experience patterns in priority order; the first one that matches
// anywhere in the lower-cased text wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s+of\s+experience`),
	regexp.MustCompile(`(\d+)\+\s*(?:years?|yrs?)`),
	regexp.MustCompile(`experience\D*?(\d+)\s*(?:years?|yrs?)`),
}

// Extractor is the deterministic profiling strategy: keyword and pattern
// matching only, no external calls. Same text in, same profile out.
type Extractor struct {
	maxKeywords int
}

func New() *Extractor {
	return &Extractor{maxKeywords: 20}
}

func (e *Extractor) Name() string { return "heuristic" }

// Extract never fails: an empty or garbage text simply yields the safe
// empty profile.
func (e *Extractor) Extract(_ context.Context, text string) profile.CandidateProfile {
	p := profile.Empty()
	if strings.TrimSpace(text) == "" {
		return p
	}

	norm := nlp.NormalizeText(text)

	for _, term := range technicalVocabulary {
		if detected(norm, term) {
			p.Skills.Technical = append(p.Skills.Technical, profile.TechnicalSkill{
				Skill:       term,
				Proficiency: profile.ProficiencyUnknown,
			})
		}
	}
	for _, term := range softVocabulary {
		if detected(norm, term) {
			p.Skills.Soft = append(p.Skills.Soft, term)
		}
	}

	if years, ok := YearsOfExperience(text); ok {
		p.Experience.TotalYears = float64(years)
	}
	if degree := DetectEducation(text); degree != "" {
		p.Education = append(p.Education, degree)
	}
	p.SearchableKeywords = nlp.Keywords(text, e.maxKeywords)
	return p
}

// detected matches a vocabulary term (and its aliases) against normalized
// text. Short variants such as "go" or "js" require whole-word hits so
// they do not fire on every "google" or "json"; longer ones match as
// substrings.
func detected(normText, term string) bool {
	for _, v := range nlp.SkillVariants(term) {
		if len(v) <= 3 {
			if nlp.ContainsPhrase(normText, v) {
				return true
			}
			continue
		}
		if strings.Contains(normText, v) {
			return true
		}
	}
	return false
}

// YearsOfExperience applies the fixed pattern list and returns the first
// captured number.
func YearsOfExperience(text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 0 {
				continue
			}
			return n, true
		}
	}
	return 0, false
}

// ExperienceSummary renders the detected experience as "<n> years", or ""
// when no pattern matched.
func ExperienceSummary(text string) string {
	n, ok := YearsOfExperience(text)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d years", n)
}

// DetectEducation returns the highest-priority degree or field keyword
// present in the text, title-cased, or "" when none is found. Priority is
// the fixed keyword order, not position in the text.
func DetectEducation(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			return titleCase(kw)
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
