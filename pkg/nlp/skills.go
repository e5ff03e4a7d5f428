package nlp

import "strings"

// ContainsPhrase checks for a whole-word occurrence of a normalized phrase
// inside normalized text. "go" matches " ... go ..." but not "google".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// SkillVariants returns the normalized skill plus common aliases so that
// "golang" in a vocabulary also matches "Go" in a resume and vice versa.
// Intentionally small; extend as needed.
func SkillVariants(skill string) []string {
	base := NormalizeText(skill)
	if base == "" {
		return []string{}
	}
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		s = NormalizeText(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)

	switch base {
	case "postgres":
		add("postgresql")
	case "postgresql":
		add("postgres")
	case "k8s":
		add("kubernetes")
	case "kubernetes":
		add("k8s")
	case "golang":
		add("go")
	case "go":
		add("golang")
	case "js":
		add("javascript")
	case "javascript":
		add("js")
	case "ts":
		add("typescript")
	case "typescript":
		add("ts")
	case "ci cd":
		add("cicd")
	case "cicd":
		add("ci cd")
	}

	return out
}
