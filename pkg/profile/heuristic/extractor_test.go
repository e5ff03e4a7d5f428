package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-ingest/pkg/profile"
)

const sampleResume = `John Doe
Senior Backend Engineer, Berlin

5 years of experience in backend development.
Strong with Python and Kubernetes, some Terraform.
Bachelor of Computer Science.
Known for communication and leadership.`

func TestExtractIsDeterministic(t *testing.T) {
	e := New()
	a := e.Extract(context.Background(), sampleResume)
	b := e.Extract(context.Background(), sampleResume)
	assert.Equal(t, a, b)
}

func TestExtractSkillDetection(t *testing.T) {
	p := New().Extract(context.Background(), sampleResume)

	var names []string
	for _, s := range p.Skills.Technical {
		names = append(names, s.Skill)
		assert.Equal(t, profile.ProficiencyUnknown, s.Proficiency)
		assert.Zero(t, s.EstimatedYears)
	}
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "Kubernetes")
	assert.Contains(t, names, "Terraform")
	assert.NotContains(t, names, "Java")
	assert.Contains(t, p.Skills.Soft, "Communication")
	assert.Contains(t, p.Skills.Soft, "Leadership")
}

func TestExtractShortAliasesNeedWholeWords(t *testing.T) {
	p := New().Extract(context.Background(), "I google things and write json")
	for _, s := range p.Skills.Technical {
		assert.NotEqual(t, "Go", s.Skill)
	}
}

func TestExtractEmptyTextYieldsSafeEmptyProfile(t *testing.T) {
	p := New().Extract(context.Background(), "   \n ")
	assert.Equal(t, profile.Empty(), p)
	require.NotNil(t, p.Skills.Technical)
	require.NotNil(t, p.SearchableKeywords)
}

func TestYearsOfExperiencePatterns(t *testing.T) {
	cases := map[string]struct {
		years int
		ok    bool
	}{
		"5 years of experience in backend development": {5, true},
		"over 10 yrs of experience":                    {10, true},
		"7+ years building services":                   {7, true},
		"Experience: 3 years in fintech":               {3, true},
		"a seasoned developer":                         {0, false},
	}
	for text, want := range cases {
		n, ok := YearsOfExperience(text)
		assert.Equal(t, want.ok, ok, text)
		assert.Equal(t, want.years, n, text)
	}
}

func TestExperienceSummary(t *testing.T) {
	assert.Equal(t, "5 years", ExperienceSummary("5 years of experience in Go"))
	assert.Equal(t, "", ExperienceSummary("no numbers here"))
}

func TestDetectEducationPriorityOrder(t *testing.T) {
	// "bachelor" outranks "engineering" even though engineering comes first
	// in the text.
	got := DetectEducation("MSc Engineering; also holds a bachelor degree")
	assert.Equal(t, "Bachelor", got)

	assert.Equal(t, "Computer Science", DetectEducation("studied computer science"))
	assert.Equal(t, "Mba", DetectEducation("completed an MBA program"))
	assert.Equal(t, "", DetectEducation("self taught"))
}

func TestKeywordLimits(t *testing.T) {
	p := New().Extract(context.Background(), sampleResume)
	assert.LessOrEqual(t, len(p.SearchableKeywords), 20)
	for _, k := range p.SearchableKeywords {
		assert.Greater(t, len(k), 3)
	}
}

func TestAnalyze(t *testing.T) {
	stats := Analyze("one two three.\nfour five.", 2)
	assert.Equal(t, 5, stats.WordCount)
	assert.Equal(t, 2, stats.LineCount)
	assert.Equal(t, 2, stats.SkillsCount)
	assert.InDelta(t, 2.5, stats.AvgWordsPerLine, 0.001)
	assert.InDelta(t, 2.5, stats.ReadabilityRatio, 0.001)
}

func TestAnalyzeNoSentences(t *testing.T) {
	stats := Analyze("word word word", 0)
	assert.InDelta(t, 3.0, stats.ReadabilityRatio, 0.001)
}
