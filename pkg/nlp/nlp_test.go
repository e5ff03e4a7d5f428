package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "go postgresql rest api", NormalizeText("  Go, PostgreSQL / REST-API!  "))
	assert.Equal(t, "", NormalizeText("  \t\n "))
}

func TestContainsPhrase(t *testing.T) {
	text := NormalizeText("Built services in Go and deployed to Google Cloud")
	assert.True(t, ContainsPhrase(text, "go"))
	assert.True(t, ContainsPhrase(text, "google cloud"))
	assert.False(t, ContainsPhrase(text, "goo"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestSkillVariants(t *testing.T) {
	assert.Equal(t, []string{"kubernetes", "k8s"}, SkillVariants("Kubernetes"))
	assert.Equal(t, []string{"go", "golang"}, SkillVariants("Go"))
	assert.Equal(t, []string{"rust"}, SkillVariants("Rust"))
	assert.Empty(t, SkillVariants("  "))
}

func TestKeywordsDropsShortAndStopTokens(t *testing.T) {
	kws := Keywords("the and for big systems; Go, distributed-systems experience with Kafka.", 20)
	require.NotEmpty(t, kws)
	for _, k := range kws {
		assert.Greater(t, len(k), 3, "token %q too short", k)
		assert.False(t, IsStopWord(k), "stop word %q leaked", k)
	}
	assert.Contains(t, kws, "systems")
	assert.Contains(t, kws, "kafka")
}

func TestKeywordsFirstOccurrenceOrderAndCap(t *testing.T) {
	kws := Keywords("alpha beta alpha gamma beta delta", 3)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, kws)
}
