package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/artem13815/resume-ingest/pkg/llm"
	"github.com/artem13815/resume-ingest/pkg/logger"
	"github.com/artem13815/resume-ingest/pkg/profile"
)

// Extractor delegates profiling to a chat model constrained to a fixed
// JSON schema. Its hard contract: it never fails the request. Missing
// credentials, transport errors and unparseable completions all degrade
// to the safe empty profile; the offending completion is logged for
// diagnosis.
type Extractor struct {
	llm      llm.ChatModel
	log      *zap.Logger
	maxChars int
}

func New(model llm.ChatModel, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		llm: model,
		log: log,
		// First 6000 chars are enough for the profile sections and keep
		// the prompt bounded.
		maxChars: 6000,
	}
}

func (e *Extractor) Name() string { return "ai" }

func (e *Extractor) Extract(ctx context.Context, text string) profile.CandidateProfile {
	if text == "" {
		return profile.Empty()
	}
	if e.llm == nil {
		e.log.Warn("ai extraction skipped: no chat model configured")
		return profile.Empty()
	}
	if len(text) > e.maxChars {
		text = text[:e.maxChars]
	}

	raw, err := e.llm.Ask(ctx, systemPrompt, userPrompt(text))
	if err != nil {
		e.log.Warn("ai extraction failed, using empty profile", zap.Error(err))
		return profile.Empty()
	}

	p, err := Parse(raw)
	if err != nil {
		e.log.Warn("ai completion not parseable, using empty profile",
			zap.Error(err),
			zap.String("raw", logger.Truncate(raw, 2000)),
		)
		return profile.Empty()
	}
	return p
}
