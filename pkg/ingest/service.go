package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/resume-ingest/pkg/document"
	"github.com/artem13815/resume-ingest/pkg/pdftext"
	"github.com/artem13815/resume-ingest/pkg/profile"
	"github.com/artem13815/resume-ingest/pkg/profile/heuristic"
)

// RawSubmission is the request-scoped upload payload. Field tags match
// the public API contract.
type RawSubmission struct {
	FileURL     string `json:"FileUrl"`
	FileContent string `json:"FileContent"`
	External    bool   `json:"External"`
}

// CandidateInfo is the response highlight block derived from the profile.
type CandidateInfo struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Location             string   `json:"location"`
	TotalExperienceYears float64  `json:"total_experience_years"`
	CurrentRole          string   `json:"current_role"`
	TechnicalSkillsCount int      `json:"technical_skills_count"`
	SoftSkillsCount      int      `json:"soft_skills_count"`
	CertificationsCount  int      `json:"certifications_count"`
	Industries           []string `json:"industries"`
}

// Result summarizes one confirmed ingestion.
type Result struct {
	DocumentID          string
	FileURL             string
	External            bool
	ExtractedTextLength int
	Candidate           CandidateInfo
}

// Service runs the pipeline: decode -> extract text -> profile ->
// assemble -> persist. One strictly sequential pass per request, no
// retries, no shared state across requests.
type Service struct {
	pdf      pdftext.Extractor
	profiler profile.Extractor
	store    document.Store
	log      *zap.Logger
}

func NewService(pdf pdftext.Extractor, profiler profile.Extractor, store document.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{pdf: pdf, profiler: profiler, store: store, log: log}
}

// Ingest processes a single submission end to end. Failures carry an
// *Error whose Kind maps onto the HTTP taxonomy; profiling itself never
// fails (the AI strategy degrades internally to the safe empty profile).
func (s *Service) Ingest(ctx context.Context, sub RawSubmission) (Result, error) {
	if strings.TrimSpace(sub.FileContent) == "" {
		return Result{}, newError(KindInvalidPayload, errors.New("FileContent is required"))
	}

	data, err := base64.StdEncoding.DecodeString(sub.FileContent)
	if err != nil {
		return Result{}, newError(KindDecodeFailure, err)
	}

	text, err := s.pdf.Extract(data)
	if err != nil {
		return Result{}, newError(KindPDFParseFailure, err)
	}
	// An empty-but-valid PDF is not a failure; the pipeline continues
	// with empty text and an all-default profile.

	prof := s.profiler.Extract(ctx, text)

	doc := document.Assemble(prof, document.AssembleInput{
		FileURL:          sub.FileURL,
		External:         sub.External,
		ExtractedText:    text,
		ExtractionMethod: s.profiler.Name(),
	})

	stats := heuristic.Analyze(text, len(prof.Skills.Technical))
	s.log.Debug("resume text analyzed",
		zap.Int("words", stats.WordCount),
		zap.Int("lines", stats.LineCount),
		zap.Int("skills", stats.SkillsCount),
		zap.Float64("readability", stats.ReadabilityRatio),
	)

	id, err := s.store.Create(ctx, doc)
	if err != nil {
		return Result{}, newError(KindStoreFailure, err)
	}

	s.log.Info("resume ingested",
		zap.String("document_id", id),
		zap.String("extraction_method", s.profiler.Name()),
		zap.Int("text_length", len(text)),
	)

	return Result{
		DocumentID:          id,
		FileURL:             sub.FileURL,
		External:            sub.External,
		ExtractedTextLength: len(text),
		Candidate: CandidateInfo{
			Name:                 prof.PersonalInfo.Name,
			Email:                prof.PersonalInfo.Email,
			Location:             prof.PersonalInfo.Location,
			TotalExperienceYears: prof.Experience.TotalYears,
			CurrentRole:          prof.Experience.CurrentRole,
			TechnicalSkillsCount: len(prof.Skills.Technical),
			SoftSkillsCount:      len(prof.Skills.Soft),
			CertificationsCount:  len(prof.Certifications),
			Industries:           prof.Experience.Industries,
		},
	}, nil
}
