package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-ingest/pkg/document"
	"github.com/artem13815/resume-ingest/pkg/profile/heuristic"
)

type fakePDF struct {
	text string
	err  error
}

func (f *fakePDF) Extract(_ []byte) (string, error) { return f.text, f.err }

type memStore struct {
	docs []document.Document
	err  error
}

func (m *memStore) Create(_ context.Context, doc document.Document) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.docs = append(m.docs, doc)
	return doc.ID, nil
}

const resumeText = "John Doe, 5 years of experience, Python and AWS in fintech"

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func newTestService(pdf *fakePDF, store *memStore) *Service {
	return NewService(pdf, heuristic.New(), store, nil)
}

func TestIngestHappyPath(t *testing.T) {
	store := &memStore{}
	svc := newTestService(&fakePDF{text: resumeText}, store)

	res, err := svc.Ingest(context.Background(), RawSubmission{
		FileURL:     "https://site/docs/resume.pdf",
		FileContent: b64("%PDF-fake"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.DocumentID)
	assert.False(t, res.External)
	assert.Equal(t, len(resumeText), res.ExtractedTextLength)
	assert.GreaterOrEqual(t, res.Candidate.TechnicalSkillsCount, 2)
	assert.InDelta(t, 5.0, res.Candidate.TotalExperienceYears, 0.001)

	require.Len(t, store.docs, 1)
	doc := store.docs[0]
	assert.Equal(t, res.DocumentID, doc.ID)
	assert.Equal(t, "resume.pdf", doc.Metadata.Filename)
	assert.Equal(t, "heuristic", doc.Metadata.ExtractionMethod)
	assert.False(t, doc.Metadata.AIProcessed)
}

func TestIngestMissingContent(t *testing.T) {
	svc := newTestService(&fakePDF{}, &memStore{})
	_, err := svc.Ingest(context.Background(), RawSubmission{FileContent: "  "})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidPayload, kind)
}

func TestIngestBadBase64(t *testing.T) {
	svc := newTestService(&fakePDF{}, &memStore{})
	_, err := svc.Ingest(context.Background(), RawSubmission{FileContent: "!!! not base64 !!!"})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindDecodeFailure, kind)
}

func TestIngestPDFParseFailure(t *testing.T) {
	svc := newTestService(&fakePDF{err: errors.New("open pdf: broken xref")}, &memStore{})
	_, err := svc.Ingest(context.Background(), RawSubmission{FileContent: b64("junk")})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindPDFParseFailure, kind)
}

func TestIngestEmptyTextIsNotAFailure(t *testing.T) {
	store := &memStore{}
	svc := newTestService(&fakePDF{text: ""}, store)

	res, err := svc.Ingest(context.Background(), RawSubmission{FileContent: b64("%PDF-fake")})
	require.NoError(t, err)
	assert.Zero(t, res.ExtractedTextLength)
	assert.Zero(t, res.Candidate.TechnicalSkillsCount)
	require.Len(t, store.docs, 1)
}

func TestIngestStoreFailure(t *testing.T) {
	svc := newTestService(&fakePDF{text: resumeText}, &memStore{err: errors.New("quota exceeded")})
	_, err := svc.Ingest(context.Background(), RawSubmission{FileContent: b64("%PDF-fake")})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindStoreFailure, kind)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestIngestIdenticalSubmissionsGetDistinctDocuments(t *testing.T) {
	store := &memStore{}
	svc := newTestService(&fakePDF{text: resumeText}, store)

	sub := RawSubmission{FileContent: b64("%PDF-fake")}
	a, err := svc.Ingest(context.Background(), sub)
	require.NoError(t, err)
	b, err := svc.Ingest(context.Background(), sub)
	require.NoError(t, err)

	assert.NotEqual(t, a.DocumentID, b.DocumentID)
	assert.Len(t, store.docs, 2)
}
