package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-ingest/pkg/document"
	"github.com/artem13815/resume-ingest/pkg/ingest"
	"github.com/artem13815/resume-ingest/pkg/profile/heuristic"
)

type stubPDF struct{ text string }

func (s *stubPDF) Extract(_ []byte) (string, error) { return s.text, nil }

type stubStore struct{ created []document.Document }

func (s *stubStore) Create(_ context.Context, doc document.Document) (string, error) {
	s.created = append(s.created, doc)
	return doc.ID, nil
}

func newTestApp(text string) (*fiber.App, *stubStore) {
	store := &stubStore{}
	svc := ingest.NewService(&stubPDF{text: text}, heuristic.New(), store, nil)
	app := fiber.New()
	app.Post("/api/v1/resume/ingest", NewIngestHandler(svc).Ingest)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/ingest", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestIngestEndpointSuccess(t *testing.T) {
	app, store := newTestApp("John Doe, 5 years experience, Python, AWS")

	resp := postJSON(t, app, map[string]any{
		"FileUrl":     "https://site/docs/resume.pdf",
		"FileContent": base64.StdEncoding.EncodeToString([]byte("%PDF-fake")),
		"External":    false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body IngestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.False(t, body.External)
	assert.NotEmpty(t, body.DocumentID)
	assert.GreaterOrEqual(t, body.CandidateInfo.TechnicalSkillsCount, 2)
	require.Len(t, store.created, 1)
}

func TestIngestEndpointMissingFileContent(t *testing.T) {
	app, store := newTestApp("whatever")

	resp := postJSON(t, app, map[string]any{"FileUrl": "resume.pdf"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "FileContent")
	assert.Empty(t, store.created)
}

func TestIngestEndpointMalformedJSON(t *testing.T) {
	app, _ := newTestApp("whatever")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/ingest", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
}

func TestIngestEndpointBadBase64(t *testing.T) {
	app, _ := newTestApp("whatever")

	resp := postJSON(t, app, map[string]any{"FileContent": "!!! not base64 !!!"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
