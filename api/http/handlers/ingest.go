package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-ingest/api/http/presenter"
	"github.com/artem13815/resume-ingest/pkg/ingest"
)

// IngestResponse is the success envelope of the ingestion endpoint.
type IngestResponse struct {
	Status              string               `json:"status"`
	FileURL             string               `json:"file_url"`
	External            bool                 `json:"external"`
	ExtractedTextLength int                  `json:"extracted_text_length"`
	DocumentID          string               `json:"cosmos_document_id"`
	CandidateInfo       ingest.CandidateInfo `json:"candidate_info"`
	Message             string               `json:"message"`
}

type IngestHandler struct {
	svc *ingest.Service
}

func NewIngestHandler(svc *ingest.Service) *IngestHandler {
	return &IngestHandler{svc: svc}
}

// Ingest accepts a base64-encoded PDF resume, runs the extraction
// pipeline and persists the normalized candidate document.
// @Summary Ingest a resume
// @Description Decodes a base64 PDF, extracts text, derives a candidate profile and stores the document.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   body body ingest.RawSubmission true "Upload payload"
// @Success 200 {object} handlers.IngestResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/ingest [post]
func (h *IngestHandler) Ingest(c *fiber.Ctx) error {
	var sub ingest.RawSubmission
	if err := c.BodyParser(&sub); err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}

	res, err := h.svc.Ingest(c.Context(), sub)
	if err != nil {
		// The whole taxonomy renders as 400, store failures included;
		// clients distinguish causes by message text.
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	return presenter.JSON(c, http.StatusOK, IngestResponse{
		Status:              "success",
		FileURL:             res.FileURL,
		External:            res.External,
		ExtractedTextLength: res.ExtractedTextLength,
		DocumentID:          res.DocumentID,
		CandidateInfo:       res.Candidate,
		Message:             "resume processed and stored",
	})
}
