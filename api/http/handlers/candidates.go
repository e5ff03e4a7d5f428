package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/artem13815/resume-ingest/api/http/presenter"
	"github.com/artem13815/resume-ingest/pkg/document"
)

// DocumentReader is the read-side port over stored candidate documents.
type DocumentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (document.Document, error)
	SearchIDs(ctx context.Context, query string, limit int) ([]string, error)
}

type CandidatesHandler struct {
	docs DocumentReader
}

func NewCandidatesHandler(docs DocumentReader) *CandidatesHandler {
	return &CandidatesHandler{docs: docs}
}

// Get returns one stored candidate document.
// @Summary Fetch a stored candidate document
// @Tags    candidates
// @Produce json
// @Param   id path string true "Document id"
// @Success 200 {object} document.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid document id")
	}
	doc, err := h.docs.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return presenter.Error(c, http.StatusNotFound, "document not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, doc)
}

// Search runs a full-text query over the searchable text of stored
// documents and returns matching ids.
// @Summary Full-text search over candidate documents
// @Tags    candidates
// @Produce json
// @Param   q     query string true  "Query terms"
// @Param   limit query int    false "Max results (default 50)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /candidates/search [get]
func (h *CandidatesHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return presenter.Error(c, http.StatusBadRequest, "q is required")
	}
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	ids, err := h.docs.SearchIDs(c.Context(), q, limit)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	if ids == nil {
		ids = []string{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"ids": ids, "count": len(ids)})
}
