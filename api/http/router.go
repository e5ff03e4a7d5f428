package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-ingest/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, ingest *handlers.IngestHandler, candidates *handlers.CandidatesHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Resume ingestion pipeline
	rg := v1.Group("/resume")
	rg.Post("/ingest", ingest.Ingest)

	// Read side over stored candidate documents
	cg := v1.Group("/candidates")
	cg.Get("/search", candidates.Search)
	cg.Get("/:id", candidates.Get)
}
