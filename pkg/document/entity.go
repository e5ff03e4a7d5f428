package document

import (
	"context"

	"github.com/artem13815/resume-ingest/pkg/profile"
)

// Fixed values stamped on every persisted document.
const (
	PartitionKey     = "resumes"
	SchemaVersion    = "3.0"
	Source           = "resume-upload"
	ProcessingMethod = "pdf-text-extraction"
	ContentType      = "application/pdf"
)

// Metadata carries request provenance and processing details.
type Metadata struct {
	FileURL          string `json:"fileUrl"`
	Filename         string `json:"filename"`
	OriginalContent  string `json:"originalContent"`
	ContentLength    int    `json:"contentLength"`
	UploadTimestamp  string `json:"uploadTimestamp"` // UTC, ISO-8601
	Source           string `json:"source"`
	ProcessingMethod string `json:"processingMethod"`
	ExtractionMethod string `json:"extractionMethod"`
	SchemaVersion    string `json:"schemaVersion"`
	ContentType      string `json:"contentType"`
	AIProcessed      bool   `json:"aiProcessed"`
}

// Document is the normalized candidate record handed to the store exactly
// once per request. Immutable after assembly.
type Document struct {
	ID             string               `json:"id"`
	PartitionKey   string               `json:"partitionKey"`
	External       bool                 `json:"external"`
	PersonalInfo   profile.PersonalInfo `json:"personalInfo"`
	Skills         profile.Skills       `json:"skills"`
	Experience     profile.Experience   `json:"experience"`
	Education      []string             `json:"education"`
	Certifications []string             `json:"certifications"`
	SearchableText string               `json:"searchableText"`
	Metadata       Metadata             `json:"metadata"`
}

// Store is the document-store port: create one document, report its
// assigned identifier. Every call creates a new record, never an update.
type Store interface {
	Create(ctx context.Context, doc Document) (string, error)
}
