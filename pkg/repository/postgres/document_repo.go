package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-ingest/pkg/document"
)

// DocumentRepository persists assembled candidate documents as JSONB.
// The searchable text is indexed with a GIN index so downstream full-text
// consumers can query it directly.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	r := &DocumentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DocumentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS candidate_documents (
	id UUID PRIMARY KEY,
	partition_key TEXT NOT NULL,
	external BOOLEAN NOT NULL,
	doc JSONB NOT NULL,
	searchable_text TEXT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS candidate_documents_fts
	ON candidate_documents USING GIN (to_tsvector('simple', searchable_text));
CREATE INDEX IF NOT EXISTS candidate_documents_partition
	ON candidate_documents (partition_key, uploaded_at DESC);
`)
	return err
}

// Create inserts one document and returns its assigned identifier.
// Always an insert: the ingestion pipeline never updates records.
func (r *DocumentRepository) Create(ctx context.Context, doc document.Document) (string, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return "", fmt.Errorf("document id: %w", err)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	uploadedAt, err := time.Parse(time.RFC3339, doc.Metadata.UploadTimestamp)
	if err != nil {
		uploadedAt = time.Now().UTC()
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO candidate_documents (id, partition_key, external, doc, searchable_text, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, doc.PartitionKey, doc.External, payload, doc.SearchableText, uploadedAt)
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetByID loads a stored document, mostly for operators and tests.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (document.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT doc FROM candidate_documents WHERE id = $1
`, id)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, pgx.ErrNoRows
		}
		return document.Document{}, err
	}
	var doc document.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return document.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// SearchIDs runs a plain full-text query over searchable_text and returns
// matching document ids, newest first.
func (r *DocumentRepository) SearchIDs(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id FROM candidate_documents
WHERE to_tsvector('simple', searchable_text) @@ plainto_tsquery('simple', $1)
ORDER BY uploaded_at DESC
LIMIT $2
`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id.String())
	}
	return out, rows.Err()
}
