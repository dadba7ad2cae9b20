// Package documents implements the curriculum document domain: upload,
// metadata management, blob storage integration, and passage extraction.
package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
)

// Document statuses.
const (
	StatusUploaded  = "uploaded"
	StatusProcessed = "processed"
)

// Document represents an uploaded curriculum document with its metadata
// and blob storage reference.
type Document struct {
	ID          uuid.UUID       `json:"id"`
	Filename    string          `json:"filename"`
	ContentType string          `json:"content_type"`
	SizeBytes   int64           `json:"size_bytes"`
	PageCount   *int            `json:"page_count"`
	GradeLevel  itemtypes.Grade `json:"grade_level"`
	StorageKey  string          `json:"storage_key"`
	Status      string          `json:"status"`
	UploadedAt  time.Time       `json:"uploaded_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a curriculum
// document. Data holds the raw file bytes. Text optionally carries the
// extracted document text; when present it is chunked into passages.
// PageCount is extracted by the caller for PDFs; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	GradeLevel  itemtypes.Grade
	PageCount   *int
	Text        string
}
