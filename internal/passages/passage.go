// Package passages stores curriculum text chunks extracted from uploaded
// documents and serves them to context retrieval.
package passages

import (
	"time"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
)

// Passage is a single curriculum text chunk tied to its source document.
type Passage struct {
	ID         uuid.UUID       `json:"id"`
	DocumentID uuid.UUID       `json:"document_id"`
	GradeLevel itemtypes.Grade `json:"grade_level"`
	ChunkIndex int             `json:"chunk_index"`
	Page       int             `json:"page"`
	Content    string          `json:"content"`
	CreatedAt  time.Time       `json:"created_at"`
}
