package passages

import (
	"context"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
)

// System defines the public contract for passage storage and lookup.
type System interface {
	// StoreForDocument chunks the extracted text and replaces any existing
	// passages for the document, marking the document processed.
	// Returns the number of stored chunks.
	StoreForDocument(ctx context.Context, documentID uuid.UUID, grade itemtypes.Grade, text string) (int, error)

	// ListForDocuments returns passages for the given documents at the given
	// grade, ordered by document and chunk index.
	ListForDocuments(ctx context.Context, documentIDs []uuid.UUID, grade itemtypes.Grade) ([]Passage, error)

	// DeleteForDocument removes all passages belonging to a document.
	DeleteForDocument(ctx context.Context, documentID uuid.UUID) error
}
