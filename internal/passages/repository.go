package passages

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/pkg/query"
	"github.com/seojin-dev/quill/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "passages", "p").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("grade_level", "GradeLevel").
	Project("chunk_index", "ChunkIndex").
	Project("page", "Page").
	Project("content", "Content").
	Project("created_at", "CreatedAt")

var defaultSort = []query.SortField{
	{Field: "DocumentID"},
	{Field: "ChunkIndex"},
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a passage repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "passages"),
	}
}

func (r *repo) StoreForDocument(
	ctx context.Context,
	documentID uuid.UUID,
	grade itemtypes.Grade,
	text string,
) (int, error) {
	chunks := Split(text)
	if len(chunks) == 0 {
		return 0, ErrEmptyText
	}

	count, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int, error) {
		if _, err := tx.ExecContext(
			ctx,
			"DELETE FROM passages WHERE document_id = $1",
			documentID,
		); err != nil {
			return 0, fmt.Errorf("clear passages: %w", err)
		}

		const insert = `
			INSERT INTO passages(id, document_id, grade_level, chunk_index, page, content)
			VALUES ($1, $2, $3, $4, $5, $6)`

		for i, chunk := range chunks {
			if _, err := tx.ExecContext(
				ctx, insert,
				uuid.New(), documentID, int(grade), i, chunk.Page, chunk.Content,
			); err != nil {
				return 0, fmt.Errorf("insert passage %d: %w", i, err)
			}
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE documents SET status = 'processed', updated_at = now() WHERE id = $1",
			documentID,
		); err != nil {
			return 0, fmt.Errorf("mark document processed: %w", err)
		}

		return len(chunks), nil
	})

	if err != nil {
		return 0, err
	}

	r.logger.Info("passages stored", "document_id", documentID, "chunks", count)
	return count, nil
}

func (r *repo) ListForDocuments(
	ctx context.Context,
	documentIDs []uuid.UUID,
	grade itemtypes.Grade,
) ([]Passage, error) {
	if len(documentIDs) == 0 {
		return []Passage{}, nil
	}

	ids := make([]any, len(documentIDs))
	for i, id := range documentIDs {
		ids[i] = id
	}

	q, args := query.
		NewBuilder(projection, defaultSort...).
		WhereIn("DocumentID", ids).
		WhereEquals("GradeLevel", int(grade)).
		Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanPassage)
	if err != nil {
		return nil, fmt.Errorf("query passages: %w", err)
	}

	return results, nil
}

func (r *repo) DeleteForDocument(ctx context.Context, documentID uuid.UUID) error {
	if _, err := r.db.ExecContext(
		ctx,
		"DELETE FROM passages WHERE document_id = $1",
		documentID,
	); err != nil {
		return fmt.Errorf("delete passages: %w", err)
	}
	return nil
}

func scanPassage(s repository.Scanner) (Passage, error) {
	var p Passage
	err := s.Scan(
		&p.ID,
		&p.DocumentID,
		&p.GradeLevel,
		&p.ChunkIndex,
		&p.Page,
		&p.Content,
		&p.CreatedAt,
	)
	return p, err
}
