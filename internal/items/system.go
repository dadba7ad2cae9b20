package items

import (
	"context"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/pkg/pagination"
)

// System defines the public contract for generated item operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Item], error)

	Find(ctx context.Context, id uuid.UUID) (*Item, error)

	// Generate runs the pipeline for every requested grade and persists
	// one pending item record per grade in a single transaction.
	Generate(ctx context.Context, cmd GenerateCommand) ([]Item, error)

	// Apply executes a workflow action: the status change and its audit
	// entry commit atomically, or neither does.
	Apply(ctx context.Context, id uuid.UUID, action Action, cmd ActionCommand) (*Item, error)

	// History returns the item's audit trail in insertion order.
	History(ctx context.Context, id uuid.UUID) ([]HistoryEntry, error)
}
