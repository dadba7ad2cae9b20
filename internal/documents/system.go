package documents

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/pkg/pagination"
)

// DownloadResult carries a blob stream with its metadata for HTTP delivery.
type DownloadResult struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
	SizeBytes   int64
}

// System defines the public contract for curriculum document operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Download(ctx context.Context, id uuid.UUID) (*DownloadResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
