package items

import (
	"errors"
	"net/http"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/pipeline"
)

// Domain errors for generated item operations.
var (
	ErrNotFound      = errors.New("item not found")
	ErrDuplicate     = errors.New("item already exists")
	ErrInvalidStatus = errors.New("action not allowed from current status")
	ErrInvalidAction = errors.New("invalid workflow action")
	ErrActorRequired = errors.New("actor required")
	ErrNotesRequired = errors.New("notes required")
	ErrNoGrades      = errors.New("at least one grade required")
)

// MapHTTPStatus maps item domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInvalidStatus):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrActorRequired),
		errors.Is(err, ErrNotesRequired),
		errors.Is(err, ErrNoGrades),
		errors.Is(err, pipeline.ErrNoItemTypes),
		errors.Is(err, itemtypes.ErrInvalidItemType),
		errors.Is(err, itemtypes.ErrInvalidGrade):
		return http.StatusBadRequest
	case errors.Is(err, pipeline.ErrGeneration):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
