package documents

import (
	"net/url"
	"strconv"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/pkg/query"
	"github.com/seojin-dev/quill/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("grade_level", "GradeLevel").
	Project("storage_key", "StorageKey").
	Project("status", "Status").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. Status, GradeLevel, and ContentType use exact
// matching. Filename uses case-insensitive contains matching.
type Filters struct {
	Status      *string          `json:"status,omitempty"`
	Filename    *string          `json:"filename,omitempty"`
	GradeLevel  *itemtypes.Grade `json:"grade_level,omitempty"`
	ContentType *string          `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType)

	if f.GradeLevel != nil {
		b.WhereEquals("GradeLevel", int(*f.GradeLevel))
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if g := values.Get("grade_level"); g != "" {
		if n, err := strconv.Atoi(g); err == nil {
			if grade, err := itemtypes.ParseGrade(n); err == nil {
				f.GradeLevel = &grade
			}
		}
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.GradeLevel,
		&d.StorageKey,
		&d.Status,
		&d.UploadedAt,
		&d.UpdatedAt,
	)
	return d, err
}
