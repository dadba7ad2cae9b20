package items

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/pkg/query"
	"github.com/seojin-dev/quill/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "items", "i").
	Project("id", "ID").
	Project("grade_level", "GradeLevel").
	Project("item_types", "ItemTypes").
	Project("payload", "Payload").
	Project("quality_score", "QualityScore").
	Project("score_overall", "ScoreOverall").
	Project("was_defaulted", "WasDefaulted").
	Project("context_references", "ContextReferences").
	Project("status", "Status").
	Project("notes", "Notes").
	Project("reviewed_by", "ReviewedBy").
	Project("reviewed_at", "ReviewedAt").
	Project("approved_at", "ApprovedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var historyProjection = query.
	NewProjectionMap("public", "item_workflow_history", "h").
	Project("id", "ID").
	Project("item_id", "ItemID").
	Project("action", "Action").
	Project("from_status", "FromStatus").
	Project("to_status", "ToStatus").
	Project("actor", "Actor").
	Project("notes", "Notes").
	Project("quality_score", "QualityScoreSnapshot").
	Project("created_at", "CreatedAt")

// historySort orders audit entries oldest first.
var historySort = query.SortField{
	Field: "CreatedAt",
}

// Filters contains optional filtering criteria for item queries.
// Nil fields are ignored. ItemType matches records whose type list
// contains the given type.
type Filters struct {
	Status       *string             `json:"status,omitempty"`
	GradeLevel   *itemtypes.Grade    `json:"grade_level,omitempty"`
	ItemType     *itemtypes.ItemType `json:"item_type,omitempty"`
	MinScore     *int                `json:"min_score,omitempty"`
	MaxScore     *int                `json:"max_score,omitempty"`
	WasDefaulted *bool               `json:"was_defaulted,omitempty"`
	ReviewedBy   *string             `json:"reviewed_by,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("Status", f.Status).
		WhereCompare("ScoreOverall", ">=", f.MinScore).
		WhereCompare("ScoreOverall", "<=", f.MaxScore).
		WhereEquals("WasDefaulted", f.WasDefaulted).
		WhereEquals("ReviewedBy", f.ReviewedBy)

	if f.GradeLevel != nil {
		b.WhereEquals("GradeLevel", int(*f.GradeLevel))
	}

	if f.ItemType != nil {
		containment, _ := json.Marshal([]itemtypes.ItemType{*f.ItemType})
		b.WhereClause(
			fmt.Sprintf("%s @> $%%d", projection.Column("ItemTypes")),
			string(containment),
		)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if g := values.Get("grade_level"); g != "" {
		if n, err := strconv.Atoi(g); err == nil {
			if grade, err := itemtypes.ParseGrade(n); err == nil {
				f.GradeLevel = &grade
			}
		}
	}

	if t := values.Get("item_type"); t != "" {
		if parsed, err := itemtypes.ParseItemType(t); err == nil {
			f.ItemType = &parsed
		}
	}

	if v := values.Get("min_score"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinScore = &n
		}
	}

	if v := values.Get("max_score"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxScore = &n
		}
	}

	if v := values.Get("was_defaulted"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.WasDefaulted = &b
		}
	}

	if rb := values.Get("reviewed_by"); rb != "" {
		f.ReviewedBy = &rb
	}

	return f
}

func scanItem(s repository.Scanner) (Item, error) {
	var (
		i          Item
		typesJSON  []byte
		bundleJSON []byte
		scoreJSON  []byte
		refsJSON   []byte
	)

	if err := s.Scan(
		&i.ID,
		&i.GradeLevel,
		&typesJSON,
		&bundleJSON,
		&scoreJSON,
		&i.ScoreOverall,
		&i.WasDefaulted,
		&refsJSON,
		&i.Status,
		&i.Notes,
		&i.ReviewedBy,
		&i.ReviewedAt,
		&i.ApprovedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return Item{}, err
	}

	if err := json.Unmarshal(typesJSON, &i.ItemTypes); err != nil {
		return Item{}, fmt.Errorf("decode item types: %w", err)
	}
	if err := json.Unmarshal(bundleJSON, &i.Payload); err != nil {
		return Item{}, fmt.Errorf("decode payload: %w", err)
	}
	if err := json.Unmarshal(scoreJSON, &i.Score); err != nil {
		return Item{}, fmt.Errorf("decode quality score: %w", err)
	}
	if err := json.Unmarshal(refsJSON, &i.ContextReferences); err != nil {
		return Item{}, fmt.Errorf("decode context references: %w", err)
	}

	return i, nil
}

func scanHistory(s repository.Scanner) (HistoryEntry, error) {
	var (
		h            HistoryEntry
		snapshotJSON []byte
	)

	if err := s.Scan(
		&h.ID,
		&h.ItemID,
		&h.Action,
		&h.FromStatus,
		&h.ToStatus,
		&h.Actor,
		&h.Notes,
		&snapshotJSON,
		&h.CreatedAt,
	); err != nil {
		return HistoryEntry{}, err
	}

	if err := json.Unmarshal(snapshotJSON, &h.QualityScoreSnapshot); err != nil {
		return HistoryEntry{}, fmt.Errorf("decode score snapshot: %w", err)
	}

	return h, nil
}
