// Package items implements the generated item domain: persistence of
// pipeline results, listing and lookup, and the human approval workflow
// with its audit history.
package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/pipeline"
)

// Item statuses.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRevision = "revision"
)

// Item is a persisted grade-level item set produced by the generation
// pipeline, carrying its bundle payload, aggregated quality score, and
// workflow state.
type Item struct {
	ID                uuid.UUID              `json:"id"`
	GradeLevel        itemtypes.Grade        `json:"grade_level"`
	ItemTypes         []itemtypes.ItemType   `json:"item_types"`
	Payload           itemtypes.Bundle       `json:"payload"`
	Score             pipeline.QualityScore  `json:"quality_score"`
	ScoreOverall      int                    `json:"score_overall"`
	WasDefaulted      bool                   `json:"was_defaulted"`
	ContextReferences []uuid.UUID            `json:"context_references"`
	Status            string                 `json:"status"`
	Notes             *string                `json:"notes"`
	ReviewedBy        *string                `json:"reviewed_by"`
	ReviewedAt        *time.Time             `json:"reviewed_at"`
	ApprovedAt        *time.Time             `json:"approved_at"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// GenerateCommand carries the parameters for a generation request.
// One item record is produced per grade. ReferenceText and
// CustomInstructions are free-text material appended to the generation
// prompt verbatim.
type GenerateCommand struct {
	Grades             []itemtypes.Grade    `json:"grades"`
	ItemTypes          []itemtypes.ItemType `json:"item_types"`
	DocumentIDs        []uuid.UUID          `json:"document_ids,omitempty"`
	ReferenceText      string               `json:"reference_text,omitempty"`
	CustomInstructions string               `json:"custom_instructions,omitempty"`
	Temperature        *float64             `json:"temperature,omitempty"`
}

// ActionCommand carries the actor and optional notes for a workflow action.
type ActionCommand struct {
	Actor string  `json:"actor"`
	Notes *string `json:"notes,omitempty"`
}

// HistoryEntry is one audit record of a workflow action applied to an item.
// QualityScoreSnapshot captures the record's quality score at the moment
// the action was taken.
type HistoryEntry struct {
	ID                   uuid.UUID             `json:"id"`
	ItemID               uuid.UUID             `json:"item_id"`
	Action               Action                `json:"action"`
	FromStatus           string                `json:"from_status"`
	ToStatus             string                `json:"to_status"`
	Actor                string                `json:"actor"`
	Notes                *string               `json:"notes"`
	QualityScoreSnapshot pipeline.QualityScore `json:"quality_score_snapshot"`
	CreatedAt            time.Time             `json:"created_at"`
}
