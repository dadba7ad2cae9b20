// Package retrieval selects curriculum passages relevant to an item
// generation request for inclusion in generation prompts.
package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/passages"
)

// Request identifies the curriculum scope to retrieve context for.
type Request struct {
	DocumentIDs []uuid.UUID
	ItemType    itemtypes.ItemType
	GradeLevel  itemtypes.Grade
}

// Context is the retrieved curriculum material for a generation request.
// References lists the source document IDs that contributed passages.
// Text is the joined passage content formatted for prompt inclusion.
type Context struct {
	Passages   []passages.Passage `json:"passages"`
	References []uuid.UUID        `json:"references"`
	Text       string             `json:"text"`
}

// Empty reports whether no passages were retrieved.
func (c *Context) Empty() bool {
	return len(c.Passages) == 0
}

// System retrieves grade-filtered curriculum context for item generation.
type System interface {
	Extract(ctx context.Context, req Request) (*Context, error)
}

type system struct {
	passages passages.System
	logger   *slog.Logger
	limit    int
}

// New creates a retrieval system over the passage store.
// limit caps the number of passages included in a context.
func New(passageSystem passages.System, logger *slog.Logger, limit int) System {
	return &system{
		passages: passageSystem,
		logger:   logger.With("system", "retrieval"),
		limit:    limit,
	}
}

// Extract fetches passages for the requested documents and grade, keeps
// those relevant to the item type, and assembles the prompt context.
// An empty document list yields an empty context. Lookup failures degrade
// to an empty context rather than aborting generation.
func (s *system) Extract(ctx context.Context, req Request) (*Context, error) {
	if len(req.DocumentIDs) == 0 {
		return &Context{Passages: []passages.Passage{}, References: []uuid.UUID{}}, nil
	}

	found, err := s.passages.ListForDocuments(ctx, req.DocumentIDs, req.GradeLevel)
	if err != nil {
		s.logger.Warn(
			"passage lookup failed, continuing without context",
			"item_type", req.ItemType,
			"grade", req.GradeLevel,
			"error", err,
		)
		return &Context{Passages: []passages.Passage{}, References: []uuid.UUID{}}, nil
	}

	relevant := filterRelevant(found, req.ItemType)
	if len(relevant) > s.limit {
		relevant = relevant[:s.limit]
	}

	result := &Context{
		Passages:   relevant,
		References: collectReferences(relevant),
		Text:       joinContent(relevant),
	}

	s.logger.InfoContext(
		ctx, "context extracted",
		"item_type", req.ItemType,
		"grade", req.GradeLevel,
		"passages", len(relevant),
	)

	return result, nil
}

// typeKeywords biases passage selection toward material matching each
// measure. When nothing matches, the unfiltered set is used.
var typeKeywords = map[itemtypes.ItemType][]string{
	itemtypes.LNF:  {"letter", "alphabet", "uppercase", "lowercase"},
	itemtypes.PSF:  {"phoneme", "sound", "segment", "syllable"},
	itemtypes.NWF:  {"decode", "nonsense", "phonics", "blend"},
	itemtypes.WRF:  {"word", "sight", "read", "vocabulary"},
	itemtypes.ORF:  {"fluency", "passage", "reading", "story"},
	itemtypes.MAZE: {"comprehension", "context", "meaning", "sentence"},
}

func filterRelevant(found []passages.Passage, t itemtypes.ItemType) []passages.Passage {
	keywords := typeKeywords[t]
	if len(keywords) == 0 {
		return found
	}

	matched := make([]passages.Passage, 0, len(found))
	for _, p := range found {
		content := strings.ToLower(p.Content)
		for _, kw := range keywords {
			if strings.Contains(content, kw) {
				matched = append(matched, p)
				break
			}
		}
	}

	if len(matched) == 0 {
		return found
	}
	return matched
}

func collectReferences(found []passages.Passage) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(found))
	refs := make([]uuid.UUID, 0, len(found))
	for _, p := range found {
		if seen[p.DocumentID] {
			continue
		}
		seen[p.DocumentID] = true
		refs = append(refs, p.DocumentID)
	}
	return refs
}

func joinContent(found []passages.Passage) string {
	if len(found) == 0 {
		return ""
	}
	parts := make([]string, len(found))
	for i, p := range found {
		parts[i] = p.Content
	}
	return strings.Join(parts, "\n\n")
}
