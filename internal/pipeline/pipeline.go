// Package pipeline executes the item generation pipeline: curriculum
// context retrieval, structured item generation, concurrent quality
// validation, and score aggregation. Persistence is the caller's concern.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/prompts"
	"github.com/seojin-dev/quill/internal/retrieval"
	"github.com/seojin-dev/quill/internal/vocabulary"
	"github.com/seojin-dev/quill/pkg/completion"
)

// Request describes one grade-level generation run. ReferenceText and
// CustomInstructions are caller-supplied free text appended to the
// generation prompt as given.
type Request struct {
	Grade              itemtypes.Grade
	ItemTypes          []itemtypes.ItemType
	DocumentIDs        []uuid.UUID
	ReferenceText      string
	CustomInstructions string
	Temperature        *float64
}

// Outcome is the result of one grade-level pipeline run.
// Types lists the item types actually generated; Omitted lists requested
// types the model failed to produce. ContextReferences identifies the
// curriculum documents that contributed retrieval context.
type Outcome struct {
	Grade             itemtypes.Grade
	Bundle            itemtypes.Bundle
	Types             []itemtypes.ItemType
	Omitted           []itemtypes.ItemType
	Score             QualityScore
	ComponentScores   map[itemtypes.ItemType]QualityScore
	ContextReferences []uuid.UUID
}

// System runs the generation pipeline.
type System interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
}

// Config carries pipeline tuning parameters.
type Config struct {
	ValidatorTimeout time.Duration
	Temperature      float64
}

type system struct {
	completion completion.Service
	prompts    prompts.System
	retrieval  retrieval.System
	vocabulary *vocabulary.Loader
	logger     *slog.Logger
	cfg        Config
}

// New creates a pipeline system from its collaborating services.
func New(
	svc completion.Service,
	promptSystem prompts.System,
	retrievalSystem retrieval.System,
	vocab *vocabulary.Loader,
	logger *slog.Logger,
	cfg Config,
) System {
	return &system{
		completion: svc,
		prompts:    promptSystem,
		retrieval:  retrievalSystem,
		vocabulary: vocab,
		logger:     logger.With("system", "pipeline"),
		cfg:        cfg,
	}
}

// Execute runs the full pipeline for one grade: retrieve context, generate
// the bundle, fan out validators per generated type, and aggregate scores.
// Generation failures are hard errors; validator failures degrade to
// neutral default scores flagged as defaulted.
func (s *system) Execute(ctx context.Context, req Request) (*Outcome, error) {
	contexts, references := s.retrieveContexts(ctx, req)

	bundle, omitted, err := s.generate(ctx, req, contexts)
	if err != nil {
		return nil, err
	}

	for _, t := range omitted {
		s.logger.WarnContext(
			ctx, "requested item type not generated",
			"item_type", t,
			"grade", req.Grade,
		)
	}

	generated := bundle.Types()
	components := s.validateAll(ctx, req.Grade, bundle, generated)
	score := Aggregate(components, generated)

	s.logger.InfoContext(
		ctx, "pipeline complete",
		"grade", req.Grade,
		"types", len(generated),
		"omitted", len(omitted),
		"overall", score.Overall,
		"defaulted", score.WasDefaulted,
	)

	return &Outcome{
		Grade:             req.Grade,
		Bundle:            *bundle,
		Types:             generated,
		Omitted:           omitted,
		Score:             score,
		ComponentScores:   components,
		ContextReferences: references,
	}, nil
}

// retrieveContexts gathers curriculum context per requested type.
// Retrieval never fails the pipeline; missing context yields empty sections.
func (s *system) retrieveContexts(
	ctx context.Context,
	req Request,
) (map[itemtypes.ItemType]*retrieval.Context, []uuid.UUID) {
	contexts := make(map[itemtypes.ItemType]*retrieval.Context, len(req.ItemTypes))

	seen := make(map[uuid.UUID]bool)
	var references []uuid.UUID

	for _, t := range req.ItemTypes {
		result, err := s.retrieval.Extract(ctx, retrieval.Request{
			DocumentIDs: req.DocumentIDs,
			ItemType:    t,
			GradeLevel:  req.Grade,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "context retrieval failed", "item_type", t, "error", err)
			continue
		}

		contexts[t] = result
		for _, ref := range result.References {
			if !seen[ref] {
				seen[ref] = true
				references = append(references, ref)
			}
		}
	}

	if references == nil {
		references = []uuid.UUID{}
	}

	return contexts, references
}
