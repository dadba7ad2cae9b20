package api

import (
	"github.com/seojin-dev/quill/internal/documents"
	"github.com/seojin-dev/quill/internal/items"
	"github.com/seojin-dev/quill/internal/passages"
	"github.com/seojin-dev/quill/internal/pipeline"
	"github.com/seojin-dev/quill/internal/prompts"
	"github.com/seojin-dev/quill/internal/retrieval"
	"github.com/seojin-dev/quill/internal/vocabulary"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Items     items.System
	Documents documents.System
	Prompts   prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	db := runtime.Database.Connection()

	passageSystem := passages.New(db, runtime.Logger)

	docsSystem := documents.New(
		db,
		runtime.Storage,
		passageSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	promptsSystem := prompts.New(db, runtime.Logger, runtime.Pagination)

	retrievalSystem := retrieval.New(
		passageSystem,
		runtime.Logger,
		runtime.Pipeline.ContextLimit,
	)

	vocab, err := vocabulary.NewLoader()
	if err != nil {
		return nil, err
	}

	pipelineSystem := pipeline.New(
		runtime.Completion,
		promptsSystem,
		retrievalSystem,
		vocab,
		runtime.Logger,
		pipeline.Config{
			ValidatorTimeout: runtime.Pipeline.ValidatorTimeoutDuration(),
			Temperature:      runtime.Pipeline.Temperature,
		},
	)

	itemsSystem := items.New(db, pipelineSystem, runtime.Logger, runtime.Pagination)

	return &Domain{
		Items:     itemsSystem,
		Documents: docsSystem,
		Prompts:   promptsSystem,
	}, nil
}
