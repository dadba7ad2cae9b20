package api

import (
	"github.com/seojin-dev/quill/internal/config"
	"github.com/seojin-dev/quill/internal/infrastructure"
	"github.com/seojin-dev/quill/pkg/completion"
	"github.com/seojin-dev/quill/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and
// the language model client.
type Runtime struct {
	*infrastructure.Infrastructure
	Completion completion.Service
	Pagination pagination.Config
	Pipeline   config.PipelineConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Completion: completion.New(&cfg.Completion),
		Pagination: cfg.API.Pagination,
		Pipeline:   cfg.Pipeline,
	}
}
