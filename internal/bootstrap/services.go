package bootstrap

import (
	"github.com/osse101/scribble/internal/config"
	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/enemy"
	"github.com/osse101/scribble/internal/inventory"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/search"
	"github.com/osse101/scribble/internal/server"
	"github.com/osse101/scribble/internal/stats"
)

// App bundles everything a shell needs to run operations
type App struct {
	Config       *config.Config
	Repositories *Repositories
	Services     server.Services
}

// NewApp wires the services over the data directory named in cfg
func NewApp(cfg *config.Config) *App {
	if cfg.DataDir == config.MemoryDataDir {
		return NewAppWithStore(cfg, repository.NewMemStore())
	}
	return NewAppWithStore(cfg, repository.NewFileStore(cfg.DataDir))
}

// NewAppWithStore wires the services over an arbitrary blob store
func NewAppWithStore(cfg *config.Config, blobs repository.BlobStore) *App {
	repos := InitializeRepositories(blobs)
	return &App{
		Config:       cfg,
		Repositories: repos,
		Services: server.Services{
			Inventory: inventory.NewService(repos.Inventory),
			Enemies:   enemy.NewService(repos.Enemies),
			Stats:     stats.NewService(repos.Stats),
			Search:    search.NewService(repos.Inventory, repos.Enemies, repos.Stats),
			Dice:      dice.NewRoller(nil),
		},
	}
}
