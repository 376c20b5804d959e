package enemy

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/logger"
	"github.com/osse101/scribble/internal/metrics"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/utils"
)

// AddEnemyRequest logs an enemy encounter
type AddEnemyRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"required,notblank,max=1000"`
}

// Service handles the enemy log
type Service interface {
	Add(ctx context.Context, req AddEnemyRequest) (*domain.Enemy, error)
	Search(ctx context.Context, name string) ([]domain.Enemy, error)
	List(ctx context.Context) ([]domain.Enemy, error)
}

type service struct {
	repo repository.Enemies
}

// NewService creates a new enemy service
func NewService(repo repository.Enemies) Service {
	return &service{repo: repo}
}

// Add appends an enemy. Repeated names are kept as separate entries.
func (s *service) Add(ctx context.Context, req AddEnemyRequest) (*domain.Enemy, error) {
	log := logger.FromContext(ctx)

	enemy := domain.Enemy{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if enemy.Name == "" {
		log.Warn(LogMsgEnemyRejected, "reason", ErrMsgNameRequired)
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if enemy.Description == "" {
		log.Warn(LogMsgEnemyRejected, "enemy", enemy.Name, "reason", ErrMsgDescriptionRequired)
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDescriptionRequired)
	}

	enemies, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	enemies = append(enemies, enemy)
	if err := s.repo.Save(ctx, enemies); err != nil {
		log.Error(LogMsgEnemySaveFail, "error", err)
		return nil, fmt.Errorf(ErrMsgSaveFailed, err)
	}

	metrics.EnemiesLogged.Inc()
	log.Info(LogMsgEnemyLogged, "enemy", enemy.Name, "entries", len(enemies))
	return &enemy, nil
}

// Search returns every logged enemy with the given name
func (s *service) Search(ctx context.Context, name string) ([]domain.Enemy, error) {
	enemies, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterByName(enemies, name), nil
}

// List returns the enemy log in the order entries were added
func (s *service) List(ctx context.Context) ([]domain.Enemy, error) {
	return s.load(ctx)
}

func (s *service) load(ctx context.Context) ([]domain.Enemy, error) {
	enemies, err := s.repo.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEnemyLoadFail, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadFailed, err)
	}
	return enemies, nil
}
