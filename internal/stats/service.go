package stats

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

// AdjustStatRequest moves a stat by Delta, creating it at zero first if needed
type AdjustStatRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Delta int    `json:"delta" validate:"min=-1000000,max=1000000"`
}

// SetStatRequest overwrites a stat's value
type SetStatRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Value int    `json:"value" validate:"min=-1000000,max=1000000"`
}

// Service defines the interface for character stat operations
type Service interface {
	Adjust(ctx context.Context, name string, delta int) (*domain.Stat, error)
	Set(ctx context.Context, name string, value int) (*domain.Stat, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Stat, error)
	Search(ctx context.Context, name string) ([]domain.Stat, error)
}

// service implements the Service interface
type service struct {
	repo repository.Stats
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{
		repo: repo,
	}
}

// Adjust adds delta to the named stat
func (s *service) Adjust(ctx context.Context, name string, delta int) (*domain.Stat, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if !inRange(delta) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgValueRange)
	}

	stats, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := utils.IndexByName(stats, name)
	if i == -1 {
		stats = append(stats, domain.Stat{Name: name})
		i = len(stats) - 1
		log.Info(LogMsgStatCreated, "stat", name)
	}

	next := stats[i].Value + delta
	if !inRange(next) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgValueRange)
	}
	stats[i].Value = next

	if err := s.save(ctx, stats); err != nil {
		return nil, err
	}

	metrics.StatsAdjusted.Inc()
	log.Info(LogMsgStatAdjusted, "stat", stats[i].Name, "delta", delta, "value", next)
	stat := stats[i]
	return &stat, nil
}

// Set overwrites the named stat, creating it if missing
func (s *service) Set(ctx context.Context, name string, value int) (*domain.Stat, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if !inRange(value) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgValueRange)
	}

	stats, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var stat domain.Stat
	if i := utils.IndexByName(stats, name); i != -1 {
		stats[i].Value = value
		stat = stats[i]
	} else {
		stat = domain.Stat{Name: name, Value: value}
		stats = append(stats, stat)
	}

	if err := s.save(ctx, stats); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStatSet, "stat", stat.Name, "value", value)
	return &stat, nil
}

// Remove deletes every stat with the given name
func (s *service) Remove(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	stats, err := s.load(ctx)
	if err != nil {
		return err
	}

	key := utils.NormalizeName(name)
	kept := make([]domain.Stat, 0, len(stats))
	for _, st := range stats {
		if utils.NormalizeName(st.Name) != key {
			kept = append(kept, st)
		}
	}
	if len(kept) == len(stats) {
		return fmt.Errorf("%w: %s", domain.ErrStatNotFound, name)
	}

	if err := s.save(ctx, kept); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgStatRemoved, "stat", name)
	return nil
}

// List returns every stat in stored order
func (s *service) List(ctx context.Context) ([]domain.Stat, error) {
	return s.load(ctx)
}

// Search returns the stats matching name
func (s *service) Search(ctx context.Context, name string) ([]domain.Stat, error) {
	stats, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterByName(stats, name), nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	return name, nil
}

func inRange(v int) bool {
	return v >= -MaxAbsValue && v <= MaxAbsValue
}

func (s *service) load(ctx context.Context) ([]domain.Stat, error) {
	stats, err := s.repo.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToLoadStats, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadFailed, err)
	}
	return stats, nil
}

func (s *service) save(ctx context.Context, stats []domain.Stat) error {
	if err := s.repo.Save(ctx, stats); err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToSaveStats, "error", err)
		return fmt.Errorf(ErrMsgSaveFailed, err)
	}
	return nil
}
