package search

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

// Error messages
const (
	ErrMsgNameRequired = "search name is required"
	ErrMsgLoadFailed   = "failed to load %s: %w"
)

// Log messages
const (
	LogMsgSearchMiss = "Search found no record"
	LogMsgSearchHit  = "Search matched records"
)

// Request is a search by exact name within one collection
type Request struct {
	Collection string `json:"collection" validate:"required,oneof=inventory enemies stats"`
	Name       string `json:"name" validate:"required,notblank,max=100"`
}

// Service finds records by name in any collection
type Service interface {
	FindByName(ctx context.Context, collection domain.CollectionID, name string) ([]domain.Record, error)
}

type service struct {
	finders map[domain.CollectionID]finder
}

type finder func(ctx context.Context, name string) ([]domain.Record, error)

// NewService creates a search service over the three collections
func NewService(inventory repository.Inventory, enemies repository.Enemies, stats repository.Stats) Service {
	return &service{
		finders: map[domain.CollectionID]finder{
			domain.CollectionInventory: finderFor(inventory),
			domain.CollectionEnemies:   finderFor(enemies),
			domain.CollectionStats:     finderFor(stats),
		},
	}
}

func finderFor[T domain.Record](repo repository.Records[T]) finder {
	return func(ctx context.Context, name string) ([]domain.Record, error) {
		records, err := repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		matches := utils.FilterByName(records, name)
		out := make([]domain.Record, len(matches))
		for i, m := range matches {
			out[i] = m
		}
		return out, nil
	}
}

// FindByName returns every record in collection whose name equals name after
// trimming and case folding. Substrings never match.
func (s *service) FindByName(ctx context.Context, collection domain.CollectionID, name string) ([]domain.Record, error) {
	log := logger.FromContext(ctx)

	find, ok := s.finders[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}

	metrics.SearchesPerformed.WithLabelValues(string(collection)).Inc()

	records, err := find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, collection, err)
	}
	if len(records) == 0 {
		log.Debug(LogMsgSearchMiss, "collection", collection, "name", name)
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, name)
	}

	log.Debug(LogMsgSearchHit, "collection", collection, "name", name, "matches", len(records))
	return records, nil
}
