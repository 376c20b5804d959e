package inventory

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

// AddItemRequest describes an item to add. When a record with the same name
// already exists only Name and Count are used.
type AddItemRequest struct {
	Name        string          `json:"name" validate:"required,notblank,max=100"`
	Description string          `json:"description" validate:"max=1000"`
	Count       int             `json:"count" validate:"min=1,max=1000000"`
	Activity    domain.Activity `json:"activeOrPassive" validate:"omitempty,oneof=Active Passive"`
	Key         domain.KeyFlag  `json:"key" validate:"omitempty,oneof=Key NotKey"`
}

// RemoveItemRequest removes Count units of the named item. A negative Count
// deletes the record outright; zero sets the count to zero.
type RemoveItemRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Count int    `json:"count"`
}

// AddResult reports the stored record after an add
type AddResult struct {
	Item   domain.Item `json:"item"`
	Merged bool        `json:"merged"`
}

// RemoveResult reports what happened to every matching record
type RemoveResult struct {
	Matched   int           `json:"matched"`
	Removed   []domain.Item `json:"removed"`
	Updated   []domain.Item `json:"updated"`
	Protected []domain.Item `json:"protected"`
}

// Service handles inventory operations
type Service interface {
	AddOrMerge(ctx context.Context, req AddItemRequest) (*AddResult, error)
	RemoveOrDecrement(ctx context.Context, req RemoveItemRequest) (*RemoveResult, error)
	Search(ctx context.Context, name string) ([]domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

// AddOrMerge adds count to an existing record with the same name, or appends
// a new record when every field is present. Only the inventory collection is
// searched.
func (s *service) AddOrMerge(ctx context.Context, req AddItemRequest) (*AddResult, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCountPositive)
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if i := utils.IndexByName(items, name); i != -1 {
		if items[i].Count > domain.MaxStoredNumber-req.Count {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(ErrMsgCountTooLarge, domain.MaxStoredNumber))
		}
		items[i].Count += req.Count
		if err := s.save(ctx, items); err != nil {
			return nil, err
		}
		metrics.ItemsMerged.Inc()
		log.Info(LogMsgItemMerged, "item", items[i].Name, "added", req.Count, "count", items[i].Count)
		return &AddResult{Item: items[i], Merged: true}, nil
	}

	if missing := missingFields(req); len(missing) > 0 {
		log.Warn(LogMsgItemIncomplete, "item", name, "missing", missing)
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgIncompleteItem, strings.Join(missing, ", "))
	}

	item := domain.Item{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Count:       req.Count,
		Activity:    req.Activity,
		Key:         req.Key,
	}
	items = append(items, item)
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}

	metrics.ItemsAdded.Inc()
	log.Info(LogMsgItemAdded, "item", item.Name, "count", item.Count, "key", item.Key)
	return &AddResult{Item: item}, nil
}

// missingFields lists the fields a brand new item still needs
func missingFields(req AddItemRequest) []string {
	var missing []string
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, FieldDescription)
	}
	if !req.Activity.Valid() {
		missing = append(missing, FieldActivity)
	}
	if !req.Key.Valid() {
		missing = append(missing, FieldKey)
	}
	return missing
}

// RemoveOrDecrement applies the request to every record with a matching name.
// Key items are never dropped from the collection: a full delete is refused
// and a decrement stops at zero with the record kept. The collection is saved
// even when nothing matched.
func (s *service) RemoveOrDecrement(ctx context.Context, req RemoveItemRequest) (*RemoveResult, error) {
	log := logger.FromContext(ctx)

	key := utils.NormalizeName(req.Name)
	if key == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{
		Removed:   []domain.Item{},
		Updated:   []domain.Item{},
		Protected: []domain.Item{},
	}
	kept := make([]domain.Item, 0, len(items))

	for _, item := range items {
		if utils.NormalizeName(item.Name) != key {
			kept = append(kept, item)
			continue
		}
		result.Matched++

		switch {
		case req.Count < 0:
			if item.IsKey() {
				result.Protected = append(result.Protected, item)
				kept = append(kept, item)
				continue
			}
			result.Removed = append(result.Removed, item)

		case req.Count > 0:
			item.Count = utils.ClampMin(item.Count-req.Count, 0)
			if item.Count == 0 && !item.IsKey() {
				result.Removed = append(result.Removed, item)
				continue
			}
			result.Updated = append(result.Updated, item)
			kept = append(kept, item)

		default:
			item.Count = 0
			result.Updated = append(result.Updated, item)
			kept = append(kept, item)
		}
	}

	if err := s.save(ctx, kept); err != nil {
		return nil, err
	}

	for _, item := range result.Removed {
		metrics.ItemsRemoved.Inc()
		log.Info(LogMsgItemRemoved, "item", item.Name)
	}
	for _, item := range result.Updated {
		log.Info(LogMsgItemDecremented, "item", item.Name, "count", item.Count)
	}

	if result.Matched == 0 {
		log.Warn(LogMsgItemNotFound, "item", req.Name)
		return result, fmt.Errorf("%w: %s", domain.ErrItemNotFound, strings.TrimSpace(req.Name))
	}

	if len(result.Protected) > 0 {
		names := make([]string, 0, len(result.Protected))
		for _, item := range result.Protected {
			metrics.KeyItemRejections.Inc()
			log.Warn(LogMsgKeyItemProtected, "item", item.Name)
			names = append(names, item.Name)
		}
		return result, fmt.Errorf("%w: %s", domain.ErrKeyItemProtected, strings.Join(names, ", "))
	}

	return result, nil
}

// Search returns every inventory record whose name matches exactly, ignoring case and surrounding space
func (s *service) Search(ctx context.Context, name string) ([]domain.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterByName(items, name), nil
}

// List returns the whole inventory in stored order
func (s *service) List(ctx context.Context) ([]domain.Item, error) {
	return s.load(ctx)
}

func (s *service) load(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgInventoryLoadFail, "error", err)
		return nil, fmt.Errorf(ErrMsgLoadFailed, err)
	}
	return items, nil
}

func (s *service) save(ctx context.Context, items []domain.Item) error {
	if err := s.repo.Save(ctx, items); err != nil {
		logger.FromContext(ctx).Error(LogMsgInventorySaveFail, "error", err)
		return fmt.Errorf(ErrMsgSaveFailed, err)
	}
	return nil
}
