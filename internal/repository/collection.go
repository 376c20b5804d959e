package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/logger"
	"github.com/osse101/scribble/internal/metrics"
	"github.com/osse101/scribble/internal/utils"
	"github.com/osse101/scribble/internal/validation"
)

var collectionSchemas = map[domain.CollectionID]string{
	domain.CollectionInventory: validation.SchemaInventory,
	domain.CollectionEnemies:   validation.SchemaEnemies,
	domain.CollectionStats:     validation.SchemaStats,
}

// SchemaFor returns the field-level JSON schema of a collection. Load only
// enforces the array-of-objects shape; this stricter schema is for reporting.
func SchemaFor(id domain.CollectionID) (string, bool) {
	schema, ok := collectionSchemas[id]
	return schema, ok
}

// Collection loads and saves a whole collection of T as one JSON array blob.
// There is no caching: every Load reads the blob again.
type Collection[T any] struct {
	id        domain.CollectionID
	blobs     BlobStore
	validator validation.SchemaValidator
}

// NewCollection creates a typed collection over a blob store
func NewCollection[T any](blobs BlobStore, id domain.CollectionID, validator validation.SchemaValidator) *Collection[T] {
	return &Collection[T]{
		id:        id,
		blobs:     blobs,
		validator: validator,
	}
}

// Load returns every record in the collection. A missing blob is created as an
// empty array. An unreadable blob is logged and treated as empty; it will be
// overwritten by the next Save.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	data, err := c.blobs.Read(ctx, c.id)
	if errors.Is(err, ErrBlobNotFound) {
		log.Info(LogMsgCollectionCreated, "collection", c.id)
		if err := c.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	records, err := c.decode(data)
	if err != nil {
		log.Warn(LogMsgCollectionDecodeFailed, "collection", c.id, "error", err)
		metrics.StoreDecodeFailures.WithLabelValues(string(c.id)).Inc()
		return []T{}, nil
	}

	return records, nil
}

func (c *Collection[T]) decode(data []byte) ([]T, error) {
	if c.validator != nil {
		if err := c.validator.ValidateBytes(data, validation.SchemaCollection); err != nil {
			return nil, err
		}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeCollectionFailed, c.id, err)
	}
	if records == nil {
		return nil, fmt.Errorf(ErrMsgDecodeCollectionFailed, c.id, errNotAnArray)
	}
	return records, nil
}

// Save overwrites the collection with records as a pretty-printed JSON array
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := utils.MarshalIndent(records)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeCollectionFailed, c.id, err)
	}

	if err := c.blobs.Write(ctx, c.id, data); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgCollectionSaved, "collection", c.id, "records", len(records))
	return nil
}
