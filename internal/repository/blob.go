package repository

import (
	"context"
	"errors"

	"github.com/osse101/scribble/internal/domain"
)

// ErrBlobNotFound is returned by BlobStore.Read when the collection has never been written
var ErrBlobNotFound = errors.New("collection blob not found")

// BlobStore persists one opaque blob per collection
type BlobStore interface {
	Read(ctx context.Context, id domain.CollectionID) ([]byte, error)
	Write(ctx context.Context, id domain.CollectionID, data []byte) error
}

// Records is a typed whole-collection read/modify/write store
type Records[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}

// Inventory, Enemies and Stats are the record stores used by the services
type (
	Inventory = Records[domain.Item]
	Enemies   = Records[domain.Enemy]
	Stats     = Records[domain.Stat]
)
