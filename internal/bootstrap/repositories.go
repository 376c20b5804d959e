package bootstrap

import (
	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/validation"
)

// Repositories holds one typed collection per data file
type Repositories struct {
	Inventory *repository.Collection[domain.Item]
	Enemies   *repository.Collection[domain.Enemy]
	Stats     *repository.Collection[domain.Stat]
}

// InitializeRepositories creates the collections over a blob store. Every
// collection shares the same schema validator so compiled schemas are reused.
func InitializeRepositories(blobs repository.BlobStore) *Repositories {
	v := validation.NewSchemaValidator()
	return &Repositories{
		Inventory: repository.NewCollection[domain.Item](blobs, domain.CollectionInventory, v),
		Enemies:   repository.NewCollection[domain.Enemy](blobs, domain.CollectionEnemies, v),
		Stats:     repository.NewCollection[domain.Stat](blobs, domain.CollectionStats, v),
	}
}
