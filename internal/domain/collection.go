package domain

import "fmt"

// CollectionID names a persisted collection
type CollectionID string

const (
	CollectionInventory CollectionID = "inventory"
	CollectionEnemies   CollectionID = "enemies"
	CollectionStats     CollectionID = "stats"
)

// Collections lists every known collection in display order
var Collections = []CollectionID{CollectionInventory, CollectionEnemies, CollectionStats}

// FileName returns the backing file name for the collection
func (c CollectionID) FileName() string {
	return string(c) + ".json"
}

// ParseCollectionID validates a user-supplied collection name
func ParseCollectionID(s string) (CollectionID, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}
