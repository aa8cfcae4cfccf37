package store

import (
	"errors"
	"fmt"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// CollectionsRepository provides CRUD over the collections table. It mirrors
// NotesRepository minus the pin and folder lookups.
type CollectionsRepository struct {
	store *sqlite.Store
}

// NewCollectionsRepository creates a CollectionsRepository on the given engine.
func NewCollectionsRepository(s *sqlite.Store) *CollectionsRepository {
	return &CollectionsRepository{store: s}
}

// Create stores a new collection, assigning ID, timestamps, and pending sync
// status when absent. Returns ErrDuplicateKey if the ID already exists.
func (r *CollectionsRepository) Create(collection *types.Collection) (*types.Collection, error) {
	if err := collection.Validate(); err != nil {
		return nil, err
	}

	if collection.ID == "" {
		collection.ID = newID()
	}
	now := nowMillis()
	if collection.CreatedAt == 0 {
		collection.CreatedAt = now
	}
	if collection.UpdatedAt == 0 {
		collection.UpdatedAt = now
	}
	if collection.SyncStatus == "" {
		collection.SyncStatus = types.SyncPending
	}

	if err := r.store.Add(types.CollectionsTable, collection.ID, collection); err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}
	return collection, nil
}

// GetByID returns the collection or nil when absent, soft-deleted included.
func (r *CollectionsRepository) GetByID(id string) (*types.Collection, error) {
	var c types.Collection
	err := r.store.Get(types.CollectionsTable, id, &c)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}
	return &c, nil
}

// GetAll returns all collections in insertion order, excluding soft-deleted
// ones unless includeDeleted is set.
func (r *CollectionsRepository) GetAll(includeDeleted bool) ([]*types.Collection, error) {
	records, err := r.store.GetAll(types.CollectionsTable)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	collections, err := decodeCollections(records)
	if err != nil {
		return nil, fmt.Errorf("decoding collections: %w", err)
	}
	if includeDeleted {
		return collections, nil
	}
	live := collections[:0]
	for _, c := range collections {
		if !c.Deleted {
			live = append(live, c)
		}
	}
	return live, nil
}

// GetPendingSync returns every collection with pending sync status,
// soft-deleted ones included.
func (r *CollectionsRepository) GetPendingSync() ([]*types.Collection, error) {
	records, err := r.store.QueryByIndex(types.CollectionsTable, "syncStatus", types.SyncPending)
	if err != nil {
		return nil, fmt.Errorf("listing pending collections: %w", err)
	}
	collections, err := decodeCollections(records)
	if err != nil {
		return nil, fmt.Errorf("decoding collections: %w", err)
	}
	return collections, nil
}

// Update merges the patch over the stored collection and rewrites UpdatedAt
// to now. Returns ErrNotFound if the ID is absent.
func (r *CollectionsRepository) Update(id string, updates types.Patch) (*types.Collection, error) {
	var c types.Collection
	if err := r.store.Get(types.CollectionsTable, id, &c); err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}

	// Same monotonic floor as notes: caller-supplied updatedAt is discarded.
	prev := c.UpdatedAt
	if err := c.Apply(updates); err != nil {
		return nil, err
	}
	c.UpdatedAt = laterOf(nowMillis(), prev)

	if err := r.store.Put(types.CollectionsTable, id, &c); err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}
	return &c, nil
}

// Delete soft-deletes the collection by default; with hardDelete it
// physically removes the record. A missing ID fails with ErrNotFound on
// both paths.
func (r *CollectionsRepository) Delete(id string, hardDelete bool) error {
	if hardDelete {
		if err := r.store.Delete(types.CollectionsTable, id); err != nil {
			return fmt.Errorf("deleting collection: %w", err)
		}
		return nil
	}
	_, err := r.Update(id, types.Patch{"deleted": true})
	return err
}

// Restore clears the soft-delete flag. Returns ErrNotFound if the ID is
// absent.
func (r *CollectionsRepository) Restore(id string) (*types.Collection, error) {
	return r.Update(id, types.Patch{"deleted": false})
}
