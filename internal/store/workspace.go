package store

import (
	"errors"
	"fmt"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// WorkspaceRepository manages the singleton workspace record, held under a
// constant key. Get vivifies a default instance on first read, so a
// workspace always exists once the store has been asked for one.
type WorkspaceRepository struct {
	store *sqlite.Store
}

// NewWorkspaceRepository creates a WorkspaceRepository on the given engine.
func NewWorkspaceRepository(s *sqlite.Store) *WorkspaceRepository {
	return &WorkspaceRepository{store: s}
}

// defaultWorkspace builds the instance vivified on first read.
func defaultWorkspace() *types.Workspace {
	return &types.Workspace{
		ClientID: newID(),
		Title:    types.DefaultWorkspaceTitle,
		Theme:    types.ThemeDefault,
	}
}

// Get returns the workspace, creating and persisting the default instance
// if none exists yet.
func (r *WorkspaceRepository) Get() (*types.Workspace, error) {
	var w types.Workspace
	err := r.store.Get(types.WorkspaceTable, types.WorkspaceKey, &w)
	if errors.Is(err, types.ErrNotFound) {
		fresh := defaultWorkspace()
		if err := r.store.Put(types.WorkspaceTable, types.WorkspaceKey, fresh); err != nil {
			return nil, fmt.Errorf("initializing workspace: %w", err)
		}
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return &w, nil
}

// Update merges the patch over the workspace, vivifying it first if needed.
func (r *WorkspaceRepository) Update(updates types.Patch) (*types.Workspace, error) {
	w, err := r.Get()
	if err != nil {
		return nil, err
	}
	if err := w.Apply(updates); err != nil {
		return nil, err
	}
	if err := r.store.Put(types.WorkspaceTable, types.WorkspaceKey, w); err != nil {
		return nil, fmt.Errorf("updating workspace: %w", err)
	}
	return w, nil
}

// Delete removes the workspace record. Idempotent: a missing record is not
// an error, and the next Get vivifies a fresh default.
func (r *WorkspaceRepository) Delete() error {
	err := r.store.Delete(types.WorkspaceTable, types.WorkspaceKey)
	if errors.Is(err, types.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting workspace: %w", err)
	}
	return nil
}
