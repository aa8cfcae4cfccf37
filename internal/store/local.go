package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// LocalStore composes the repositories and the history service into the one
// object the rest of the application holds. Note mutations commit first and
// log history second; a failed history append is reported on the error log
// and never fails or rolls back the mutation.
type LocalStore struct {
	engine      *sqlite.Store
	workspace   *WorkspaceRepository
	notes       *NotesRepository
	collections *CollectionsRepository
	histories   *HistoryRepository
	history     *HistoryService
	log         *zap.Logger
}

var _ types.LocalStore = (*LocalStore)(nil)

// New assembles a LocalStore over an open engine. A nil logger is replaced
// with a no-op logger.
func New(engine *sqlite.Store, log *zap.Logger) *LocalStore {
	if log == nil {
		log = zap.NewNop()
	}
	histories := NewHistoryRepository(engine)
	return &LocalStore{
		engine:      engine,
		workspace:   NewWorkspaceRepository(engine),
		notes:       NewNotesRepository(engine),
		collections: NewCollectionsRepository(engine),
		histories:   histories,
		history:     NewHistoryService(histories),
		log:         log,
	}
}

// reportHistoryFailure surfaces a failed history append without failing the
// committed mutation.
func (s *LocalStore) reportHistoryFailure(op, noteID string, err error) {
	if err == nil {
		return
	}
	s.log.Error("history append failed; audit trail incomplete",
		zap.String("operation", op),
		zap.String("note_id", noteID),
		zap.Error(err),
	)
}

// Workspace singleton.

func (s *LocalStore) GetWorkspace() (*types.Workspace, error) {
	return s.workspace.Get()
}

func (s *LocalStore) UpdateWorkspace(updates types.Patch) (*types.Workspace, error) {
	return s.workspace.Update(updates)
}

func (s *LocalStore) DeleteWorkspace() error {
	return s.workspace.Delete()
}

// Notes.

func (s *LocalStore) CreateNote(note *types.Note) (*types.Note, error) {
	created, err := s.notes.Create(note)
	if err != nil {
		return nil, err
	}
	s.reportHistoryFailure("create", created.ID, s.history.LogNoteCreated(created))
	return created, nil
}

func (s *LocalStore) GetNote(id string) (*types.Note, error) {
	return s.notes.GetByID(id)
}

func (s *LocalStore) GetAllNotes(includeDeleted bool) ([]*types.Note, error) {
	return s.notes.GetAll(includeDeleted)
}

func (s *LocalStore) GetNotesByFolder(folderID *string) ([]*types.Note, error) {
	return s.notes.GetByFolder(folderID)
}

func (s *LocalStore) GetPinnedNotes() ([]*types.Note, error) {
	return s.notes.GetPinned()
}

func (s *LocalStore) UpdateNote(id string, updates types.Patch) (*types.Note, error) {
	before, err := s.notes.GetByID(id)
	if err != nil {
		return nil, err
	}
	updated, err := s.notes.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if before != nil {
		s.reportHistoryFailure("update", id, s.history.LogNoteUpdated(before, updated, updates))
	}
	return updated, nil
}

func (s *LocalStore) DeleteNote(id string, hardDelete bool) error {
	before, err := s.notes.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.notes.Delete(id, hardDelete); err != nil {
		return err
	}
	// Only soft deletes are logged; after a hard delete the subject no
	// longer exists to reference.
	if !hardDelete && before != nil {
		s.reportHistoryFailure("delete", id, s.history.LogNoteDeleted(id))
	}
	return nil
}

func (s *LocalStore) RestoreNote(id string) (*types.Note, error) {
	restored, err := s.notes.Restore(id)
	if err != nil {
		return nil, err
	}
	s.reportHistoryFailure("restore", id, s.history.LogNoteRestored(id))
	return restored, nil
}

// Collections.

func (s *LocalStore) CreateCollection(collection *types.Collection) (*types.Collection, error) {
	return s.collections.Create(collection)
}

func (s *LocalStore) GetCollection(id string) (*types.Collection, error) {
	return s.collections.GetByID(id)
}

func (s *LocalStore) GetAllCollections(includeDeleted bool) ([]*types.Collection, error) {
	return s.collections.GetAll(includeDeleted)
}

func (s *LocalStore) UpdateCollection(id string, updates types.Patch) (*types.Collection, error) {
	return s.collections.Update(id, updates)
}

func (s *LocalStore) DeleteCollection(id string, hardDelete bool) error {
	return s.collections.Delete(id, hardDelete)
}

// DeleteCollectionWithNotes resolves the collection's notes before the
// collection record disappears, since the lookup key is the collection's
// own id. With cascadeDelete the notes are deleted along with it; without
// it they are detached to the unfiled root. No rollback is attempted if the
// collection delete fails after the notes were handled; the error surfaces
// and the whole cascade is safe to re-run, because re-detaching or
// re-soft-deleting an already-handled note succeeds.
func (s *LocalStore) DeleteCollectionWithNotes(id string, cascadeDelete, hardDelete bool) error {
	notes, err := s.notes.GetByFolder(&id)
	if err != nil {
		return fmt.Errorf("resolving collection notes: %w", err)
	}

	for _, n := range notes {
		if cascadeDelete {
			err = s.notes.Delete(n.ID, hardDelete)
		} else {
			_, err = s.notes.Update(n.ID, types.Patch{"folderId": nil})
		}
		if err != nil {
			return fmt.Errorf("handling note %s: %w", n.ID, err)
		}
	}

	if err := s.collections.Delete(id, hardDelete); err != nil {
		return fmt.Errorf("deleting collection %s: %w", id, err)
	}
	return nil
}

func (s *LocalStore) RestoreCollection(id string) (*types.Collection, error) {
	return s.collections.Restore(id)
}

// Histories.

func (s *LocalStore) GetRecentHistories(limit int) ([]*types.History, error) {
	return s.histories.GetRecent(limit)
}

func (s *LocalStore) GetHistoriesByNoteID(noteID string, limit int) ([]*types.History, error) {
	return s.histories.GetByNoteID(noteID, limit)
}

// Sync collaborator surface.

func (s *LocalStore) GetPendingSyncNotes() ([]*types.Note, error) {
	return s.notes.GetPendingSync()
}

func (s *LocalStore) GetPendingSyncCollections() ([]*types.Collection, error) {
	return s.collections.GetPendingSync()
}

// UpdateSyncStatus marks a note or collection with a new sync status,
// probing notes first and falling back to collections. Returns ErrNotFound
// when the id matches neither.
func (s *LocalStore) UpdateSyncStatus(id string, status string) error {
	if !types.ValidSyncStatus(status) {
		return fmt.Errorf("%w: unknown sync status %q", types.ErrValidation, status)
	}

	note, err := s.notes.GetByID(id)
	if err != nil {
		return err
	}
	if note != nil {
		_, err := s.notes.Update(id, types.Patch{"syncStatus": status})
		return err
	}

	collection, err := s.collections.GetByID(id)
	if err != nil {
		return err
	}
	if collection != nil {
		_, err := s.collections.Update(id, types.Patch{"syncStatus": status})
		return err
	}
	return fmt.Errorf("updating sync status for %s: %w", id, types.ErrNotFound)
}

// Maintenance.

func (s *LocalStore) ClearAll() error {
	return s.engine.ClearAll()
}

func (s *LocalStore) ExportJSONL(dir string) error {
	return s.engine.ExportJSONL(dir)
}

func (s *LocalStore) ImportJSONL(dir string) error {
	return s.engine.ImportJSONL(dir)
}

func (s *LocalStore) Close() error {
	return s.engine.Close()
}
