package sqlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

// setupStore creates an open Store over a temp data dir with cleanup-deferred
// close.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { s.Close() })
	return s
}

func putNote(t *testing.T, s *Store, n *types.Note) {
	t.Helper()
	require.NoError(t, s.Put(types.NotesTable, n.ID, n))
}

func strptr(s string) *string { return &s }

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s := NewStore()
	require.NoError(t, s.Open(cfg))
	require.NoError(t, s.Open(cfg))
	defer s.Close()

	require.NoError(t, s.Put(types.NotesTable, "n1", &types.Note{ID: "n1"}))
	var got types.Note
	require.NoError(t, s.Get(types.NotesTable, "n1", &got))
	assert.Equal(t, "n1", got.ID)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	err := s.Put(types.NotesTable, "n1", &types.Note{ID: "n1"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.GetAll(types.NotesTable)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestRecordsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s := NewStore()
	require.NoError(t, s.Open(cfg))
	require.NoError(t, s.Put(types.NotesTable, "n1", &types.Note{ID: "n1", Title: "kept"}))
	require.NoError(t, s.Close())

	s2 := NewStore()
	require.NoError(t, s2.Open(cfg))
	defer s2.Close()

	var got types.Note
	require.NoError(t, s2.Get(types.NotesTable, "n1", &got))
	assert.Equal(t, "kept", got.Title)
}

func TestAddRejectsDuplicateKey(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.Add(types.NotesTable, "n1", &types.Note{ID: "n1"}))
	err := s.Add(types.NotesTable, "n1", &types.Note{ID: "n1"})
	assert.ErrorIs(t, err, types.ErrDuplicateKey)
}

func TestGetMissingKey(t *testing.T) {
	s := setupStore(t)

	var got types.Note
	err := s.Get(types.NotesTable, "nope", &got)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteMissingKey(t *testing.T) {
	s := setupStore(t)
	assert.ErrorIs(t, s.Delete(types.NotesTable, "nope"), types.ErrNotFound)
}

func TestUnknownTableAndIndex(t *testing.T) {
	s := setupStore(t)

	err := s.Put("tags", "x", map[string]any{})
	assert.ErrorIs(t, err, types.ErrTableNotFound)

	_, err = s.QueryByIndex(types.NotesTable, "labelColor", "red")
	assert.ErrorIs(t, err, types.ErrIndexNotFound)
}

func TestQueryByIndex(t *testing.T) {
	s := setupStore(t)

	putNote(t, s, &types.Note{ID: "a", FolderID: strptr("f1"), SyncStatus: types.SyncPending})
	putNote(t, s, &types.Note{ID: "b", FolderID: strptr("f2"), IsPinned: true, SyncStatus: types.SyncSynced})
	putNote(t, s, &types.Note{ID: "c", FolderID: nil, IsPinned: true, SyncStatus: types.SyncPending})

	decode := func(recs []json.RawMessage) []string {
		var ids []string
		for _, rec := range recs {
			var n types.Note
			require.NoError(t, json.Unmarshal(rec, &n))
			ids = append(ids, n.ID)
		}
		return ids
	}

	tests := []struct {
		name  string
		index string
		value any
		want  []string
	}{
		{name: "by folder", index: "folderId", value: "f1", want: []string{"a"}},
		{name: "null folder matches unfiled", index: "folderId", value: nil, want: []string{"c"}},
		{name: "pinned flag", index: "isPinned", value: true, want: []string{"b", "c"}},
		{name: "sync status", index: "syncStatus", value: types.SyncPending, want: []string{"a", "c"}},
		{name: "no matches", index: "folderId", value: "f9", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.QueryByIndex(types.NotesTable, tt.index, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decode(recs))
		})
	}
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	s := setupStore(t)

	for _, id := range []string{"z", "m", "a"} {
		putNote(t, s, &types.Note{ID: id})
	}

	recs, err := s.GetAll(types.NotesTable)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	var first types.Note
	require.NoError(t, json.Unmarshal(recs[0], &first))
	assert.Equal(t, "z", first.ID)
}

func TestClearAllWipesEveryTable(t *testing.T) {
	s := setupStore(t)

	putNote(t, s, &types.Note{ID: "n1"})
	require.NoError(t, s.Put(types.CollectionsTable, "c1", &types.Collection{ID: "c1", Name: "Inbox"}))
	require.NoError(t, s.Put(types.HistoriesTable, "h1", &types.History{ID: "h1", NoteID: "n1"}))
	require.NoError(t, s.Put(types.WorkspaceTable, types.WorkspaceKey, &types.Workspace{ClientID: "x", Theme: types.ThemeDefault}))

	require.NoError(t, s.ClearAll())

	for _, table := range types.StandardTableNames {
		recs, err := s.GetAll(table)
		require.NoError(t, err)
		assert.Empty(t, recs, "table %s should be empty", table)
	}
}

func TestPutReplacesExistingRecord(t *testing.T) {
	s := setupStore(t)

	putNote(t, s, &types.Note{ID: "n1", Title: "old"})
	putNote(t, s, &types.Note{ID: "n1", Title: "new"})

	var got types.Note
	require.NoError(t, s.Get(types.NotesTable, "n1", &got))
	assert.Equal(t, "new", got.Title)

	recs, err := s.GetAll(types.NotesTable)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
