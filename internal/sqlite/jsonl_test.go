package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupStore(t)

	putNote(t, src, &types.Note{ID: "n1", Title: "one", SyncStatus: types.SyncPending})
	putNote(t, src, &types.Note{ID: "n2", Title: "two", FolderID: strptr("c1"), SyncStatus: types.SyncSynced})
	require.NoError(t, src.Put(types.CollectionsTable, "c1", &types.Collection{ID: "c1", Name: "Work"}))
	require.NoError(t, src.Put(types.HistoriesTable, "h1", &types.History{ID: "h1", NoteID: "n1", Type: types.HistoryCreated, CreatedAt: 100}))
	require.NoError(t, src.Put(types.WorkspaceTable, types.WorkspaceKey, &types.Workspace{ClientID: "cid", Title: "W", Theme: types.ThemeDark}))

	exportDir := t.TempDir()
	require.NoError(t, src.ExportJSONL(exportDir))

	for _, table := range types.StandardTableNames {
		_, err := os.Stat(filepath.Join(exportDir, table+".jsonl"))
		require.NoError(t, err, "%s.jsonl should exist", table)
	}

	dst := setupStore(t)
	require.NoError(t, dst.ImportJSONL(exportDir))

	var n types.Note
	require.NoError(t, dst.Get(types.NotesTable, "n2", &n))
	assert.Equal(t, "two", n.Title)
	require.NotNil(t, n.FolderID)
	assert.Equal(t, "c1", *n.FolderID)

	var w types.Workspace
	require.NoError(t, dst.Get(types.WorkspaceTable, types.WorkspaceKey, &w))
	assert.Equal(t, "cid", w.ClientID)
	assert.Equal(t, types.ThemeDark, w.Theme)
}

func TestImportSkipsMissingFilesAndMalformedLines(t *testing.T) {
	dir := t.TempDir()
	// Only a notes file, with one broken line in the middle.
	payload := `{"id":"n1","title":"ok"}
not json
{"id":"n2","title":"also ok"}
{"title":"no id, skipped"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.jsonl"), []byte(payload), 0o644))

	s := setupStore(t)
	require.NoError(t, s.ImportJSONL(dir))

	recs, err := s.GetAll(types.NotesTable)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	colls, err := s.GetAll(types.CollectionsTable)
	require.NoError(t, err)
	assert.Empty(t, colls)
}

func TestImportReplacesSharedKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "notes.jsonl"),
		[]byte(`{"id":"n1","title":"imported"}`+"\n"), 0o644))

	s := setupStore(t)
	putNote(t, s, &types.Note{ID: "n1", Title: "local"})
	require.NoError(t, s.ImportJSONL(dir))

	var n types.Note
	require.NoError(t, s.Get(types.NotesTable, "n1", &n))
	assert.Equal(t, "imported", n.Title)
}
