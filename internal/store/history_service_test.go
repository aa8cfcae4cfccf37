package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func setupHistoryService(t *testing.T) (*HistoryService, *HistoryRepository) {
	t.Helper()
	repo := NewHistoryRepository(setupEngine(t))
	return NewHistoryService(repo), repo
}

func lastEntry(t *testing.T, repo *HistoryRepository) *types.History {
	t.Helper()
	entries, err := repo.GetRecent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	return entries[0]
}

func TestLogNoteCreated(t *testing.T) {
	svc, repo := setupHistoryService(t)

	note := &types.Note{ID: "n1", Title: "Draft", FolderID: strptr("f1")}
	require.NoError(t, svc.LogNoteCreated(note))

	entry := lastEntry(t, repo)
	assert.Equal(t, types.HistoryCreated, entry.Type)
	assert.Equal(t, "n1", entry.NoteID)
	assert.NotEmpty(t, entry.ID)
	assert.NotZero(t, entry.CreatedAt)
	assert.Equal(t, types.SyncPending, entry.SyncStatus)
	assert.Equal(t, "Draft", entry.Payload["title"])
	assert.Equal(t, "f1", entry.Payload["folderId"])
}

func TestLogNoteUpdatedClassification(t *testing.T) {
	tests := []struct {
		name     string
		before   types.Note
		after    types.Note
		updates  types.Patch
		wantType string
	}{
		{
			name:     "title change is updated",
			before:   types.Note{ID: "n1", Title: "Draft"},
			after:    types.Note{ID: "n1", Title: "Final"},
			updates:  types.Patch{"title": "Final"},
			wantType: types.HistoryUpdated,
		},
		{
			name:     "folder change is moved",
			before:   types.Note{ID: "n1", Title: "Draft"},
			after:    types.Note{ID: "n1", Title: "Draft", FolderID: strptr("f1")},
			updates:  types.Patch{"folderId": "f1"},
			wantType: types.HistoryMoved,
		},
		{
			name:     "folder detach is moved",
			before:   types.Note{ID: "n1", FolderID: strptr("f1")},
			after:    types.Note{ID: "n1"},
			updates:  types.Patch{"folderId": nil},
			wantType: types.HistoryMoved,
		},
		{
			name:     "same folder in patch is plain updated",
			before:   types.Note{ID: "n1", FolderID: strptr("f1")},
			after:    types.Note{ID: "n1", Title: "x", FolderID: strptr("f1")},
			updates:  types.Patch{"title": "x", "folderId": "f1"},
			wantType: types.HistoryUpdated,
		},
		{
			name:     "deleted toggle wins over move",
			before:   types.Note{ID: "n1"},
			after:    types.Note{ID: "n1", Deleted: true, FolderID: strptr("f1")},
			updates:  types.Patch{"deleted": true, "folderId": "f1"},
			wantType: types.HistoryDeleted,
		},
		{
			name:     "restore toggle wins over move",
			before:   types.Note{ID: "n1", Deleted: true, FolderID: strptr("f1")},
			after:    types.Note{ID: "n1"},
			updates:  types.Patch{"deleted": false, "folderId": nil},
			wantType: types.HistoryRestored,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupHistoryService(t)
			require.NoError(t, svc.LogNoteUpdated(&tt.before, &tt.after, tt.updates))
			assert.Equal(t, tt.wantType, lastEntry(t, repo).Type)
		})
	}
}

func TestLogNoteUpdatedPayloadSnapshots(t *testing.T) {
	svc, repo := setupHistoryService(t)

	before := &types.Note{ID: "n1", Title: "Draft", IsPinned: true}
	after := &types.Note{ID: "n1", Title: "Final", IsPinned: true}
	require.NoError(t, svc.LogNoteUpdated(before, after, types.Patch{"title": "Final"}))

	entry := lastEntry(t, repo)
	beforeSnap, ok := entry.Payload["before"].(map[string]any)
	require.True(t, ok)
	afterSnap, ok := entry.Payload["after"].(map[string]any)
	require.True(t, ok)
	updates, ok := entry.Payload["updates"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Draft", beforeSnap["title"])
	assert.Equal(t, "Final", afterSnap["title"])
	assert.Equal(t, true, afterSnap["isPinned"])
	assert.Equal(t, "Final", updates["title"])
}

func TestLogNoteDeletedAndRestored(t *testing.T) {
	svc, repo := setupHistoryService(t)

	require.NoError(t, svc.LogNoteDeleted("n1"))
	entry := lastEntry(t, repo)
	assert.Equal(t, types.HistoryDeleted, entry.Type)
	assert.Equal(t, false, entry.Payload["hardDelete"])

	require.NoError(t, svc.LogNoteRestored("n1"))
	entry = lastEntry(t, repo)
	assert.Equal(t, types.HistoryRestored, entry.Type)
	assert.Empty(t, entry.Payload)
}
