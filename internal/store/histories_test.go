package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func appendEntry(t *testing.T, repo *HistoryRepository, id, noteID string, createdAt int64) {
	t.Helper()
	require.NoError(t, repo.Append(&types.History{
		ID:        id,
		NoteID:    noteID,
		Type:      types.HistoryUpdated,
		CreatedAt: createdAt,
	}))
}

func TestHistoryAppendValidation(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	tests := []struct {
		name  string
		entry *types.History
	}{
		{"missing id", &types.History{NoteID: "n1", Type: types.HistoryCreated, CreatedAt: 1}},
		{"missing createdAt", &types.History{ID: "h1", NoteID: "n1", Type: types.HistoryCreated}},
		{"unknown type", &types.History{ID: "h1", NoteID: "n1", Type: "renamed", CreatedAt: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, repo.Append(tt.entry), types.ErrValidation)
		})
	}
}

func TestHistoryAppendDuplicateID(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	appendEntry(t, repo, "h1", "n1", 100)
	err := repo.Append(&types.History{ID: "h1", NoteID: "n1", Type: types.HistoryCreated, CreatedAt: 200})
	assert.ErrorIs(t, err, types.ErrDuplicateKey)
}

func TestHistoryGetRecentOrdersByCreatedAtDescending(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	// Inserted out of timestamp order on purpose.
	appendEntry(t, repo, "h1", "n1", 100)
	appendEntry(t, repo, "h2", "n1", 300)
	appendEntry(t, repo, "h3", "n2", 200)

	entries, err := repo.GetRecent(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "h2", entries[0].ID)
	assert.Equal(t, "h3", entries[1].ID)
	assert.Equal(t, "h1", entries[2].ID)
}

func TestHistoryGetRecentTieBreaksOnInsertionOrder(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	appendEntry(t, repo, "first", "n1", 500)
	appendEntry(t, repo, "second", "n1", 500)
	appendEntry(t, repo, "third", "n1", 500)

	entries, err := repo.GetRecent(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].ID)
	assert.Equal(t, "second", entries[1].ID)
	assert.Equal(t, "first", entries[2].ID)
}

func TestHistoryGetRecentAppliesLimit(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	for i := 0; i < 5; i++ {
		appendEntry(t, repo, fmt.Sprintf("h%d", i), "n1", int64(100+i))
	}

	entries, err := repo.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "h4", entries[0].ID)
	assert.Equal(t, "h3", entries[1].ID)
}

func TestHistoryGetRecentDefaultLimit(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	for i := 0; i < DefaultHistoryLimit+10; i++ {
		appendEntry(t, repo, fmt.Sprintf("h%d", i), "n1", int64(i))
	}

	entries, err := repo.GetRecent(0)
	require.NoError(t, err)
	assert.Len(t, entries, DefaultHistoryLimit)
}

func TestHistoryGetByNoteID(t *testing.T) {
	repo := NewHistoryRepository(setupEngine(t))

	appendEntry(t, repo, "h1", "n1", 100)
	appendEntry(t, repo, "h2", "n2", 200)
	appendEntry(t, repo, "h3", "n1", 300)

	entries, err := repo.GetByNoteID("n1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "h3", entries[0].ID)
	assert.Equal(t, "h1", entries[1].ID)

	none, err := repo.GetByNoteID("ghost", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
