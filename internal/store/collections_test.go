package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func TestCollectionsCreateValidatesName(t *testing.T) {
	repo := NewCollectionsRepository(setupEngine(t))

	_, err := repo.Create(&types.Collection{})
	assert.ErrorIs(t, err, types.ErrValidation)

	created, err := repo.Create(&types.Collection{Name: "Work"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, types.SyncPending, created.SyncStatus)
}

func TestCollectionsSoftDeleteAndRestore(t *testing.T) {
	repo := NewCollectionsRepository(setupEngine(t))

	created, err := repo.Create(&types.Collection{Name: "Work"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID, false))
	live, err := repo.GetAll(false)
	require.NoError(t, err)
	assert.Empty(t, live)

	restored, err := repo.Restore(created.ID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.Equal(t, "Work", restored.Name)
}

func TestCollectionsUpdateDiscardsCallerUpdatedAt(t *testing.T) {
	repo := NewCollectionsRepository(setupEngine(t))

	created, err := repo.Create(&types.Collection{Name: "Work"})
	require.NoError(t, err)

	future := time.Now().Add(24 * time.Hour).UnixMilli()
	updated, err := repo.Update(created.ID, types.Patch{"name": "Play", "updatedAt": future})
	require.NoError(t, err)

	assert.Less(t, updated.UpdatedAt, future)
	assert.LessOrEqual(t, updated.UpdatedAt, time.Now().Add(time.Second).UnixMilli())
}

func TestCollectionsUpdateMissingID(t *testing.T) {
	repo := NewCollectionsRepository(setupEngine(t))

	_, err := repo.Update("nope", types.Patch{"name": "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCollectionsGetPendingSync(t *testing.T) {
	repo := NewCollectionsRepository(setupEngine(t))

	_, err := repo.Create(&types.Collection{ID: "c1", Name: "A"})
	require.NoError(t, err)
	_, err = repo.Create(&types.Collection{ID: "c2", Name: "B", SyncStatus: types.SyncSynced})
	require.NoError(t, err)
	require.NoError(t, repo.Delete("c1", false))

	pending, err := repo.GetPendingSync()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "c1", pending[0].ID)
}
