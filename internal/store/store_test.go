package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// setupEngine opens a SQLite engine over a temp data dir with
// cleanup-deferred close.
func setupEngine(t *testing.T) *sqlite.Store {
	t.Helper()
	s := sqlite.NewStore()
	require.NoError(t, s.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { s.Close() })
	return s
}

// setupLocalStore builds a full facade over a fresh engine.
func setupLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	return New(setupEngine(t), nil)
}

func strptr(s string) *string { return &s }
