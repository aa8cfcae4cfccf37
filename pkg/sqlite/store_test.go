package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func TestOpenAndUse(t *testing.T) {
	s, err := Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, nil)
	require.NoError(t, err)
	defer s.Close()

	note, err := s.CreateNote(&types.Note{Title: "Hello"})
	require.NoError(t, err)

	got, err := s.GetNote(note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hello", got.Title)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{Backend: "postgres", DataDir: t.TempDir()}, nil)
	assert.Error(t, err)
}
