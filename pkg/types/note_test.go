package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestNoteApply(t *testing.T) {
	base := func() *Note {
		return &Note{
			ID:         "n1",
			Title:      "Draft",
			Content:    "# hello",
			FolderID:   strptr("f1"),
			CreatedAt:  1000,
			UpdatedAt:  1000,
			SyncStatus: SyncSynced,
		}
	}

	tests := []struct {
		name    string
		patch   Patch
		wantErr error
		check   func(t *testing.T, n *Note)
	}{
		{
			name:  "title and content replaced",
			patch: Patch{"title": "Final", "content": "# bye"},
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, "Final", n.Title)
				assert.Equal(t, "# bye", n.Content)
			},
		},
		{
			name:  "folderId set to another collection",
			patch: Patch{"folderId": "f2"},
			check: func(t *testing.T, n *Note) {
				require.NotNil(t, n.FolderID)
				assert.Equal(t, "f2", *n.FolderID)
			},
		},
		{
			name:  "folderId set to null detaches the note",
			patch: Patch{"folderId": nil},
			check: func(t *testing.T, n *Note) {
				assert.Nil(t, n.FolderID)
			},
		},
		{
			name:  "deleted toggle",
			patch: Patch{"deleted": true},
			check: func(t *testing.T, n *Note) {
				assert.True(t, n.Deleted)
			},
		},
		{
			name:  "pin toggle",
			patch: Patch{"isPinned": true},
			check: func(t *testing.T, n *Note) {
				assert.True(t, n.IsPinned)
			},
		},
		{
			name:  "sync status updated",
			patch: Patch{"syncStatus": SyncPending},
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, SyncPending, n.SyncStatus)
			},
		},
		{
			name:    "unknown sync status rejected",
			patch:   Patch{"syncStatus": "uploading"},
			wantErr: ErrValidation,
		},
		{
			name:    "id is immutable",
			patch:   Patch{"id": "n2"},
			wantErr: ErrValidation,
		},
		{
			name:    "createdAt is immutable",
			patch:   Patch{"createdAt": int64(99)},
			wantErr: ErrValidation,
		},
		{
			name:    "unknown field rejected",
			patch:   Patch{"color": "red"},
			wantErr: ErrValidation,
		},
		{
			name:    "wrong value type rejected",
			patch:   Patch{"title": 42},
			wantErr: ErrValidation,
		},
		{
			name:  "updatedAt accepted from JSON number",
			patch: Patch{"updatedAt": float64(2000)},
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, int64(2000), n.UpdatedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := base()
			err := n.Apply(tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, n)
		})
	}
}

func TestCollectionApply(t *testing.T) {
	tests := []struct {
		name    string
		patch   Patch
		wantErr error
	}{
		{name: "rename", patch: Patch{"name": "Work"}},
		{name: "empty name rejected", patch: Patch{"name": ""}, wantErr: ErrValidation},
		{name: "soft delete", patch: Patch{"deleted": true}},
		{name: "unknown field rejected", patch: Patch{"folderId": "f1"}, wantErr: ErrValidation},
		{name: "id is immutable", patch: Patch{"id": "c2"}, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collection{ID: "c1", Name: "Inbox"}
			err := c.Apply(tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectionValidate(t *testing.T) {
	c := &Collection{ID: "c1", Name: ""}
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c.Name = "Inbox"
	assert.NoError(t, c.Validate())

	c.SyncStatus = "bogus"
	assert.ErrorIs(t, c.Validate(), ErrValidation)
}
