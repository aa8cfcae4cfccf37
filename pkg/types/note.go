package types

import "fmt"

// Sync status values. A record is "pending" until an external sync
// collaborator reconciles it; sync itself is not part of this module.
const (
	SyncPending    = "pending"
	SyncSynced     = "synced"
	SyncConflicted = "conflicted"
)

// validSyncStatuses is the set of recognized sync status values.
var validSyncStatuses = map[string]bool{
	SyncPending:    true,
	SyncSynced:     true,
	SyncConflicted: true,
}

// ValidSyncStatus reports whether s is a recognized sync status.
func ValidSyncStatus(s string) bool {
	return validSyncStatuses[s]
}

// Note is a single markdown note. FolderID is nil for unfiled notes;
// a soft-deleted note keeps its record with Deleted set.
type Note struct {
	ID         string  `json:"id"`         // Stable unique key, immutable after creation.
	Title      string  `json:"title"`      // Display title.
	Content    string  `json:"content"`    // Raw markdown text.
	FolderID   *string `json:"folderId"`   // Owning collection ID; nil = unfiled.
	CreatedAt  int64   `json:"createdAt"`  // Epoch millis of creation.
	UpdatedAt  int64   `json:"updatedAt"`  // Epoch millis of last mutation, stamped by the repository.
	Deleted    bool    `json:"deleted"`    // Soft-delete flag.
	SyncStatus string  `json:"syncStatus"` // One of the Sync* constants.
	Icon       string  `json:"icon"`       // Display icon identifier.
	LabelColor string  `json:"labelColor"` // Display label color.
	IsPinned   bool    `json:"isPinned"`   // Pinned in the sidebar.
}

// Collection is a flat (non-nested) folder of notes.
type Collection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
	Deleted    bool   `json:"deleted"`
	SyncStatus string `json:"syncStatus"`
	Icon       string `json:"icon"`
	LabelColor string `json:"labelColor"`
}

// Validate checks that the note is well-formed for storage.
func (n *Note) Validate() error {
	if n.SyncStatus != "" && !ValidSyncStatus(n.SyncStatus) {
		return fmt.Errorf("%w: unknown sync status %q", ErrValidation, n.SyncStatus)
	}
	return nil
}

// Apply merges a patch over the note, field by field. The ID is immutable;
// patching it fails with ErrValidation, as does an unknown field or a value
// of the wrong type. UpdatedAt may appear in the patch but the repository
// overwrites it on every mutation.
func (n *Note) Apply(p Patch) error {
	for field, v := range p {
		var err error
		switch field {
		case "title":
			n.Title, err = patchString(field, v)
		case "content":
			n.Content, err = patchString(field, v)
		case "folderId":
			n.FolderID, err = patchNullableString(field, v)
		case "icon":
			n.Icon, err = patchString(field, v)
		case "labelColor":
			n.LabelColor, err = patchString(field, v)
		case "isPinned":
			n.IsPinned, err = patchBool(field, v)
		case "deleted":
			n.Deleted, err = patchBool(field, v)
		case "syncStatus":
			var s string
			if s, err = patchString(field, v); err == nil {
				if !ValidSyncStatus(s) {
					return fmt.Errorf("%w: unknown sync status %q", ErrValidation, s)
				}
				n.SyncStatus = s
			}
		case "updatedAt":
			n.UpdatedAt, err = patchMillis(field, v)
		case "id", "createdAt":
			return fmt.Errorf("%w: field %q is immutable", ErrValidation, field)
		default:
			return fmt.Errorf("%w: unknown note field %q", ErrValidation, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that the collection is well-formed for storage.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: collection name must not be empty", ErrValidation)
	}
	if c.SyncStatus != "" && !ValidSyncStatus(c.SyncStatus) {
		return fmt.Errorf("%w: unknown sync status %q", ErrValidation, c.SyncStatus)
	}
	return nil
}

// Apply merges a patch over the collection. Same rules as Note.Apply.
func (c *Collection) Apply(p Patch) error {
	for field, v := range p {
		var err error
		switch field {
		case "name":
			var s string
			if s, err = patchString(field, v); err == nil {
				if s == "" {
					return fmt.Errorf("%w: collection name must not be empty", ErrValidation)
				}
				c.Name = s
			}
		case "icon":
			c.Icon, err = patchString(field, v)
		case "labelColor":
			c.LabelColor, err = patchString(field, v)
		case "deleted":
			c.Deleted, err = patchBool(field, v)
		case "syncStatus":
			var s string
			if s, err = patchString(field, v); err == nil {
				if !ValidSyncStatus(s) {
					return fmt.Errorf("%w: unknown sync status %q", ErrValidation, s)
				}
				c.SyncStatus = s
			}
		case "updatedAt":
			c.UpdatedAt, err = patchMillis(field, v)
		case "id", "createdAt":
			return fmt.Errorf("%w: field %q is immutable", ErrValidation, field)
		default:
			return fmt.Errorf("%w: unknown collection field %q", ErrValidation, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
