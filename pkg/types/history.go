package types

// History entry types. Each classifies one state transition of a note.
const (
	HistoryCreated  = "created"
	HistoryUpdated  = "updated"
	HistoryMoved    = "moved"
	HistoryDeleted  = "deleted"
	HistoryRestored = "restored"
)

// validHistoryTypes is the set of recognized history types.
var validHistoryTypes = map[string]bool{
	HistoryCreated:  true,
	HistoryUpdated:  true,
	HistoryMoved:    true,
	HistoryDeleted:  true,
	HistoryRestored: true,
}

// ValidHistoryType reports whether t is a recognized history type.
func ValidHistoryType(t string) bool {
	return validHistoryTypes[t]
}

// History is an immutable audit record of one note transition. Entries are
// append-only and may outlive their note: NoteID is an opaque reference
// with no enforced existence, so readers must tolerate orphaned rows.
type History struct {
	ID         string         `json:"id"`
	NoteID     string         `json:"noteId"`
	Type       string         `json:"type"`
	Payload    map[string]any `json:"payload"` // Shape depends on Type; see HistoryService.
	CreatedAt  int64          `json:"createdAt"`
	Deleted    bool           `json:"deleted"`
	SyncStatus string         `json:"syncStatus"`
}
