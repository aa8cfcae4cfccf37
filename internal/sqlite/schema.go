// Package sqlite implements the durable key/value substrate for the moodeng
// store. Each logical table is one SQLite table holding JSON records keyed
// by id; secondary lookups go through json_extract expression indexes.
package sqlite

// Schema DDL. Every table has the same two-column shape; the implicit rowid
// preserves insertion order for history tie-breaking.
const (
	createWorkspace = `CREATE TABLE IF NOT EXISTS workspace (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL
);`

	createCollections = `CREATE TABLE IF NOT EXISTS collections (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL
);`

	createHistories = `CREATE TABLE IF NOT EXISTS histories (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL
);`
)

// Index DDL for the secondary lookups the repositories use.
const (
	idxNotesFolder     = `CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(json_extract(record, '$.folderId'));`
	idxNotesDeleted    = `CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(json_extract(record, '$.deleted'));`
	idxNotesSync       = `CREATE INDEX IF NOT EXISTS idx_notes_sync ON notes(json_extract(record, '$.syncStatus'));`
	idxNotesPinned     = `CREATE INDEX IF NOT EXISTS idx_notes_pinned ON notes(json_extract(record, '$.isPinned'));`
	idxNotesUpdated    = `CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(json_extract(record, '$.updatedAt'));`
	idxCollsDeleted    = `CREATE INDEX IF NOT EXISTS idx_collections_deleted ON collections(json_extract(record, '$.deleted'));`
	idxCollsSync       = `CREATE INDEX IF NOT EXISTS idx_collections_sync ON collections(json_extract(record, '$.syncStatus'));`
	idxCollsUpdated    = `CREATE INDEX IF NOT EXISTS idx_collections_updated ON collections(json_extract(record, '$.updatedAt'));`
	idxHistoriesNote   = `CREATE INDEX IF NOT EXISTS idx_histories_note ON histories(json_extract(record, '$.noteId'));`
	idxHistoriesCreate = `CREATE INDEX IF NOT EXISTS idx_histories_created ON histories(json_extract(record, '$.createdAt'));`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createWorkspace,
	createNotes,
	createCollections,
	createHistories,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxNotesFolder,
	idxNotesDeleted,
	idxNotesSync,
	idxNotesPinned,
	idxNotesUpdated,
	idxCollsDeleted,
	idxCollsSync,
	idxCollsUpdated,
	idxHistoriesNote,
	idxHistoriesCreate,
}

// tableIndexes maps table name to the index names QueryByIndex accepts,
// each resolving to a JSON path inside the record column.
var tableIndexes = map[string]map[string]string{
	"workspace": {},
	"notes": {
		"folderId":   "$.folderId",
		"deleted":    "$.deleted",
		"syncStatus": "$.syncStatus",
		"isPinned":   "$.isPinned",
		"updatedAt":  "$.updatedAt",
	},
	"collections": {
		"deleted":    "$.deleted",
		"syncStatus": "$.syncStatus",
		"updatedAt":  "$.updatedAt",
	},
	"histories": {
		"noteId":    "$.noteId",
		"createdAt": "$.createdAt",
	},
}
