package types

// Standard table names for the store.
const (
	WorkspaceTable   = "workspace"
	NotesTable       = "notes"
	CollectionsTable = "collections"
	HistoriesTable   = "histories"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	WorkspaceTable,
	NotesTable,
	CollectionsTable,
	HistoriesTable,
}

// WorkspaceKey is the constant key of the singleton workspace record.
const WorkspaceKey = "workspace"
