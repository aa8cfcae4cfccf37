// Shared helpers for moodeng CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/moodeng-app/moodeng/internal/logging"
	"github.com/moodeng-app/moodeng/pkg/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// openStore resolves the data directory and opens the local store. The
// caller must defer store.Close().
func openStore() (types.LocalStore, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	log, err := logging.New(flagDebug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	s, err := sqlite.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// shortID truncates an ID to its first 8 characters for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate clips s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// formatMillis renders an epoch-millisecond timestamp as a local date.
func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// folderLabel renders a nullable folder reference for table output.
func folderLabel(folderID *string) string {
	if folderID == nil {
		return "-"
	}
	return shortID(*folderID)
}
