// History command shows the note change log.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodeng-app/moodeng/pkg/types"
)

var (
	historyNote  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent note changes",
	Long: `History lists change entries most recent first. Use --note to
restrict the log to one note.

Example:
  moodeng history
  moodeng history --limit 20
  moodeng history --note abc123`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyNote, "note", "", "only entries for this note")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of entries (0 = default cap)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var entries []*types.History
	if historyNote != "" {
		entries, err = s.GetHistoriesByNoteID(historyNote, historyLimit)
	} else {
		entries, err = s.GetRecentHistories(historyLimit)
	}
	if err != nil {
		return fmt.Errorf("list histories: %w", err)
	}

	if flagJSON {
		return printJSON(entries)
	}
	printHistoryTable(entries)
	return nil
}

// printHistoryTable prints history entries in a human-readable table format.
func printHistoryTable(entries []*types.History) {
	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "WHEN\tTYPE\tNOTE\tID")
	fmt.Fprintln(w, "----\t----\t----\t--")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			formatMillis(e.CreatedAt),
			e.Type,
			shortID(e.NoteID),
			shortID(e.ID),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d entries\n", len(entries))
}
