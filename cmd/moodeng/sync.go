// Sync commands expose the pending-change surface used by sync collaborators.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inspect and mark sync state",
}

var syncPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List records awaiting sync",
	Args:  cobra.NoArgs,
	RunE:  runSyncPending,
}

var syncMarkStatus string

var syncMarkCmd = &cobra.Command{
	Use:   "mark <id>",
	Short: "Set the sync status of a note or collection",
	Long: `Mark sets the sync status of the record with the given ID,
whether it is a note or a collection.

Example:
  moodeng sync mark abc123 --status synced
  moodeng sync mark abc123 --status conflicted`,
	Args: cobra.ExactArgs(1),
	RunE: runSyncMark,
}

func init() {
	syncMarkCmd.Flags().StringVar(&syncMarkStatus, "status", "", "new status (pending, synced, conflicted)")
	_ = syncMarkCmd.MarkFlagRequired("status")

	syncCmd.AddCommand(syncPendingCmd)
	syncCmd.AddCommand(syncMarkCmd)
}

func runSyncPending(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	notes, err := s.GetPendingSyncNotes()
	if err != nil {
		return fmt.Errorf("list pending notes: %w", err)
	}
	collections, err := s.GetPendingSyncCollections()
	if err != nil {
		return fmt.Errorf("list pending collections: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"notes":       notes,
			"collections": collections,
		})
	}

	fmt.Printf("Pending notes: %d\n", len(notes))
	for _, n := range notes {
		fmt.Printf("  %s  %s\n", shortID(n.ID), truncate(n.Title, 40))
	}
	fmt.Printf("Pending collections: %d\n", len(collections))
	for _, c := range collections {
		fmt.Printf("  %s  %s\n", shortID(c.ID), truncate(c.Name, 40))
	}
	return nil
}

func runSyncMark(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateSyncStatus(args[0], syncMarkStatus); err != nil {
		return fmt.Errorf("mark %s: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(map[string]string{"id": args[0], "status": syncMarkStatus})
	}
	fmt.Printf("Marked %s as %s\n", args[0], syncMarkStatus)
	return nil
}
