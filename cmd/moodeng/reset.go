// Reset command wipes all stored data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all notes, collections, histories, and workspace settings",
	Long: `Reset clears every table in the store. The schema stays in place,
so the store remains usable afterwards. Requires --force.

Example:
  moodeng reset --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the wipe")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return fmt.Errorf("reset wipes all data; re-run with --force to confirm")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ClearAll(); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"status": "success"})
	}
	fmt.Println("Store cleared")
	return nil
}
