// Workspace commands read and update the singleton workspace record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodeng-app/moodeng/pkg/types"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspace settings",
}

var workspaceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the workspace settings",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceShow,
}

var (
	workspaceSetTitle    string
	workspaceSetTheme    string
	workspaceSetDarkmode bool
	workspaceSetLastNote string
)

var workspaceSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update workspace settings",
	Long: `Set changes one or more workspace settings. Only flags that were
set are applied.

Example:
  moodeng workspace set --title "Personal"
  moodeng workspace set --theme dark-warm --darkmode
  moodeng workspace set --last-note abc123`,
	RunE: runWorkspaceSet,
}

var workspaceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the workspace to defaults",
	Long: `Reset deletes the workspace record; the next read recreates it
with default settings and a fresh client ID.`,
	Args: cobra.NoArgs,
	RunE: runWorkspaceReset,
}

func init() {
	workspaceSetCmd.Flags().StringVar(&workspaceSetTitle, "title", "", "workspace title")
	workspaceSetCmd.Flags().StringVar(&workspaceSetTheme, "theme", "", "color theme (default, warm, cool, sepia, dark, dark-warm)")
	workspaceSetCmd.Flags().BoolVar(&workspaceSetDarkmode, "darkmode", false, "dark color scheme")
	workspaceSetCmd.Flags().StringVar(&workspaceSetLastNote, "last-note", "", "last-viewed note ID (empty clears it)")

	workspaceCmd.AddCommand(workspaceShowCmd)
	workspaceCmd.AddCommand(workspaceSetCmd)
	workspaceCmd.AddCommand(workspaceResetCmd)
}

func runWorkspaceShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	w, err := s.GetWorkspace()
	if err != nil {
		return fmt.Errorf("get workspace: %w", err)
	}

	if flagJSON {
		return printJSON(w)
	}
	fmt.Println("Client ID:", w.ClientID)
	fmt.Println("Title:    ", w.Title)
	fmt.Println("Theme:    ", w.Theme)
	fmt.Println("Darkmode: ", w.Darkmode)
	if w.LastNoteID != nil {
		fmt.Println("Last note:", *w.LastNoteID)
	}
	return nil
}

func runWorkspaceSet(cmd *cobra.Command, args []string) error {
	updates := types.Patch{}
	if cmd.Flags().Changed("title") {
		updates["title"] = workspaceSetTitle
	}
	if cmd.Flags().Changed("theme") {
		updates["theme"] = workspaceSetTheme
	}
	if cmd.Flags().Changed("darkmode") {
		updates["darkmode"] = workspaceSetDarkmode
	}
	if cmd.Flags().Changed("last-note") {
		if workspaceSetLastNote == "" {
			updates["lastNoteId"] = nil
		} else {
			updates["lastNoteId"] = workspaceSetLastNote
		}
	}
	if len(updates) == 0 {
		return fmt.Errorf("no settings to update; pass at least one of --title, --theme, --darkmode, --last-note")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.UpdateWorkspace(updates)
	if err != nil {
		return fmt.Errorf("update workspace: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Println("Workspace updated")
	return nil
}

func runWorkspaceReset(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteWorkspace(); err != nil {
		return fmt.Errorf("reset workspace: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"status": "success"})
	}
	fmt.Println("Workspace reset to defaults")
	return nil
}
