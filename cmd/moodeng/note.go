// Note commands create, query, and mutate notes.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodeng-app/moodeng/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var (
	noteAddTitle   string
	noteAddContent string
	noteAddFolder  string
	noteAddPinned  bool
)

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a new note with the specified title.

Example:
  moodeng note add --title "Meeting notes"
  moodeng note add --title "Ideas" --folder abc123 --pinned
  moodeng note add --title "Draft" --json`,
	RunE: runNoteAdd,
}

var (
	noteListAll     bool
	noteListFolder  string
	noteListUnfiled bool
	noteListPinned  bool
)

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List displays notes, excluding soft-deleted ones by default.

Example:
  moodeng note list
  moodeng note list --all
  moodeng note list --folder abc123
  moodeng note list --unfiled
  moodeng note list --pinned`,
	RunE: runNoteList,
}

var noteGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a note by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteGet,
}

var (
	noteUpdateTitle      string
	noteUpdateContent    string
	noteUpdateIcon       string
	noteUpdateLabelColor string
)

var noteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update note fields",
	Long: `Update changes one or more fields of a note. Only flags that were
set are applied.

Example:
  moodeng note update abc123 --title "New title"
  moodeng note update abc123 --content "Revised body" --icon star`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteUpdate,
}

var (
	noteMoveTo      string
	noteMoveUnfiled bool
)

var noteMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a note to a collection or to the unfiled root",
	Long: `Move assigns the note to a collection, or detaches it with --unfiled.

Example:
  moodeng note move abc123 --to def456
  moodeng note move abc123 --unfiled`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteMove,
}

var noteDeleteHard bool

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long: `Delete soft-deletes a note so it can be restored later. With --hard
the note is removed permanently.

Example:
  moodeng note delete abc123
  moodeng note delete abc123 --hard`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteDelete,
}

var noteRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a soft-deleted note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteRestore,
}

var notePinOff bool

var notePinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin or unpin a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotePin,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddTitle, "title", "", "note title (required)")
	noteAddCmd.Flags().StringVar(&noteAddContent, "content", "", "note body")
	noteAddCmd.Flags().StringVar(&noteAddFolder, "folder", "", "collection ID to file the note under")
	noteAddCmd.Flags().BoolVar(&noteAddPinned, "pinned", false, "pin the note")
	_ = noteAddCmd.MarkFlagRequired("title")

	noteListCmd.Flags().BoolVar(&noteListAll, "all", false, "include soft-deleted notes")
	noteListCmd.Flags().StringVar(&noteListFolder, "folder", "", "only notes in this collection")
	noteListCmd.Flags().BoolVar(&noteListUnfiled, "unfiled", false, "only notes outside any collection")
	noteListCmd.Flags().BoolVar(&noteListPinned, "pinned", false, "only pinned notes")

	noteUpdateCmd.Flags().StringVar(&noteUpdateTitle, "title", "", "new title")
	noteUpdateCmd.Flags().StringVar(&noteUpdateContent, "content", "", "new body")
	noteUpdateCmd.Flags().StringVar(&noteUpdateIcon, "icon", "", "new icon")
	noteUpdateCmd.Flags().StringVar(&noteUpdateLabelColor, "label-color", "", "new label color")

	noteMoveCmd.Flags().StringVar(&noteMoveTo, "to", "", "target collection ID")
	noteMoveCmd.Flags().BoolVar(&noteMoveUnfiled, "unfiled", false, "detach from any collection")
	noteMoveCmd.MarkFlagsOneRequired("to", "unfiled")
	noteMoveCmd.MarkFlagsMutuallyExclusive("to", "unfiled")

	noteDeleteCmd.Flags().BoolVar(&noteDeleteHard, "hard", false, "remove permanently instead of soft-deleting")

	notePinCmd.Flags().BoolVar(&notePinOff, "off", false, "unpin instead of pinning")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(noteMoveCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteRestoreCmd)
	noteCmd.AddCommand(notePinCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	note := &types.Note{
		Title:    noteAddTitle,
		Content:  noteAddContent,
		IsPinned: noteAddPinned,
	}
	if noteAddFolder != "" {
		note.FolderID = &noteAddFolder
	}

	created, err := s.CreateNote(note)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created note: %s\n", created.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var notes []*types.Note
	switch {
	case noteListPinned:
		notes, err = s.GetPinnedNotes()
	case noteListUnfiled:
		notes, err = s.GetNotesByFolder(nil)
	case noteListFolder != "":
		notes, err = s.GetNotesByFolder(&noteListFolder)
	default:
		notes, err = s.GetAllNotes(noteListAll)
	}
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if flagJSON {
		return printJSON(notes)
	}
	printNoteTable(notes)
	return nil
}

func runNoteGet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	note, err := s.GetNote(args[0])
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note %q: %w", args[0], types.ErrNotFound)
	}

	if flagJSON {
		return printJSON(note)
	}
	fmt.Println("ID:      ", note.ID)
	fmt.Println("Title:   ", note.Title)
	fmt.Println("Folder:  ", folderLabel(note.FolderID))
	fmt.Println("Pinned:  ", note.IsPinned)
	fmt.Println("Deleted: ", note.Deleted)
	fmt.Println("Sync:    ", note.SyncStatus)
	fmt.Println("Updated: ", formatMillis(note.UpdatedAt))
	if note.Content != "" {
		fmt.Println()
		fmt.Println(note.Content)
	}
	return nil
}

func runNoteUpdate(cmd *cobra.Command, args []string) error {
	updates := types.Patch{}
	if cmd.Flags().Changed("title") {
		updates["title"] = noteUpdateTitle
	}
	if cmd.Flags().Changed("content") {
		updates["content"] = noteUpdateContent
	}
	if cmd.Flags().Changed("icon") {
		updates["icon"] = noteUpdateIcon
	}
	if cmd.Flags().Changed("label-color") {
		updates["labelColor"] = noteUpdateLabelColor
	}
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update; pass at least one of --title, --content, --icon, --label-color")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.UpdateNote(args[0], updates)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated note: %s\n", updated.ID)
	return nil
}

func runNoteMove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var target any
	if !noteMoveUnfiled {
		target = noteMoveTo
	}

	updated, err := s.UpdateNote(args[0], types.Patch{"folderId": target})
	if err != nil {
		return fmt.Errorf("move note: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Moved note %s to %s\n", updated.ID, folderLabel(updated.FolderID))
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteNote(args[0], noteDeleteHard); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted note: %s\n", args[0])
	return nil
}

func runNoteRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	restored, err := s.RestoreNote(args[0])
	if err != nil {
		return fmt.Errorf("restore note: %w", err)
	}

	if flagJSON {
		return printJSON(restored)
	}
	fmt.Printf("Restored note: %s\n", restored.ID)
	return nil
}

func runNotePin(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.UpdateNote(args[0], types.Patch{"isPinned": !notePinOff})
	if err != nil {
		return fmt.Errorf("pin note: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	if updated.IsPinned {
		fmt.Printf("Pinned note: %s\n", updated.ID)
	} else {
		fmt.Printf("Unpinned note: %s\n", updated.ID)
	}
	return nil
}

// printNoteTable prints notes in a human-readable table format.
func printNoteTable(notes []*types.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tFOLDER\tPINNED\tUPDATED")
	fmt.Fprintln(w, "--\t-----\t------\t------\t-------")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
			shortID(n.ID),
			truncate(n.Title, 40),
			folderLabel(n.FolderID),
			n.IsPinned,
			formatMillis(n.UpdatedAt),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d note(s)\n", len(notes))
}
