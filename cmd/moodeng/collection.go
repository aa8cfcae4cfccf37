// Collection commands create, query, and mutate collections.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moodeng-app/moodeng/pkg/types"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"col"},
	Short:   "Manage collections",
}

var (
	collectionAddName       string
	collectionAddIcon       string
	collectionAddLabelColor string
)

var collectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new collection",
	Long: `Add creates a new collection with the specified name.

Example:
  moodeng collection add --name "Work"
  moodeng collection add --name "Ideas" --icon bulb --json`,
	RunE: runCollectionAdd,
}

var collectionListAll bool

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	RunE:  runCollectionList,
}

var collectionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a collection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionGet,
}

var (
	collectionUpdateName       string
	collectionUpdateIcon       string
	collectionUpdateLabelColor string
)

var collectionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update collection fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionUpdate,
}

var (
	collectionDeleteHard    bool
	collectionDeleteNotes   bool
	collectionDeleteCascade bool
)

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a collection",
	Long: `Delete soft-deletes a collection; --hard removes it permanently.

With --notes the collection's notes are handled too: detached to the
unfiled root by default, or deleted along with the collection when
--cascade is also set.

Example:
  moodeng collection delete abc123
  moodeng collection delete abc123 --notes
  moodeng collection delete abc123 --notes --cascade --hard`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionDelete,
}

var collectionRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a soft-deleted collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionRestore,
}

func init() {
	collectionAddCmd.Flags().StringVar(&collectionAddName, "name", "", "collection name (required)")
	collectionAddCmd.Flags().StringVar(&collectionAddIcon, "icon", "", "collection icon")
	collectionAddCmd.Flags().StringVar(&collectionAddLabelColor, "label-color", "", "label color")
	_ = collectionAddCmd.MarkFlagRequired("name")

	collectionListCmd.Flags().BoolVar(&collectionListAll, "all", false, "include soft-deleted collections")

	collectionUpdateCmd.Flags().StringVar(&collectionUpdateName, "name", "", "new name")
	collectionUpdateCmd.Flags().StringVar(&collectionUpdateIcon, "icon", "", "new icon")
	collectionUpdateCmd.Flags().StringVar(&collectionUpdateLabelColor, "label-color", "", "new label color")

	collectionDeleteCmd.Flags().BoolVar(&collectionDeleteHard, "hard", false, "remove permanently instead of soft-deleting")
	collectionDeleteCmd.Flags().BoolVar(&collectionDeleteNotes, "notes", false, "also handle the collection's notes")
	collectionDeleteCmd.Flags().BoolVar(&collectionDeleteCascade, "cascade", false, "delete the notes instead of detaching them (requires --notes)")

	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionGetCmd)
	collectionCmd.AddCommand(collectionUpdateCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionRestoreCmd)
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	created, err := s.CreateCollection(&types.Collection{
		Name:       collectionAddName,
		Icon:       collectionAddIcon,
		LabelColor: collectionAddLabelColor,
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created collection: %s\n", created.ID)
	return nil
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	collections, err := s.GetAllCollections(collectionListAll)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if flagJSON {
		return printJSON(collections)
	}
	printCollectionTable(collections)
	return nil
}

func runCollectionGet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	collection, err := s.GetCollection(args[0])
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}
	if collection == nil {
		return fmt.Errorf("collection %q: %w", args[0], types.ErrNotFound)
	}

	if flagJSON {
		return printJSON(collection)
	}
	fmt.Println("ID:      ", collection.ID)
	fmt.Println("Name:    ", collection.Name)
	fmt.Println("Deleted: ", collection.Deleted)
	fmt.Println("Sync:    ", collection.SyncStatus)
	fmt.Println("Updated: ", formatMillis(collection.UpdatedAt))
	return nil
}

func runCollectionUpdate(cmd *cobra.Command, args []string) error {
	updates := types.Patch{}
	if cmd.Flags().Changed("name") {
		updates["name"] = collectionUpdateName
	}
	if cmd.Flags().Changed("icon") {
		updates["icon"] = collectionUpdateIcon
	}
	if cmd.Flags().Changed("label-color") {
		updates["labelColor"] = collectionUpdateLabelColor
	}
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update; pass at least one of --name, --icon, --label-color")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	updated, err := s.UpdateCollection(args[0], updates)
	if err != nil {
		return fmt.Errorf("update collection: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated collection: %s\n", updated.ID)
	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	if collectionDeleteCascade && !collectionDeleteNotes {
		return fmt.Errorf("--cascade requires --notes")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if collectionDeleteNotes {
		err = s.DeleteCollectionWithNotes(args[0], collectionDeleteCascade, collectionDeleteHard)
	} else {
		err = s.DeleteCollection(args[0], collectionDeleteHard)
	}
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted collection: %s\n", args[0])
	return nil
}

func runCollectionRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	restored, err := s.RestoreCollection(args[0])
	if err != nil {
		return fmt.Errorf("restore collection: %w", err)
	}

	if flagJSON {
		return printJSON(restored)
	}
	fmt.Printf("Restored collection: %s\n", restored.ID)
	return nil
}

// printCollectionTable prints collections in a human-readable table format.
func printCollectionTable(collections []*types.Collection) {
	if len(collections) == 0 {
		fmt.Println("No collections found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tUPDATED")
	fmt.Fprintln(w, "--\t----\t-------")
	for _, c := range collections {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			shortID(c.ID),
			truncate(c.Name, 40),
			formatMillis(c.UpdatedAt),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d collection(s)\n", len(collections))
}
