// Export and import commands move store contents through JSONL snapshots.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export all tables as JSONL files",
	Long: `Export writes one JSONL file per table (workspace, notes,
collections, histories) into the given directory. The files are plain
line-delimited JSON, suitable for versioning in git.

Example:
  moodeng export ./snapshot`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import tables from JSONL files",
	Long: `Import reads the JSONL files produced by export and upserts their
records into the store. Missing files are skipped; existing records with
matching IDs are replaced.

Example:
  moodeng import ./snapshot`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ExportJSONL(args[0]); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"exported": args[0], "status": "success"})
	}
	fmt.Println("Exported store to", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ImportJSONL(args[0]); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"imported": args[0], "status": "success"})
	}
	fmt.Println("Imported store from", args[0])
	return nil
}
