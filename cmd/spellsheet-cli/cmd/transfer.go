package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"spellsheet/internal/application/commands"
)

var (
	exportFormat string
	exportOutput string
	exportCopy   bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import words from a .json or .csv library file",
	Long: `Import words from a library export. JSON files may hold
{"library": [...]} or a bare array of strings or {"text": ...} objects.
CSV files use the first column; a header row containing "word" is skipped.

A malformed file changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, data, err := GetRuntime().Files.ReadImport(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewImportCommand(GetSession(), name, data).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as JSON or CSV",
	Long: `Export the library. Without --output the content is printed.

Examples:
  spellsheet-cli export > library.json
  spellsheet-cli export --format csv -o ~/backup/
  spellsheet-cli export --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := commands.NewExportCommand(GetSession(), exportFormat).Execute(cmd.Context())
		if err != nil {
			return err
		}

		switch {
		case exportCopy:
			if err := clipboard.WriteAll(string(payload.Data)); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard\n", payload.Filename)
		case exportOutput != "":
			path, err := GetRuntime().Files.WriteExport(payload, exportOutput)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", path)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), string(payload.Data))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file or directory to write to")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy to the clipboard instead of printing")

	rootCmd.AddCommand(importCmd, exportCmd)
}
