package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"spellsheet/internal/adapters/launcher"
	"spellsheet/internal/application/commands"
	"spellsheet/internal/config"
	"spellsheet/internal/domain"
)

var (
	sheetRandom int
	sheetCopy   bool
	sheetOutput string
	sheetLimit  int
	sheetPlain  bool
	sheetSave   bool
	sheetOpen   bool
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Create and browse practice sheets",
}

var sheetCreateCmd = &cobra.Command{
	Use:   "create [word]...",
	Short: "Save a practice sheet and print it",
	Long: `Save a sheet from the given words, or from a random pick with --random.
Words not yet in the library are added. Saving counts every library word
on the sheet as used once.

Examples:
  spellsheet-cli sheet create because believe friend
  spellsheet-cli sheet create --random 8 --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSaveSheetCommand(GetSession(), args, sheetRandom).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
		return deliverWorksheet(cmd, GetSession().Worksheet())
	},
}

var sheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sheets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sheets, err := commands.NewListSheetsCommand(GetSession(), sheetLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printSheets(cmd.OutOrStdout(), sheets)
		return nil
	},
}

var sheetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render a saved sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, ok := GetSession().History.Get(args[0])
		if !ok {
			return fmt.Errorf("no such sheet: %s", args[0])
		}

		settings := GetSession().Settings()
		created := time.UnixMilli(sheet.CreatedAt)
		if sheetPlain {
			fmt.Fprint(cmd.OutOrStdout(), domain.WorksheetText(sheet.Words, sheet.LinesPerWord, settings.IncludeNameDate, created))
			return nil
		}

		md := domain.WorksheetMarkdown(sheetTitle(sheet), sheet.Words, sheet.LinesPerWord, settings.IncludeNameDate, created)
		return renderMarkdown(cmd.OutOrStdout(), md)
	},
}

var sheetRegenerateCmd = &cobra.Command{
	Use:   "regenerate <id>",
	Short: "Print a saved sheet again, optionally saving it as a new sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRegenerateSheetCommand(GetSession(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)

		if sheetSave {
			saved, err := commands.NewSaveSheetCommand(GetSession(), nil, 0).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), saved.Message)
		}
		return deliverWorksheet(cmd, GetSession().Worksheet())
	},
}

var sheetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved sheet",
	Long:  `Delete a sheet from history. Usage counts it added are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteSheetCommand(GetSession(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

// deliverWorksheet prints the worksheet, or writes it to --output, and
// copies it to the clipboard with --copy. --open writes the file (to the
// data dir when no --output is given) and opens it in the default viewer.
func deliverWorksheet(cmd *cobra.Command, text string) error {
	target := sheetOutput
	if sheetOpen && target == "" {
		target = filepath.Join(config.DataDir(), "worksheet.txt")
	}

	if target != "" {
		if err := GetRuntime().Files.WriteFile(target, []byte(text)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", target)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), text)
	}

	if sheetCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied worksheet to clipboard")
	}

	if sheetOpen {
		return launcher.New().Open(target)
	}
	return nil
}

func renderMarkdown(w io.Writer, md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return nil
	}
	fmt.Fprint(w, out)
	return nil
}

func sheetTitle(s domain.Sheet) string {
	return "Spelling practice " + time.UnixMilli(s.CreatedAt).Format("2006-01-02")
}

func printSheets(w io.Writer, sheets []domain.Sheet) {
	if len(sheets) == 0 {
		fmt.Fprintln(w, "No sheets.")
		return
	}
	for _, s := range sheets {
		fmt.Fprintf(w, "%s  %s  %2d words  %d lines\n",
			s.ID, time.UnixMilli(s.CreatedAt).Format("2006-01-02 15:04"), len(s.Words), s.LinesPerWord)
	}
}

func init() {
	for _, c := range []*cobra.Command{sheetCreateCmd, sheetRegenerateCmd} {
		c.Flags().BoolVar(&sheetCopy, "copy", false, "copy the worksheet to the clipboard")
		c.Flags().StringVarP(&sheetOutput, "output", "o", "", "write the worksheet to a file")
		c.Flags().BoolVar(&sheetOpen, "open", false, "open the written worksheet in the default viewer")
	}
	sheetCreateCmd.Flags().IntVar(&sheetRandom, "random", 0, "pick this many words at random")
	sheetRegenerateCmd.Flags().BoolVar(&sheetSave, "save", false, "save the regenerated words as a new sheet")
	sheetListCmd.Flags().IntVarP(&sheetLimit, "limit", "n", 0, "show at most this many sheets")
	sheetShowCmd.Flags().BoolVar(&sheetPlain, "plain", false, "print plain text instead of styled markdown")

	sheetCmd.AddCommand(sheetCreateCmd, sheetListCmd, sheetShowCmd, sheetRegenerateCmd, sheetDeleteCmd)
	rootCmd.AddCommand(sheetCmd)
}
