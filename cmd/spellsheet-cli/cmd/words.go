package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the word library",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the library",
	Long: `Add one or more words. Commas also separate words, and words already
in the library (ignoring case) are skipped.

Examples:
  spellsheet-cli words add necessary
  spellsheet-cli words add "rhythm, separate" weird`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			result *commands.AddWordsResult
			err    error
		)
		if len(args) == 1 {
			result, err = commands.NewAddWordCommand(GetSession(), args[0]).Execute(cmd.Context())
		} else {
			result, err = commands.NewAddWordsCommand(GetSession(), args).Execute(cmd.Context())
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var wordsBulkCmd = &cobra.Command{
	Use:   "bulk [file]",
	Short: "Add one word per line from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		raw, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("failed to read words: %w", err)
		}

		result, err := commands.NewAddWordsCommand(GetSession(), []string{string(raw)}).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List library words alphabetically",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		words, err := commands.NewListWordsCommand(GetSession(), query).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id|word>",
	Short: "Delete a word from the library",
	Long: `Delete a word by id or text. Saved sheets keep their copy of the word.

Examples:
  spellsheet-cli words delete w_3f2c...
  spellsheet-cli words delete necessary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteWordCommand(GetSession(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var wordsFindCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search the library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchWordsCommand(GetSession(), strings.Join(args, " ")).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", r.Score, r.Text)
		}
		return nil
	},
}

func printWords(w io.Writer, words []domain.Word) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No words.")
		return
	}
	for _, word := range words {
		fmt.Fprintf(w, "%-24s used %-3d %s\n", word.Text, word.UsageCount, word.ID)
	}
}

func init() {
	wordsCmd.AddCommand(wordsAddCmd, wordsBulkCmd, wordsListCmd, wordsDeleteCmd, wordsFindCmd)
	rootCmd.AddCommand(wordsCmd)
}
