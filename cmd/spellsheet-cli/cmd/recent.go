package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellsheet/internal/application/commands"
)

var recentCmd = &cobra.Command{
	Use:   "recent [sheets]",
	Short: "List words used by the newest sheets",
	Long: `List the words on the newest sheets. These are the words a least-used
pick skips. Defaults to the exclude-recent setting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := countArg(args, GetSession().Settings().ExcludeRecent)
		if err != nil {
			return err
		}

		result, err := commands.NewRecentWordsCommand(GetSession(), n).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if missing := len(result.IDs) - len(result.Words); missing > 0 {
			defer fmt.Fprintf(cmd.ErrOrStderr(), "%d word(s) since deleted from the library\n", missing)
		}
		printWords(cmd.OutOrStdout(), result.Words)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
