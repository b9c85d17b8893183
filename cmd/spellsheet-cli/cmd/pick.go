package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

var pickUniform bool

var pickCmd = &cobra.Command{
	Use:   "pick [n]",
	Short: "Preview a random pick without saving it",
	Long: `Pick n words at random and print them. Nothing is saved; use
"sheet create --random n" to save a sheet.

By default the least-used words are favoured and words from the newest
sheets (see "settings set --exclude-recent") are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := countArg(args, commands.DefaultPickCount)
		if err != nil {
			return err
		}

		var policy *domain.Policy
		if pickUniform {
			p := domain.PolicyUniform
			policy = &p
		}

		result, err := commands.NewPickWordsCommand(GetSession(), count, policy).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func countArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", args[0], err)
	}
	return n, nil
}

func init() {
	pickCmd.Flags().BoolVar(&pickUniform, "uniform", false, "ignore usage counts and recent sheets")
	rootCmd.AddCommand(pickCmd)
}
