package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spellsheet/internal/application/commands"
	"spellsheet/internal/domain"
)

var (
	setLines    int
	setExclude  int
	setNameDate bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change worksheet settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		fmt.Fprintln(cmd.OutOrStdout(), commands.FormatSettings(s.Settings()))
		fmt.Fprintf(cmd.OutOrStdout(), "policy: %s, usage tracking: %t\n", s.Policy(), s.TrackUsage())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings; omitted flags keep their value",
	Long: `Change settings.

Examples:
  spellsheet-cli settings set --lines 4
  spellsheet-cli settings set --exclude-recent 2 --name-date`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var override domain.SettingsOverride
		if cmd.Flags().Changed("lines") {
			override.LinesPerWord = &setLines
		}
		if cmd.Flags().Changed("exclude-recent") {
			override.ExcludeRecent = &setExclude
		}
		if cmd.Flags().Changed("name-date") {
			override.IncludeNameDate = &setNameDate
		}

		result, err := commands.NewUpdateSettingsCommand(GetSession(), override).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in an interactive form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := GetSession().Settings()
		lines := strconv.Itoa(current.LinesPerWord)
		exclude := strconv.Itoa(current.ExcludeRecent)
		nameDate := current.IncludeNameDate

		form := newForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Lines per word").
					Description("Blank writing lines under each word").
					Value(&lines).
					Validate(intAtLeast(1)),
				huh.NewInput().
					Title("Exclude recent sheets").
					Description("Skip words used on this many of the newest sheets").
					Value(&exclude).
					Validate(intAtLeast(0)),
				huh.NewConfirm().
					Title("Print name and date header?").
					Value(&nameDate),
			),
		)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled")
				return nil
			}
			return err
		}

		l, _ := strconv.Atoi(lines)
		e, _ := strconv.Atoi(exclude)
		override := domain.SettingsOverride{LinesPerWord: &l, ExcludeRecent: &e, IncludeNameDate: &nameDate}

		result, err := commands.NewUpdateSettingsCommand(GetSession(), override).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form, falling back to accessible mode without a TTY
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

func intAtLeast(lo int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < lo {
			return fmt.Errorf("must be at least %d", lo)
		}
		return nil
	}
}

func init() {
	settingsSetCmd.Flags().IntVar(&setLines, "lines", domain.DefaultLinesPerWord, "blank lines per word (at least 1)")
	settingsSetCmd.Flags().IntVar(&setExclude, "exclude-recent", domain.DefaultExcludeRecent, "skip words from this many recent sheets")
	settingsSetCmd.Flags().BoolVar(&setNameDate, "name-date", false, "print a name and date header")

	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsEditCmd)
	rootCmd.AddCommand(settingsCmd)
}
