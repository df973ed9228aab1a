package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebenfield/chatkit/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `Themes lists the built-in color themes plus any custom themes found
in the themes directory (default: ~/.config/chatkit/themes). Custom
themes with the same name as a built-in take precedence.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	_, loadErrs := styles.DiscoverCustomThemes()

	out := cmd.OutOrStdout()

	for _, err := range loadErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		marker := ""
		if styles.IsCustomTheme(name) {
			marker = " (overridden by custom theme)"
		}
		fmt.Fprintf(out, "  %s%s\n", name, marker)
	}

	custom := styles.CustomThemeNames()
	if len(custom) == 0 {
		fmt.Fprintf(out, "\nNo custom themes found in %s\n", styles.ThemesDir())
		return nil
	}

	fmt.Fprintln(out, "\nCustom themes:")
	for _, name := range custom {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
