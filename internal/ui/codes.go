package ui

import (
	"github.com/spf13/cobra"
)

func (a *App) codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes <code>...",
		Short: "Explain schedule codes",
		Long: `Print the readable schedule and grid blocks of one or more schedule codes.

A code is a list of groups: weekday digits (2=Monday .. 7=Saturday),
a shift letter (M, T or N) and the slot digits within that shift.
Anything after the first space of an argument is ignored.`,
		Example: `  horario codes 24M12
  horario codes 35T34 6N12 246M3456`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, raw := range args {
				printCode(cmd.OutOrStdout(), raw)
			}
		},
	}
}
