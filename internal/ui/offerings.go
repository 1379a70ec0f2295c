package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/timetable"
)

func (a *App) offeringsCmd() *cobra.Command {
	var (
		day  string
		slot string
	)

	cmd := &cobra.Command{
		Use:   "offerings",
		Short: "List the sections offered at a day and slot",
		Long: `List the sections meeting at one cell of the weekly grid, using the
configured lookup (local catalog or remote server).`,
		Example: `  horario offerings --day Monday --slot 07:00
  horario offerings --day Friday --slot 18:30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord := timetable.Coordinate{Day: day, Slot: slot}
			if !timetable.DefaultLayout().Valid(coord) {
				return fmt.Errorf("%w: %s %s", timetable.ErrInvalidCoordinate, day, slot)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			lk, err := a.lookup(ctx)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(ctx, a.config.LookupTimeout())
			defer cancel()

			sections, err := lk.FetchCandidates(ctx, coord.Day, coord.Slot)
			if err != nil {
				return err
			}
			printSections(cmd.OutOrStdout(), coord, sections, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "Monday", "Day of the week (Monday..Saturday)")
	cmd.Flags().StringVar(&slot, "slot", "07:00", "Slot start time (HH:MM)")
	return cmd
}
