package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medschedulr/roster/internal/cli/formatter"
	"github.com/medschedulr/roster/internal/store"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently solved roster runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Runs == nil {
				return fmt.Errorf("no run history store configured")
			}

			runs, err := app.Runs.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "Roster", "Phase", "Status", "Objective", "Success", "Warnings"},
				historyRows(runs),
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}

func historyRows(runs []*store.RunRecord) [][]string {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		objective := "-"
		if r.ObjectiveValue != nil {
			objective = fmt.Sprintf("%.2f", *r.ObjectiveValue)
		}
		rows[i] = []string{
			r.ID,
			fmt.Sprintf("%s to %s", r.RosterStart.Format("2006-01-02"), r.RosterEnd.Format("2006-01-02")),
			fmt.Sprintf("%d", r.AdoptedPhase),
			formatter.StatusIndicator(r.SolverStatus),
			objective,
			fmt.Sprintf("%t", r.Success),
			fmt.Sprintf("%d", r.WarningCount),
		}
	}
	return rows
}
