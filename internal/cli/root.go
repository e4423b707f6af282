// Package cli wires the scheduler's cobra commands against an App of
// service interfaces, the same shape the teacher project's root command
// uses (a plain struct of ports, no global state).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/medschedulr/roster/internal/engine"
	"github.com/medschedulr/roster/internal/store"
)

// App holds every dependency the CLI commands need.
type App struct {
	Schedule      engine.ScheduleUseCase
	Runs          store.RunRepo
	Workload      store.WorkloadLedgerRepo
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "scheduler" command and registers its
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Doctor roster scheduling engine",
		Long: `Doctor roster scheduling engine.

Builds a two-phase constraint-programming model from a roster request and
produces a per-day doctor-to-post assignment.`,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newReportCmd(app),
		newHistoryCmd(app),
		newWizardCmd(app),
	)

	return root
}
