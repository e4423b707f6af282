package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/medschedulr/roster/internal/cli/formatter"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
)

// roundTripVerifier is the narrow slice of *engine.Engine this command
// actually needs; app.Schedule is typed as the broader ScheduleUseCase
// interface, so this extra capability is probed with a type assertion
// rather than widening that interface for one diagnostic command.
type roundTripVerifier interface {
	VerifyRoundTrip(ctx context.Context, req contract.ScheduleRequest) (bool, *contract.ScheduleResponse, error)
}

func newReportCmd(app *App) *cobra.Command {
	var inputPath string
	var verify bool
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Solve a roster request and render a human-readable report",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(inputPath)
			if err != nil {
				return err
			}

			var resp *contract.ScheduleResponse
			var verifyLine string

			if verify {
				verifier, ok := app.Schedule.(roundTripVerifier)
				if !ok {
					return fmt.Errorf("the configured schedule use case does not support --verify")
				}
				stable, vresp, verr := verifier.VerifyRoundTrip(cmd.Context(), req)
				if verr != nil {
					return verr
				}
				resp = vresp
				if stable {
					verifyLine = formatter.StyleGreen.Render("round-trip check passed: re-solving on the produced assignment reproduces it")
				} else {
					verifyLine = formatter.StyleRed.Render("round-trip check failed: re-solving on the produced assignment diverged")
				}
			} else {
				resp, err = app.Schedule.Generate(cmd.Context(), req)
				if err != nil {
					return err
				}
			}

			if !noInteractive && app.IsInteractive != nil && app.IsInteractive() {
				var buf bytes.Buffer
				if verifyLine != "" {
					fmt.Fprintln(&buf, verifyLine)
				}
				renderReport(&buf, resp)
				return runScheduleViewer(buf.String())
			}

			if verifyLine != "" {
				fmt.Fprintln(cmd.OutOrStdout(), verifyLine)
			}
			renderReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a ScheduleRequest JSON file (default: stdin)")
	cmd.Flags().BoolVar(&verify, "verify", false, "run the round-trip stability check instead of a fresh solve")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "print the report instead of opening the scrollable viewer")
	return cmd
}

func renderReport(w io.Writer, resp *contract.ScheduleResponse) {
	fmt.Fprintf(w, "status: %s\n", formatter.StatusIndicator(domain.SolverStatus(resp.SolverStatus)))
	fmt.Fprintf(w, "phase adopted: %d\n", resp.AdoptedPhase)
	if resp.ObjectiveValue != nil {
		fmt.Fprintf(w, "objective: %.2f\n", *resp.ObjectiveValue)
	}
	fmt.Fprintf(w, "weekend assignments: %d\n\n", resp.WeekendAssignments)

	fmt.Fprintln(w, formatter.RenderTable(
		[]string{"Date", "Post", "Doctor"},
		assignmentRows(resp.Schedule),
	))

	if len(resp.Statistics.EligibleUnassigned) > 0 {
		fmt.Fprintf(w, "\neligible but unassigned: %v\n", resp.Statistics.EligibleUnassigned)
	}

	if len(resp.Warnings) > 0 {
		fmt.Fprintln(w, "\nwarnings:")
		for _, warning := range resp.Warnings {
			fmt.Fprintln(w, formatter.Dim("  - "+warning))
		}
	}
}

func assignmentRows(schedule []contract.AssignmentRow) [][]string {
	rows := make([][]string, len(schedule))
	for i, row := range schedule {
		rows[i] = []string{row.Date, row.Post, row.Doctor}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i][0] != rows[j][0] {
			return rows[i][0] < rows[j][0]
		}
		return rows[i][1] < rows[j][1]
	})
	return rows
}
