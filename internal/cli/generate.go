package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/store"
)

func newGenerateCmd(app *App) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Solve a roster request and print the resulting schedule",
		Long:  "Reads a ScheduleRequest as JSON (from --input or stdin) and prints the ScheduleResponse as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequestFrom(cmd.InOrStdin(), inputPath)
			if err != nil {
				return err
			}

			resp, err := app.Schedule.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if app.Runs != nil {
				if rerr := recordRun(cmd.Context(), app, req, resp); rerr != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to record run history: %v\n", rerr)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a ScheduleRequest JSON file (default: stdin)")
	return cmd
}

func readRequest(path string) (contract.ScheduleRequest, error) {
	return readRequestFrom(os.Stdin, path)
}

// readRequestFrom decodes a ScheduleRequest from the file at path, or from
// stdin when path is empty.
func readRequestFrom(stdin io.Reader, path string) (contract.ScheduleRequest, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return contract.ScheduleRequest{}, fmt.Errorf("opening request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req contract.ScheduleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return contract.ScheduleRequest{}, fmt.Errorf("decoding request: %w", err)
	}
	return req, nil
}

func recordRun(ctx context.Context, app *App, req contract.ScheduleRequest, resp *contract.ScheduleResponse) error {
	start, err := calendar.ParseRequiredDate(req.RosterStart, "roster_start")
	if err != nil {
		return err
	}
	end, err := calendar.ParseRequiredDate(req.RosterEnd, "roster_end")
	if err != nil {
		return err
	}

	record := &store.RunRecord{
		ID:             uuid.NewString(),
		RosterStart:    start,
		RosterEnd:      end,
		DoctorCount:    len(req.Doctors),
		DayCount:       len(resp.Statistics.CountsByDate),
		AdoptedPhase:   resp.AdoptedPhase,
		SolverStatus:   domain.SolverStatus(resp.SolverStatus),
		ObjectiveValue: resp.ObjectiveValue,
		Success:        resp.Success,
		WarningCount:   len(resp.Warnings),
	}
	return app.Runs.Create(ctx, record)
}
