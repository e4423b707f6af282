package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/medschedulr/roster/internal/contract"
)

func newWizardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactively build a roster request and solve it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("wizard requires an interactive terminal")
			}

			req, err := runWizard()
			if err != nil {
				return err
			}

			resp, err := app.Schedule.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			renderReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	return cmd
}

// runWizard collects the fields of a contract.ScheduleRequest through a
// sequence of huh groups, using shorthand list inputs (comma-separated
// post lists and one "id:name:category:unit" line per doctor, rather than
// one prompt per doctor) so the wizard stays usable for rosters with more
// than a handful of doctors.
func runWizard() (contract.ScheduleRequest, error) {
	var rosterStart, rosterEnd string
	var postsWeekday, postsWeekend string
	var unitsRaw, doctorsRaw string

	dates := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Roster start (YYYY-MM-DD)").Value(&rosterStart).Validate(validateDate),
			huh.NewInput().Title("Roster end (YYYY-MM-DD)").Value(&rosterEnd).Validate(validateDate),
		),
	).WithTheme(schedulerHuhTheme())
	if err := dates.Run(); err != nil {
		return contract.ScheduleRequest{}, err
	}

	posts := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weekday posts (comma-separated)").
				Placeholder("Ward, ED, Standby Oncall").
				Value(&postsWeekday),
			huh.NewInput().
				Title("Weekend posts (comma-separated)").
				Placeholder("Standby Oncall").
				Value(&postsWeekend),
		),
	).WithTheme(schedulerHuhTheme())
	if err := posts.Run(); err != nil {
		return contract.ScheduleRequest{}, err
	}

	staff := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Units, one per line (id:name:clinic_days, e.g. gen:General:1,3)").
				Value(&unitsRaw),
			huh.NewText().
				Title("Doctors, one per line (id:name:category:unit, e.g. d1:Dr A:registrar:gen)").
				Value(&doctorsRaw),
		),
	).WithTheme(schedulerHuhTheme())
	if err := staff.Run(); err != nil {
		return contract.ScheduleRequest{}, err
	}

	units, err := parseUnits(unitsRaw)
	if err != nil {
		return contract.ScheduleRequest{}, err
	}
	doctors, err := parseDoctors(doctorsRaw)
	if err != nil {
		return contract.ScheduleRequest{}, err
	}

	return contract.ScheduleRequest{
		RosterStart:  rosterStart,
		RosterEnd:    rosterEnd,
		Doctors:      doctors,
		Units:        units,
		PostsWeekday: splitTrim(postsWeekday),
		PostsWeekend: splitTrim(postsWeekend),
	}, nil
}

func validateDate(s string) error {
	if len(strings.TrimSpace(s)) != len("2006-01-02") {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

func splitTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseUnits(raw string) ([]contract.UnitInput, error) {
	var units []contract.UnitInput
	for _, line := range nonEmptyLines(raw) {
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			return nil, fmt.Errorf("invalid unit line %q: expected id:name[:clinic_days]", line)
		}
		u := contract.UnitInput{ID: strings.TrimSpace(fields[0]), Name: strings.TrimSpace(fields[1])}
		if len(fields) >= 3 {
			for _, d := range splitTrim(fields[2]) {
				n, err := strconv.Atoi(d)
				if err != nil {
					return nil, fmt.Errorf("invalid clinic day %q in unit %q", d, u.ID)
				}
				u.ClinicDays = append(u.ClinicDays, n)
			}
		}
		units = append(units, u)
	}
	return units, nil
}

func parseDoctors(raw string) ([]contract.DoctorInput, error) {
	var doctors []contract.DoctorInput
	for _, line := range nonEmptyLines(raw) {
		fields := strings.Split(line, ":")
		if len(fields) < 4 {
			return nil, fmt.Errorf("invalid doctor line %q: expected id:name:category:unit", line)
		}
		doctors = append(doctors, contract.DoctorInput{
			ID:       strings.TrimSpace(fields[0]),
			Name:     strings.TrimSpace(fields[1]),
			Category: strings.TrimSpace(fields[2]),
			Unit:     strings.TrimSpace(fields[3]),
		})
	}
	return doctors, nil
}

func nonEmptyLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
