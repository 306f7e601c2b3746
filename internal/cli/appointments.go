package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/podoclinic/booking/internal/dashboard"
)

func newAppointmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"apt"},
		Short:   "Moderate appointment requests",
	}

	cmd.AddCommand(
		newAppointmentsListCmd(a),
		newAppointmentsUpcomingCmd(a),
		newAppointmentsSetStatusCmd(a),
		newAppointmentsDeleteCmd(a),
	)
	return cmd
}

func newAppointmentsListCmd(a *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(false)
			if err := d.Load(cmd.Context()); err != nil {
				return err
			}
			d.SetFilter(status)
			return renderAppointments(a.out, d.Filtered())
		},
	}

	cmd.Flags().StringVar(&status, "status", dashboard.FilterAll, "all, pending, confirmed or cancelled")
	return cmd
}

func newAppointmentsUpcomingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next five appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(false)
			if err := d.Load(cmd.Context()); err != nil {
				return err
			}
			return renderAppointments(a.out, d.Upcoming(time.Now()))
		},
	}
}

func newAppointmentsSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set-status <id> <status>",
		Short:     "Change the status of an appointment",
		Args:      cobra.ExactArgs(2),
		ValidArgs: dashboard.Statuses(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d := a.dashboard(false)
			err = d.SetStatus(cmd.Context(), id, args[1])
			label, _ := dashboard.StatusLabel(args[1])
			return a.wrote(d, err, fmt.Sprintf("Rezerwacja %d: %s", id, label))
		},
	}
}

func newAppointmentsDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d := a.dashboard(yes)
			done, err := d.DeleteAppointment(cmd.Context(), id)
			if !done && err == nil {
				fmt.Fprintln(a.out, "Anulowano")
				return nil
			}
			return a.wrote(d, err, "Rezerwacja została usunięta")
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
