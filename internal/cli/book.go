package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/podoclinic/booking/internal/booking"
)

func newBookCmd(a *app) *cobra.Command {
	var f booking.Fields

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Send a booking request",
		Example: `  clinicctl book --name "Anna Kowalska" --email a@example.com \
    --service "Konsultacja podologiczna" --date 2030-05-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := booking.NewForm(a.client())
			form.SetFields(f)

			n, err := form.Submit(cmd.Context())
			fmt.Fprintln(a.out, n.Text)
			if err != nil {
				a.log.Debug().Err(err).Msg("booking failed")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "patient full name")
	cmd.Flags().StringVar(&f.Email, "email", "", "contact e-mail")
	cmd.Flags().StringVar(&f.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&f.Service, "service", "", "requested service")
	cmd.Flags().StringVar(&f.Date, "date", "", "preferred date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Message, "message", "", "additional notes")
	return cmd
}

func newSlotsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List free appointment slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := a.client().AvailableSlots(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(slots) > limit {
				slots = slots[:limit]
			}
			if len(slots) == 0 {
				fmt.Fprintln(a.out, "Brak wolnych terminów")
				return nil
			}
			for _, s := range slots {
				fmt.Fprintf(a.out, "%s %s\n", s.Date, s.Time)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of slots to show (0 = all)")
	return cmd
}
