package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/podoclinic/booking/internal/dashboard"
	"github.com/podoclinic/booking/internal/timezone"
	"github.com/podoclinic/booking/internal/webclient"
)

const DefaultServerURL = "http://localhost:5000"

// app carries what every subcommand shares.
type app struct {
	v   *viper.Viper
	in  io.Reader
	out io.Writer
	log zerolog.Logger
}

func (a *app) client() *webclient.Client {
	c := webclient.New(a.v.GetString("api_url"))
	return c.SetDebug(a.v.GetBool("debug"))
}

func (a *app) dashboard(assumeYes bool) *dashboard.Dashboard {
	var confirm dashboard.Confirmer = newPrompt(a.in, a.out)
	if assumeYes {
		confirm = dashboard.ConfirmFunc(func(string) bool { return true })
	}
	return dashboard.New(a.client(), confirm, timezone.Location(a.v.GetString("timezone")))
}

// NewRootCommand builds a fresh command tree reading from in and writing to
// out. Settings come from flags, then CLINIC_* environment variables.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		in:  in,
		out: out,
		log: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:   "clinicctl",
		Short: "Booking and admin tool for the podiatry clinic",
		Long: `Command-line front-end for the clinic booking API.

It submits booking requests, shows the service catalog and pricing, and lets
staff moderate appointments and manage services and categories.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.v.GetBool("debug") {
				a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					With().Timestamp().Logger().Level(zerolog.DebugLevel)
				a.log.Debug().Str("server", a.v.GetString("api_url")).Msg("using API")
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.String("server", DefaultServerURL, "clinic API base URL")
	flags.String("timezone", timezone.DefaultTimezone, "clinic time zone")
	flags.Bool("debug", false, "enable debug logging")

	_ = a.v.BindPFlag("api_url", flags.Lookup("server"))
	_ = a.v.BindPFlag("timezone", flags.Lookup("timezone"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))

	a.v.SetEnvPrefix("CLINIC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newBookCmd(a),
		newSlotsCmd(a),
		newAppointmentsCmd(a),
		newServicesCmd(a),
		newCategoriesCmd(a),
		newSummaryCmd(a),
		newCarouselCmd(a),
	)
	return root
}

// Execute runs the tool against the process streams.
func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout).Execute()
}
