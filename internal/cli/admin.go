package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/podoclinic/booking/internal/dashboard"
	"github.com/podoclinic/booking/internal/showcase"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client().Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", dashboard.MsgFetchSummary)
			}
			return renderSummary(a.out, *s)
		},
	}
}

func newCarouselCmd(a *app) *cobra.Command {
	var (
		cycles   int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Cycle through categories like the landing page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.client()
			categories, err := c.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", dashboard.MsgFetchCategories)
			}
			services, err := c.ListServices(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", dashboard.MsgFetchServices)
			}

			carousel := showcase.NewCarousel(showcase.GroupByCategory(categories, showcase.Active(services)))
			if carousel.Len() == 0 {
				fmt.Fprintln(a.out, "Brak kategorii")
				return nil
			}
			carousel.SetInterval(interval)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			shown := 0
			show := func() {
				if cycles > 0 && shown >= cycles {
					return
				}
				printSlide(a, carousel)
				shown++
				if cycles > 0 && shown >= cycles {
					cancel()
				}
			}

			carousel.OnChange(func(int) { show() })
			show()
			carousel.Run(ctx)
			return nil
		},
	}

	cmd.Flags().IntVar(&cycles, "cycles", 0, "stop after this many slides (0 = until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", showcase.CarouselInterval, "time per slide")
	_ = cmd.Flags().MarkHidden("interval")
	return cmd
}

func printSlide(a *app, c *showcase.Carousel) {
	g, _ := c.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "[%d/%d] %s\n", c.Index()+1, c.Len(), g.Category.Name)
	for _, s := range c.Visible() {
		fmt.Fprintf(&b, "  %s  %s\n", s.Name, showcase.FormatPrice(s.Price))
	}
	fmt.Fprint(a.out, b.String())
}
