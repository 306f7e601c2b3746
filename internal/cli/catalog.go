package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/podoclinic/booking/internal/dashboard"
	"github.com/podoclinic/booking/internal/showcase"
)

func newServicesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Browse and manage services",
	}

	cmd.AddCommand(
		newServicesListCmd(a),
		newServicesPricingCmd(a),
		newServicesSaveCmd(a),
		newServicesDeleteCmd(a),
	)
	return cmd
}

func newServicesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every service",
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
			return renderServices(a.out, categories, services)
		},
	}
}

func newServicesPricingCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show the price list grouped by category",
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
			if !all {
				services = showcase.Active(services)
			}
			return renderPricing(a.out, showcase.GroupByCategory(categories, services))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include inactive services")
	return cmd
}

func newServicesSaveCmd(a *app) *cobra.Command {
	var (
		id       uint
		form     dashboard.ServiceForm
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a service, or update one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(false)

			if id != 0 {
				if err := d.Load(cmd.Context()); err != nil {
					return err
				}
				found := false
				for _, s := range d.Services() {
					if s.ID == id {
						d.EditService(s)
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("service %d not found", id)
				}
			}

			merged := d.ServiceForm()
			flags := cmd.Flags()
			if flags.Changed("name") {
				merged.Name = form.Name
			}
			if flags.Changed("description") {
				merged.Description = form.Description
			}
			if flags.Changed("price") {
				merged.Price = form.Price
			}
			if flags.Changed("duration") {
				merged.DurationMinutes = form.DurationMinutes
			}
			if flags.Changed("category") {
				merged.CategoryID = form.CategoryID
			}
			if flags.Changed("inactive") {
				merged.IsActive = !inactive
			}
			d.SetServiceForm(merged)

			return a.wrote(d, d.SubmitService(cmd.Context()), "Usługa została zapisana")
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "service to update")
	cmd.Flags().StringVar(&form.Name, "name", "", "service name")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	cmd.Flags().StringVar(&form.Price, "price", "", "price in zł (0 = individually priced)")
	cmd.Flags().StringVar(&form.DurationMinutes, "duration", "", "duration in minutes")
	cmd.Flags().StringVar(&form.CategoryID, "category", "", "category id")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "hide the service from patients")
	return cmd
}

func newServicesDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d := a.dashboard(yes)
			done, err := d.DeleteService(cmd.Context(), id)
			if !done && err == nil {
				fmt.Fprintln(a.out, "Anulowano")
				return nil
			}
			return a.wrote(d, err, "Usługa została usunięta")
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// ======================================================
// CATEGORIES
// ======================================================

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse and create service categories",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := a.client().ListCategories(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", dashboard.MsgFetchCategories)
				}
				for _, c := range categories {
					fmt.Fprintf(a.out, "%d\t%s\n", c.ID, c.Name)
				}
				return nil
			},
		},
		newCategoriesCreateCmd(a),
	)
	return cmd
}

func newCategoriesCreateCmd(a *app) *cobra.Command {
	var form dashboard.CategoryForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(false)
			d.SetCategoryForm(form)
			return a.wrote(d, d.SubmitCategory(cmd.Context()), "Kategoria została utworzona")
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "category name")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	return cmd
}
