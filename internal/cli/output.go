package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/podoclinic/booking/internal/dashboard"
	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/showcase"
)

func renderAppointments(w io.Writer, aps []dto.Appointment) error {
	if len(aps) == 0 {
		_, err := fmt.Fprintln(w, "Brak rezerwacji")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Pacjent", "E-mail", "Telefon", "Usługa", "Termin", "Status")
	for _, ap := range aps {
		label, ok := dashboard.StatusLabel(ap.Status)
		if !ok {
			label = "-"
		}
		table.Append(
			strconv.FormatUint(uint64(ap.ID), 10),
			ap.Name,
			ap.Email,
			deref(ap.Phone),
			ap.Service,
			ap.AppointmentDate,
			label,
		)
	}
	return table.Render()
}

func renderServices(w io.Writer, categories []dto.Category, services []dto.Service) error {
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Nazwa", "Kategoria", "Cena", "Czas", "Aktywna")
	for _, s := range services {
		active := "tak"
		if !s.IsActive {
			active = "nie"
		}
		table.Append(
			strconv.FormatUint(uint64(s.ID), 10),
			s.Name,
			names[s.CategoryID],
			showcase.FormatPrice(s.Price),
			fmt.Sprintf("%d min", s.DurationMinutes),
			active,
		)
	}
	return table.Render()
}

func renderPricing(w io.Writer, groups []showcase.Group) error {
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s\n", g.Category.Name)

		table := tablewriter.NewWriter(w)
		table.Header("Usługa", "Cena")
		for _, s := range showcase.SortByPrice(g.Services) {
			table.Append(s.Name, showcase.FormatPrice(s.Price))
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func renderSummary(w io.Writer, s dto.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Wskaźnik", "Wartość")
	table.Append("Rezerwacje", strconv.FormatInt(s.Appointments.Total, 10))
	table.Append("W oczekiwaniu", strconv.FormatInt(s.Appointments.Pending, 10))
	table.Append("Potwierdzone", strconv.FormatInt(s.Appointments.Confirmed, 10))
	table.Append("Anulowane", strconv.FormatInt(s.Appointments.Cancelled, 10))
	table.Append("Nadchodzące", strconv.FormatInt(s.Appointments.Upcoming, 10))
	table.Append("Dzisiaj", strconv.FormatInt(s.Appointments.Today, 10))
	table.Append("Usługi aktywne", fmt.Sprintf("%d / %d", s.Services.Active, s.Services.Total))
	table.Append("Średnia cena", fmt.Sprintf("%.2f zł", s.Services.AveragePrice))
	table.Append("Potencjalny przychód", fmt.Sprintf("%.2f zł", s.Financials.PotentialRevenue))
	return table.Render()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// wrote reports a dashboard write. A failed reload after a successful write is
// printed as a warning and does not fail the command.
func (a *app) wrote(d *dashboard.Dashboard, err error, msg string) error {
	if err != nil && !dashboard.IsReload(err) {
		return fmt.Errorf("%s", d.Banner())
	}
	fmt.Fprintln(a.out, msg)
	if err != nil {
		fmt.Fprintf(a.out, "Uwaga: zapisano, ale nie udało się odświeżyć danych: %s\n", d.Banner())
	}
	return nil
}
