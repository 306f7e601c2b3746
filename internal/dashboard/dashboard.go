package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/podoclinic/booking/internal/dto"
	"github.com/podoclinic/booking/internal/webclient"
)

const (
	FilterAll     = "all"
	UpcomingLimit = 5
)

const (
	MsgFetchServices     = "Nie udało się pobrać listy usług"
	MsgFetchCategories   = "Nie udało się pobrać kategorii usług"
	MsgFetchAppointments = "Nie udało się pobrać rezerwacji"
	MsgFetchSummary      = "Nie udało się pobrać danych podsumowania"

	MsgUpdateStatus      = "Nie udało się zaktualizować statusu rezerwacji"
	MsgDeleteAppointment = "Nie udało się usunąć rezerwacji"

	ConfirmDeleteAppointment = "Czy chcesz usunąć tę rezerwację?"
)

// API is the part of the REST client the dashboard drives.
type API interface {
	ListAppointments(ctx context.Context) ([]dto.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uint, status string) (*dto.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error

	ListServices(ctx context.Context) ([]dto.Service, error)
	CreateService(ctx context.Context, p webclient.ServicePayload) (*dto.Service, error)
	UpdateService(ctx context.Context, id uint, p webclient.ServicePayload) (*dto.Service, error)
	DeleteService(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]dto.Category, error)
	CreateCategory(ctx context.Context, p webclient.CategoryPayload) (*dto.Category, error)

	Summary(ctx context.Context) (*dto.Summary, error)
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ======================================================
// DASHBOARD
// ======================================================

// Dashboard holds the admin view state: fetched lists, the status filter,
// the service and category forms and one error banner.
type Dashboard struct {
	mu      sync.Mutex
	api     API
	confirm Confirmer
	loc     *time.Location

	appointments []dto.Appointment
	services     []dto.Service
	categories   []dto.Category
	summary      *dto.Summary

	filter string
	banner string

	serviceForm   ServiceForm
	editingID     uint
	savingService bool

	categoryForm   CategoryForm
	savingCategory bool
}

func New(api API, confirm Confirmer, loc *time.Location) *Dashboard {
	if loc == nil {
		loc = time.Local
	}
	return &Dashboard{
		api:         api,
		confirm:     confirm,
		loc:         loc,
		filter:      FilterAll,
		serviceForm: InitialServiceForm(),
	}
}

// Load fetches every list and the summary. The first failure becomes the
// banner and is returned.
func (d *Dashboard) Load(ctx context.Context) error {
	d.setBanner("")

	for _, fetch := range []func(context.Context) error{
		d.fetchServices,
		d.fetchCategories,
		d.fetchAppointments,
		d.fetchSummary,
	} {
		if err := fetch(ctx); err != nil {
			return d.fail(err)
		}
	}
	return nil
}

// ------------------------------------------------------
// Fetchers
// ------------------------------------------------------

// fetchError carries the banner text of a failed fetch.
type fetchError struct {
	message string
	err     error
}

func (e *fetchError) Error() string { return e.message }
func (e *fetchError) Unwrap() error { return e.err }

func (d *Dashboard) fetchServices(ctx context.Context) error {
	out, err := d.api.ListServices(ctx)
	if err != nil {
		return &fetchError{message: MsgFetchServices, err: err}
	}
	d.mu.Lock()
	d.services = out
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) fetchCategories(ctx context.Context) error {
	out, err := d.api.ListCategories(ctx)
	if err != nil {
		return &fetchError{message: MsgFetchCategories, err: err}
	}
	d.mu.Lock()
	d.categories = out
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) fetchAppointments(ctx context.Context) error {
	out, err := d.api.ListAppointments(ctx)
	if err != nil {
		return &fetchError{message: MsgFetchAppointments, err: err}
	}
	d.mu.Lock()
	d.appointments = out
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) fetchSummary(ctx context.Context) error {
	out, err := d.api.Summary(ctx)
	if err != nil {
		return &fetchError{message: MsgFetchSummary, err: err}
	}
	d.mu.Lock()
	d.summary = out
	d.mu.Unlock()
	return nil
}

// refetch reloads after a successful write. A failure lands on the banner and
// comes back as a *ReloadError.
func (d *Dashboard) refetch(ctx context.Context, fetchers ...func(context.Context) error) error {
	for _, fetch := range fetchers {
		if err := fetch(ctx); err != nil {
			return &ReloadError{Err: d.fail(err)}
		}
	}
	return nil
}

// ReloadError means the write went through but refreshing the lists failed.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string { return e.Err.Error() }
func (e *ReloadError) Unwrap() error { return e.Err }

func IsReload(err error) bool {
	var re *ReloadError
	return errors.As(err, &re)
}

// ------------------------------------------------------
// Banner
// ------------------------------------------------------

func (d *Dashboard) Banner() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.banner
}

func (d *Dashboard) setBanner(msg string) {
	d.mu.Lock()
	d.banner = msg
	d.mu.Unlock()
}

// fail puts err on the banner and returns it.
func (d *Dashboard) fail(err error) error {
	d.setBanner(err.Error())
	return err
}

// failWith uses the server's message when it sent one and fallback
// otherwise.
func (d *Dashboard) failWith(err error, fallback string) error {
	msg := fallback
	if ae, ok := webclient.AsAPIError(err); ok && ae.Message != "" {
		msg = ae.Message
	}
	d.setBanner(msg)
	return err
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (d *Dashboard) Appointments() []dto.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dto.Appointment(nil), d.appointments...)
}

func (d *Dashboard) Summary() (dto.Summary, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.summary == nil {
		return dto.Summary{}, false
	}
	return *d.summary, true
}

func (d *Dashboard) Filter() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}

// SetFilter takes "all" or a status value.
func (d *Dashboard) SetFilter(f string) {
	if f == "" {
		f = FilterAll
	}
	d.mu.Lock()
	d.filter = f
	d.mu.Unlock()
}

// Filtered applies the status filter to the loaded list.
func (d *Dashboard) Filtered() []dto.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.filter == FilterAll {
		return append([]dto.Appointment(nil), d.appointments...)
	}

	out := make([]dto.Appointment, 0, len(d.appointments))
	for _, ap := range d.appointments {
		if ap.Status == d.filter {
			out = append(out, ap)
		}
	}
	return out
}

// Upcoming returns up to five appointments at or after now, soonest first.
// Unparseable dates are skipped.
func (d *Dashboard) Upcoming(now time.Time) []dto.Appointment {
	type dated struct {
		ap   dto.Appointment
		when time.Time
	}

	d.mu.Lock()
	list := make([]dated, 0, len(d.appointments))
	for _, ap := range d.appointments {
		when, err := ap.When(d.loc)
		if err != nil || when.Before(now) {
			continue
		}
		list = append(list, dated{ap: ap, when: when})
	}
	d.mu.Unlock()

	sort.SliceStable(list, func(i, j int) bool { return list[i].when.Before(list[j].when) })

	if len(list) > UpcomingLimit {
		list = list[:UpcomingLimit]
	}
	out := make([]dto.Appointment, 0, len(list))
	for _, x := range list {
		out = append(out, x.ap)
	}
	return out
}

// SetStatus changes one appointment's status and reloads appointments and
// the summary. On failure the local list is left as it was.
func (d *Dashboard) SetStatus(ctx context.Context, id uint, status string) error {
	d.setBanner("")

	if _, err := d.api.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return d.failWith(err, MsgUpdateStatus)
	}
	return d.refetch(ctx, d.fetchAppointments, d.fetchSummary)
}

// DeleteAppointment asks for confirmation first. A declined prompt sends
// nothing and returns false.
func (d *Dashboard) DeleteAppointment(ctx context.Context, id uint) (bool, error) {
	if d.confirm == nil || !d.confirm.Confirm(ConfirmDeleteAppointment) {
		return false, nil
	}
	d.setBanner("")

	if err := d.api.DeleteAppointment(ctx, id); err != nil {
		return true, d.failWith(err, MsgDeleteAppointment)
	}
	return true, d.refetch(ctx, d.fetchAppointments, d.fetchSummary)
}
