package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/podoclinic/booking/internal/audit"
	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

// Notifier is told about every stored booking.
type Notifier interface {
	AppointmentCreated(ap models.Appointment)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string

	Date     string
	Time     string
	DateTime string

	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify Notifier
	loc    *time.Location
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify Notifier,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		notify: notify,
		loc:    loc,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Service = strings.TrimSpace(in.Service)
	in.Date = strings.TrimSpace(in.Date)

	// --------------------------------------------------
	// 1️⃣ Required fields
	// --------------------------------------------------
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"service", in.Service},
		{"date", in.Date},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, httperr.MissingFields("Brakuje wymaganych danych", missing)
	}

	// --------------------------------------------------
	// 2️⃣ Requested moment in clinic time
	// --------------------------------------------------
	start, err := domain.RequestedTime(in.Date, in.Time, in.DateTime, uc.loc)
	if err != nil {
		return nil, err
	}

	if err := domain.AssertNotPast(start, uc.now().In(uc.loc)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Persist as pending
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           optional(in.Phone),
		Service:         in.Service,
		AppointmentDate: start,
		Message:         optional(in.Message),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Side effects
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"service": ap.Service},
	})

	if uc.notify != nil {
		uc.notify.AppointmentCreated(*ap)
	}

	return ap, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
