package appointment

import (
	"context"
	"time"

	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/models"
)

// ======================================================
// LIST / GET
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.List(ctx)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.Get(ctx, id)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

type ListAvailableSlots struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListAvailableSlots(repo domain.Repository, loc *time.Location) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo, loc: loc, now: time.Now}
}

func (uc *ListAvailableSlots) Execute(ctx context.Context) ([]domain.Slot, error) {
	now := uc.now().In(uc.loc)
	from, to := domain.SlotWindow(now)

	booked, err := uc.repo.ListBetween(ctx, from, to, domain.Blocking())
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(now, booked), nil
}
