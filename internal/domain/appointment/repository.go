package appointment

import (
	"context"
	"time"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

type Repository interface {
	// -------- CRUD --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Get(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// List returns every appointment, newest appointment date first.
	List(ctx context.Context) ([]models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Queries --------
	ListByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// CountFrom counts appointments in one of statuses dated at or after from.
	CountFrom(
		ctx context.Context,
		from time.Time,
		statuses []Status,
	) (int64, error)

	// CountBetween counts appointments of any status in [start, end).
	CountBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	// ListBetween returns appointments in one of statuses within [start, end),
	// ascending by date. No statuses means any status.
	ListBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
		statuses []Status,
	) ([]models.Appointment, error)
}

func NotFound() error {
	return httperr.Business("appointment_not_found", "Nie znaleziono rezerwacji")
}
