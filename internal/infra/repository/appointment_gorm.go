package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound()
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("appointment_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Appointment, error) {

	var out []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AppointmentGormRepository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	var rows []struct {
		Status string
		N      int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		out[domain.Status(row.Status)] = row.N
	}
	return out, nil
}

func (r *AppointmentGormRepository) CountFrom(
	ctx context.Context,
	from time.Time,
	statuses []domain.Status,
) (int64, error) {

	var n int64
	err := withStatuses(r.db.WithContext(ctx).Model(&models.Appointment{}), statuses).
		Where("appointment_date >= ?", from).
		Count(&n).Error
	return n, err
}

func (r *AppointmentGormRepository) CountBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Count(&n).Error
	return n, err
}

func (r *AppointmentGormRepository) ListBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	var out []models.Appointment
	if err := withStatuses(r.db.WithContext(ctx), statuses).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func withStatuses(q *gorm.DB, statuses []domain.Status) *gorm.DB {
	if len(statuses) == 0 {
		return q
	}
	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}
	return q.Where("status IN ?", raw)
}
