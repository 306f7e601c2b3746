package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/podoclinic/booking/internal/domain/appointment"
	"github.com/podoclinic/booking/internal/models"
)

// Appointments is an in-memory appointment repository.
type Appointments struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.Appointment
}

var _ domain.Repository = (*Appointments)(nil)

func NewAppointments(seed ...models.Appointment) *Appointments {
	r := &Appointments{items: map[uint]models.Appointment{}}
	for _, ap := range seed {
		_ = r.Create(context.Background(), &ap)
	}
	return r
}

func (r *Appointments) Create(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()
	r.items[ap.ID] = *ap
	return nil
}

func (r *Appointments) Get(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.items[id]
	if !ok {
		return nil, domain.NotFound()
	}
	return &ap, nil
}

func (r *Appointments) List(_ context.Context) ([]models.Appointment, error) {
	out := r.all()
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.After(out[j].AppointmentDate) })
	return out, nil
}

func (r *Appointments) Update(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[ap.ID]; !ok {
		return domain.NotFound()
	}
	r.items[ap.ID] = *ap
	return nil
}

func (r *Appointments) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.NotFound()
	}
	delete(r.items, id)
	return nil
}

func (r *Appointments) ListByStatus(_ context.Context, status domain.Status) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.all() {
		if ap.Status == string(status) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *Appointments) CountByStatus(_ context.Context) (map[domain.Status]int64, error) {
	out := map[domain.Status]int64{}
	for _, ap := range r.all() {
		out[domain.Status(ap.Status)]++
	}
	return out, nil
}

func (r *Appointments) CountFrom(_ context.Context, from time.Time, statuses []domain.Status) (int64, error) {
	var n int64
	for _, ap := range r.all() {
		if hasStatus(ap.Status, statuses) && !ap.AppointmentDate.Before(from) {
			n++
		}
	}
	return n, nil
}

func (r *Appointments) CountBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, ap := range r.all() {
		if !ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			n++
		}
	}
	return n, nil
}

func (r *Appointments) ListBetween(_ context.Context, start, end time.Time, statuses []domain.Status) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.all() {
		if hasStatus(ap.Status, statuses) && !ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.Before(out[j].AppointmentDate) })
	return out, nil
}

func (r *Appointments) all() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0, len(r.items))
	for _, ap := range r.items {
		out = append(out, ap)
	}
	return out
}

func hasStatus(status string, statuses []domain.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
