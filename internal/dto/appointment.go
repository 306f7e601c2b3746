package dto

import (
	"time"

	"github.com/podoclinic/booking/internal/models"
)

// DateTimeLayout is the clinic-local, zone-less format used for appointment_date.
const DateTimeLayout = "2006-01-02T15:04:05"

// AppointmentRequest is the public booking payload. Time and DateTime are
// optional refinements of Date and are omitted by the booking form.
type AppointmentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	DateTime string `json:"datetime,omitempty"`
	Message  string `json:"message"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type Appointment struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	Service         string  `json:"service"`
	AppointmentDate string  `json:"appointment_date"`
	Message         *string `json:"message"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// When parses AppointmentDate in loc. Timestamps with an explicit offset are
// accepted as well.
func (a Appointment) When(loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, a.AppointmentDate, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, a.AppointmentDate)
}

func FromAppointment(ap models.Appointment, loc *time.Location) Appointment {
	out := Appointment{
		ID:              ap.ID,
		Name:            ap.Name,
		Email:           ap.Email,
		Phone:           ap.Phone,
		Service:         ap.Service,
		AppointmentDate: ap.AppointmentDate.In(loc).Format(DateTimeLayout),
		Message:         ap.Message,
		Status:          ap.Status,
	}
	if !ap.CreatedAt.IsZero() {
		out.CreatedAt = ap.CreatedAt.In(loc).Format(DateTimeLayout)
	}
	return out
}

func FromAppointments(aps []models.Appointment, loc *time.Location) []Appointment {
	out := make([]Appointment, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap, loc))
	}
	return out
}

type Slot struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	DateTime string `json:"datetime"`
}

type Message struct {
	Message string `json:"message"`
}
