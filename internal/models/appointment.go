package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Email string  `gorm:"size:120;not null" json:"email"`
	Phone *string `gorm:"size:20" json:"phone"`

	// Service is the display name chosen at booking time, not a foreign key.
	Service string `gorm:"size:100;not null" json:"service"`

	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`
	Message         *string   `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
