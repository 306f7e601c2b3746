package models

import "time"

type Setting struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Key         string  `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value       *string `gorm:"type:text" json:"value"`
	Description *string `gorm:"size:255" json:"description"`

	UpdatedAt time.Time `json:"updated_at"`
}

const (
	SettingNotificationEmail = "notification_email"
	SettingClinicName        = "clinic_name"
	SettingMailFrom          = "mail_from"
)
