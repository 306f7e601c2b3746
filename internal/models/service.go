package models

import "time"

type ServiceCategory struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	Services []Service `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:140;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	Price           float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	IsActive        bool    `gorm:"not null" json:"is_active"`

	CategoryID uint             `gorm:"not null;index" json:"category_id"`
	Category   *ServiceCategory `json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
