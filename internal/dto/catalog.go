package dto

import (
	"time"

	"github.com/podoclinic/booking/internal/models"
)

type Category struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Service struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	Price           float64    `json:"price"`
	DurationMinutes int        `json:"duration_minutes"`
	IsActive        bool       `json:"is_active"`
	CategoryID      uint       `json:"category_id"`
	Category        *Category  `json:"category,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func FromCategory(c models.ServiceCategory) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   timePtr(c.CreatedAt),
		UpdatedAt:   timePtr(c.UpdatedAt),
	}
}

func FromCategories(cs []models.ServiceCategory) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}

func FromService(s models.Service) Service {
	out := Service{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CategoryID:      s.CategoryID,
		CreatedAt:       timePtr(s.CreatedAt),
		UpdatedAt:       timePtr(s.UpdatedAt),
	}
	if s.Category != nil {
		c := FromCategory(*s.Category)
		out.Category = &c
	}
	return out
}

func FromServices(ss []models.Service) []Service {
	out := make([]Service, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
