package webclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/podoclinic/booking/internal/dto"
)

// ServicePayload is the body of a service create or update.
type ServicePayload struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
	CategoryID      uint    `json:"category_id"`
}

type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (c *Client) ListAppointments(ctx context.Context) ([]dto.Appointment, error) {
	var out []dto.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req dto.AppointmentRequest) (*dto.Appointment, error) {
	var out dto.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id uint, status string) (*dto.Appointment, error) {
	var out dto.Appointment
	path := fmt.Sprintf("/api/appointments/%d", id)
	if err := c.do(ctx, http.MethodPut, path, dto.StatusUpdate{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/appointments/%d", id), nil, nil)
}

func (c *Client) AvailableSlots(ctx context.Context) ([]dto.Slot, error) {
	var out []dto.Slot
	if err := c.do(ctx, http.MethodGet, "/api/available-slots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ======================================================
// CATALOG
// ======================================================

func (c *Client) ListServices(ctx context.Context) ([]dto.Service, error) {
	var out []dto.Service
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, p ServicePayload) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, http.MethodPost, "/api/services", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id uint, p ServicePayload) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/services/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/services/%d", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]dto.Category, error) {
	var out []dto.Category
	if err := c.do(ctx, http.MethodGet, "/api/service-categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, p CategoryPayload) (*dto.Category, error) {
	var out dto.Category
	if err := c.do(ctx, http.MethodPost, "/api/service-categories", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ======================================================
// ADMIN
// ======================================================

func (c *Client) Summary(ctx context.Context) (*dto.Summary, error) {
	var out dto.Summary
	if err := c.do(ctx, http.MethodGet, "/api/admin/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
