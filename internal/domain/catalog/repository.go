package catalog

import (
	"context"

	"github.com/podoclinic/booking/internal/models"
)

type Repository interface {
	// -------- Categories --------
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)

	GetCategory(
		ctx context.Context,
		id uint,
	) (*models.ServiceCategory, error)

	// CategoryNameTaken reports whether another category (not exceptID)
	// already uses name, compared case-insensitively.
	CategoryNameTaken(
		ctx context.Context,
		name string,
		exceptID uint,
	) (bool, error)

	CreateCategory(
		ctx context.Context,
		c *models.ServiceCategory,
	) error

	UpdateCategory(
		ctx context.Context,
		c *models.ServiceCategory,
	) error

	DeleteCategory(
		ctx context.Context,
		id uint,
	) error

	CountServicesInCategory(
		ctx context.Context,
		categoryID uint,
	) (int64, error)

	// -------- Services --------

	// ListServices returns every service with its category, active first then
	// by name.
	ListServices(ctx context.Context) ([]models.Service, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		s *models.Service,
	) error

	DeleteService(
		ctx context.Context,
		id uint,
	) error
}
