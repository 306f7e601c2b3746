package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	var out []models.ServiceCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) GetCategory(
	ctx context.Context,
	id uint,
) (*models.ServiceCategory, error) {

	var c models.ServiceCategory
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.CategoryMissing()
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogGormRepository) CategoryNameTaken(
	ctx context.Context,
	name string,
	exceptID uint,
) (bool, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ServiceCategory{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&n).Error
	return n > 0, err
}

func (r *CatalogGormRepository) CreateCategory(
	ctx context.Context,
	c *models.ServiceCategory,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *CatalogGormRepository) UpdateCategory(
	ctx context.Context,
	c *models.ServiceCategory,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *CatalogGormRepository) DeleteCategory(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ServiceCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.CategoryMissing()
	}
	return nil
}

func (r *CatalogGormRepository) CountServicesInCategory(
	ctx context.Context,
	categoryID uint,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("is_active DESC").
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	err := r.db.WithContext(ctx).Preload("Category").First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ServiceNotFound()
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ServiceNotFound()
	}
	return nil
}
