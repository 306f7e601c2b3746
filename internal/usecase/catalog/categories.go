package catalog

import (
	"context"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/cache"
	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListCategories struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewListCategories(repo domain.Repository, c cache.Cache) *ListCategories {
	return &ListCategories{repo: repo, cache: c}
}

func (uc *ListCategories) Execute(ctx context.Context) ([]models.ServiceCategory, error) {
	return readThrough(ctx, uc.cache, cache.KeyCategories, uc.repo.ListCategories)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

type SaveCategory struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewSaveCategory(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *SaveCategory {
	return &SaveCategory{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Create stores a new category; names are unique regardless of case.
func (uc *SaveCategory) Create(
	ctx context.Context,
	in domain.CategoryInput,
) (*models.ServiceCategory, error) {

	var c models.ServiceCategory
	if err := domain.ApplyCategory(in, &c); err != nil {
		return nil, err
	}

	taken, err := uc.repo.CategoryNameTaken(ctx, c.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.CategoryExists("Kategoria o tej nazwie już istnieje")
	}

	if err := uc.repo.CreateCategory(ctx, &c); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "category_created",
		Entity:   "service_category",
		EntityID: &c.ID,
	})

	return &c, nil
}

func (uc *SaveCategory) Update(
	ctx context.Context,
	id uint,
	in domain.CategoryInput,
) (*models.ServiceCategory, error) {

	c, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.ApplyCategory(in, c); err != nil {
		return nil, err
	}

	taken, err := uc.repo.CategoryNameTaken(ctx, c.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.CategoryExists("Inna kategoria posiada tę nazwę")
	}

	if err := uc.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "category_updated",
		Entity:   "service_category",
		EntityID: &c.ID,
	})

	return c, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteCategory struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteCategory(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteCategory {
	return &DeleteCategory{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute refuses to delete a category that still owns services.
func (uc *DeleteCategory) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetCategory(ctx, id); err != nil {
		return err
	}

	n, err := uc.repo.CountServicesInCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.CategoryNotEmpty()
	}

	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "category_deleted",
		Entity:   "service_category",
		EntityID: &id,
	})
	return nil
}
