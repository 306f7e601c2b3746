package catalog

import (
	"context"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/cache"
	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListServices struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewListServices(repo domain.Repository, c cache.Cache) *ListServices {
	return &ListServices{repo: repo, cache: c}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return readThrough(ctx, uc.cache, cache.KeyServices, uc.repo.ListServices)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

type SaveService struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewSaveService(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *SaveService {
	return &SaveService{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *SaveService) Create(
	ctx context.Context,
	in domain.ServiceInput,
) (*models.Service, error) {

	var s models.Service
	if err := uc.apply(ctx, in, &s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, &s); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price},
	})

	return &s, nil
}

func (uc *SaveService) Update(
	ctx context.Context,
	id uint,
	in domain.ServiceInput,
) (*models.Service, error) {

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, in, s); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price},
	})

	return s, nil
}

// apply validates the input, then resolves the referenced category.
func (uc *SaveService) apply(ctx context.Context, in domain.ServiceInput, s *models.Service) error {
	if err := domain.ApplyService(in, s); err != nil {
		return err
	}

	c, err := uc.repo.GetCategory(ctx, in.CategoryID)
	if httperr.IsBusiness(err, "category_not_found") {
		return domain.CategoryNotFound()
	}
	if err != nil {
		return err
	}

	s.Category = c
	return nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteService struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *DeleteService) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, uc.cache)
	uc.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})
	return nil
}
