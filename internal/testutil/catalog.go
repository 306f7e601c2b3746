package testutil

import (
	"context"
	"sort"
	"strings"

	domain "github.com/podoclinic/booking/internal/domain/catalog"
	"github.com/podoclinic/booking/internal/models"
)

// Catalog is an in-memory category and service repository. ListCalls
// counts ListServices calls.
type Catalog struct {
	categories map[uint]models.ServiceCategory
	services   map[uint]models.Service
	nextID     uint
	ListCalls  int
}

var _ domain.Repository = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{
		categories: map[uint]models.ServiceCategory{},
		services:   map[uint]models.Service{},
	}
}

func (r *Catalog) id() uint { r.nextID++; return r.nextID }

func (r *Catalog) ListCategories(context.Context) ([]models.ServiceCategory, error) {
	out := make([]models.ServiceCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Catalog) GetCategory(_ context.Context, id uint) (*models.ServiceCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.CategoryMissing()
	}
	return &c, nil
}

func (r *Catalog) CategoryNameTaken(_ context.Context, name string, exceptID uint) (bool, error) {
	for _, c := range r.categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Catalog) CreateCategory(_ context.Context, c *models.ServiceCategory) error {
	c.ID = r.id()
	r.categories[c.ID] = *c
	return nil
}

func (r *Catalog) UpdateCategory(_ context.Context, c *models.ServiceCategory) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *Catalog) DeleteCategory(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return domain.CategoryMissing()
	}
	delete(r.categories, id)
	return nil
}

func (r *Catalog) CountServicesInCategory(_ context.Context, categoryID uint) (int64, error) {
	var n int64
	for _, s := range r.services {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *Catalog) ListServices(context.Context) ([]models.Service, error) {
	r.ListCalls++
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsActive != out[j].IsActive {
			return out[i].IsActive
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *Catalog) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ServiceNotFound()
	}
	return &s, nil
}

func (r *Catalog) CreateService(_ context.Context, s *models.Service) error {
	s.ID = r.id()
	r.services[s.ID] = *s
	return nil
}

func (r *Catalog) UpdateService(_ context.Context, s *models.Service) error {
	r.services[s.ID] = *s
	return nil
}

func (r *Catalog) DeleteService(_ context.Context, id uint) error {
	if _, ok := r.services[id]; !ok {
		return domain.ServiceNotFound()
	}
	delete(r.services, id)
	return nil
}
