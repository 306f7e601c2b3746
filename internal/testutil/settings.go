package testutil

import (
	"context"
	"sort"
	"strings"

	domain "github.com/podoclinic/booking/internal/domain/settings"
	"github.com/podoclinic/booking/internal/models"
)

// Settings is an in-memory settings repository keyed by lower-cased key.
type Settings struct {
	items  map[string]models.Setting
	nextID uint

	// FailKey makes any write of that key fail with FailErr.
	FailKey string
	FailErr error
}

var _ domain.Repository = (*Settings)(nil)

func NewSettings() *Settings {
	return &Settings{items: map[string]models.Setting{}}
}

func (r *Settings) List(context.Context) ([]models.Setting, error) {
	out := make([]models.Setting, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *Settings) Get(_ context.Context, key string) (*models.Setting, error) {
	s, ok := r.items[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, domain.NotFound()
	}
	return &s, nil
}

func (r *Settings) Upsert(_ context.Context, key string, value, description *string) (*models.Setting, error) {
	out, err := r.apply([]domain.Upsert{{Key: key, Value: value, Description: description}})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (r *Settings) UpsertMany(_ context.Context, items []domain.Upsert) ([]models.Setting, error) {
	return r.apply(items)
}

// apply stages every write on a copy and keeps it only when all succeed.
func (r *Settings) apply(items []domain.Upsert) ([]models.Setting, error) {
	staged := make(map[string]models.Setting, len(r.items))
	for k, v := range r.items {
		staged[k] = v
	}
	nextID := r.nextID

	out := make([]models.Setting, 0, len(items))
	for _, it := range items {
		k := strings.ToLower(strings.TrimSpace(it.Key))
		if r.FailKey != "" && k == strings.ToLower(r.FailKey) {
			return nil, r.FailErr
		}
		s, ok := staged[k]
		if !ok {
			nextID++
			s = models.Setting{ID: nextID, Key: strings.TrimSpace(it.Key)}
		}
		s.Value = it.Value
		if it.Description != nil {
			s.Description = it.Description
		}
		staged[k] = s
		out = append(out, s)
	}

	r.items = staged
	r.nextID = nextID
	return out, nil
}

func (r *Settings) Delete(_ context.Context, key string) error {
	k := strings.ToLower(strings.TrimSpace(key))
	if _, ok := r.items[k]; !ok {
		return domain.NotFound()
	}
	delete(r.items, k)
	return nil
}
