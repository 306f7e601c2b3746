package settings

import (
	"context"
	"strings"

	"github.com/podoclinic/booking/internal/audit"
	domain "github.com/podoclinic/booking/internal/domain/settings"
	"github.com/podoclinic/booking/internal/models"
)

type Entry struct {
	Key         string
	Value       *string
	Description string
}

// Settings groups the settings operations; they share one repository.
type Settings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSettings(repo domain.Repository, audit *audit.Dispatcher) *Settings {
	return &Settings{repo: repo, audit: audit}
}

func (uc *Settings) List(ctx context.Context) ([]models.Setting, error) {
	return uc.repo.List(ctx)
}

func (uc *Settings) Get(ctx context.Context, key string) (*models.Setting, error) {
	return uc.repo.Get(ctx, key)
}

func (uc *Settings) Set(ctx context.Context, e Entry) (*models.Setting, error) {
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return nil, domain.KeyRequired()
	}

	s, err := uc.repo.Upsert(ctx, key, e.Value, optional(e.Description))
	if err != nil {
		return nil, err
	}

	uc.updated(*s)
	return s, nil
}

// SetMany upserts every entry with a non-blank key in one transaction and
// skips the rest. Nothing is written when any entry fails.
func (uc *Settings) SetMany(ctx context.Context, entries []Entry) ([]models.Setting, error) {
	items := make([]domain.Upsert, 0, len(entries))
	for _, e := range entries {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			continue
		}
		items = append(items, domain.Upsert{
			Key:         key,
			Value:       e.Value,
			Description: optional(e.Description),
		})
	}
	if len(items) == 0 {
		return []models.Setting{}, nil
	}

	out, err := uc.repo.UpsertMany(ctx, items)
	if err != nil {
		return nil, err
	}

	for _, s := range out {
		uc.updated(s)
	}
	return out, nil
}

func (uc *Settings) updated(s models.Setting) {
	id := s.ID
	uc.audit.Dispatch(audit.Event{
		Action:   "setting_updated",
		Entity:   "setting",
		EntityID: &id,
		Metadata: map[string]any{"key": s.Key},
	})
}

func (uc *Settings) Delete(ctx context.Context, key string) error {
	if err := uc.repo.Delete(ctx, key); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "setting_deleted",
		Entity:   "setting",
		Metadata: map[string]any{"key": key},
	})
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
