package settings

import (
	"context"

	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

// Upsert is one write of a bulk update.
type Upsert struct {
	Key         string
	Value       *string
	Description *string
}

// Repository stores clinic settings. Keys are matched case-insensitively.
type Repository interface {
	List(ctx context.Context) ([]models.Setting, error)

	Get(
		ctx context.Context,
		key string,
	) (*models.Setting, error)

	// Upsert creates the key or overwrites its value. A nil description keeps
	// the stored one.
	Upsert(
		ctx context.Context,
		key string,
		value *string,
		description *string,
	) (*models.Setting, error)

	// UpsertMany applies every write or none of them.
	UpsertMany(
		ctx context.Context,
		items []Upsert,
	) ([]models.Setting, error)

	Delete(
		ctx context.Context,
		key string,
	) error
}

const CodeNotFound = "setting_not_found"

func NotFound() error {
	return httperr.Business(CodeNotFound, "Ustawienie nie zostało znalezione")
}

func KeyRequired() error {
	return httperr.Business("setting_key_required", "Klucz ustawienia jest wymagany")
}
