package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/podoclinic/booking/internal/domain/settings"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*SettingsGormRepository)(nil)

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) List(ctx context.Context) ([]models.Setting, error) {
	var out []models.Setting
	if err := r.db.WithContext(ctx).Order(`"key" ASC`).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SettingsGormRepository) Get(
	ctx context.Context,
	key string,
) (*models.Setting, error) {
	return r.find(r.db.WithContext(ctx), key)
}

func (r *SettingsGormRepository) Upsert(
	ctx context.Context,
	key string,
	value *string,
	description *string,
) (*models.Setting, error) {

	var out *models.Setting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := r.upsert(tx, domain.Upsert{Key: key, Value: value, Description: description})
		if err != nil {
			return err
		}
		out = s
		return nil
	})
	return out, err
}

func (r *SettingsGormRepository) UpsertMany(
	ctx context.Context,
	items []domain.Upsert,
) ([]models.Setting, error) {

	out := make([]models.Setting, 0, len(items))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			s, err := r.upsert(tx, it)
			if err != nil {
				return err
			}
			out = append(out, *s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SettingsGormRepository) upsert(tx *gorm.DB, it domain.Upsert) (*models.Setting, error) {
	s, err := r.find(tx, it.Key)
	if err != nil && !httperr.IsBusiness(err, domain.CodeNotFound) {
		return nil, err
	}

	if s == nil {
		s = &models.Setting{Key: strings.TrimSpace(it.Key)}
	}
	s.Value = it.Value
	if it.Description != nil {
		s.Description = it.Description
	}

	if err := tx.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SettingsGormRepository) Delete(
	ctx context.Context,
	key string,
) error {

	res := r.db.WithContext(ctx).
		Where(`LOWER("key") = LOWER(?)`, strings.TrimSpace(key)).
		Delete(&models.Setting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

func (r *SettingsGormRepository) find(q *gorm.DB, key string) (*models.Setting, error) {
	var s models.Setting
	err := q.Where(`LOWER("key") = LOWER(?)`, strings.TrimSpace(key)).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound()
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
