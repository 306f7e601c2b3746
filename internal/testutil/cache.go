package testutil

import (
	"context"
	"encoding/json"

	"github.com/podoclinic/booking/internal/cache"
)

// Cache is a map-backed cache.Cache.
type Cache map[string][]byte

var _ cache.Cache = Cache{}

func (m Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m Cache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	m[key] = raw
	return err
}

func (m Cache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m, k)
	}
	return nil
}
