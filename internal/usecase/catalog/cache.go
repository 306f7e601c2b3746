package catalog

import (
	"context"

	"github.com/podoclinic/booking/internal/cache"
)

// readThrough serves key from c when present, otherwise loads and stores it.
// Cache failures fall back to the loader.
func readThrough[T any](
	ctx context.Context,
	c cache.Cache,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {

	var cached []T
	if hit, err := c.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	_ = c.Set(ctx, key, out)
	return out, nil
}

// invalidate drops both catalog keys; services embed their category.
func invalidate(ctx context.Context, c cache.Cache) {
	_ = c.Delete(ctx, cache.KeyServices, cache.KeyCategories)
}
