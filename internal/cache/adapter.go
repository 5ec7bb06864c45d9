package cache

import (
	"context"

	"reputation-desk/internal/article"
	"reputation-desk/internal/source"
)

// Adapter wraps a source adapter with the fetch cache: hits skip the inner
// adapter entirely, misses fall through and store whatever came back.
type Adapter struct {
	inner source.Adapter
	store Store
}

func Wrap(inner source.Adapter, store Store) *Adapter {
	return &Adapter{
		inner: inner,
		store: store,
	}
}

func (a *Adapter) Name() string { return a.inner.Name() }

func (a *Adapter) Fetch(ctx context.Context, query, language string) ([]article.Article, error) {
	if arts, ok := a.store.Get(ctx, a.inner.Name(), query, language); ok {
		return arts, nil
	}

	arts, err := a.inner.Fetch(ctx, query, language)
	if err != nil {
		return nil, err
	}

	// Empty results are cached too: a provider that found nothing is a
	// valid answer, not a failure.
	a.store.Put(ctx, a.inner.Name(), query, language, arts)
	return arts, nil
}
