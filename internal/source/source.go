package source

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"reputation-desk/internal/article"
)

// Adapter fetches raw articles for a query from one external provider.
// Implementations return an error for transport or parse failures; the
// Fetcher is the boundary that converts failures into empty results.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, query, language string) ([]article.Article, error)
}

// Fetcher fans a query out to every registered adapter concurrently and
// concatenates their results in registration order. A failing or slow adapter
// never blocks or fails the others: its slot simply contributes no articles.
type Fetcher struct {
	adapters []Adapter
	limiter  *rate.Limiter
	timeout  time.Duration
	logger   *log.Logger
}

func NewFetcher(adapters []Adapter, limiter *rate.Limiter, timeout time.Duration, logger *log.Logger) *Fetcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		adapters: adapters,
		limiter:  limiter,
		timeout:  timeout,
		logger:   logger,
	}
}

// FetchAll queries every adapter and returns the concatenation of whatever
// succeeded. It only returns an empty slice when every adapter came back
// empty or failed.
func (f *Fetcher) FetchAll(ctx context.Context, query, language string) []article.Article {
	results := make([][]article.Article, len(f.adapters))

	var wg sync.WaitGroup
	for i, a := range f.adapters {
		wg.Add(1)
		go func(i int, a Adapter) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()

			if f.limiter != nil {
				if err := f.limiter.Wait(callCtx); err != nil {
					f.logger.Printf("source: %s rate limit wait aborted: %v", a.Name(), err)
					return
				}
			}

			arts, err := a.Fetch(callCtx, query, language)
			if err != nil {
				f.logger.Printf("source: %s fetch failed: %v", a.Name(), err)
				return
			}
			results[i] = arts
		}(i, a)
	}
	wg.Wait()

	var all []article.Article
	for _, arts := range results {
		all = append(all, arts...)
	}
	return all
}
