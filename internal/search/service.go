package search

import (
	"context"
	"log"
	"strings"

	"reputation-desk/internal/article"
	"reputation-desk/internal/rank"
	"reputation-desk/internal/scandal"
)

// ArticleFetcher is the live aggregation entry point (source.Fetcher).
type ArticleFetcher interface {
	FetchAll(ctx context.Context, query, language string) []article.Article
}

// EventBuilder clusters raw articles into scored events (cluster.Engine).
type EventBuilder interface {
	Build(articles []article.Article) []scandal.Event
}

// AlertPublisher receives high-severity results from the live path. A nil
// publisher disables alerting.
type AlertPublisher interface {
	PublishScandalDetected(ctx context.Context, query string, res scandal.ScoredResult) error
}

// Service orchestrates a search request: live aggregation ranked with the
// enhanced strategy, falling back to the static seed dataset ranked with the
// simple strategy when the live path produced nothing. Every request gets a
// well-formed response; the worst case reflects only seed data.
type Service struct {
	fetcher       ArticleFetcher
	builder       EventBuilder
	live          rank.Strategy
	fallback      rank.Strategy
	alerts        AlertPublisher
	alertMinScore float64
	logger        *log.Logger
}

func NewService(fetcher ArticleFetcher, builder EventBuilder, alerts AlertPublisher, alertMinScore float64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		fetcher:       fetcher,
		builder:       builder,
		live:          rank.Enhanced{},
		fallback:      rank.Simple{},
		alerts:        alerts,
		alertMinScore: alertMinScore,
		logger:        logger,
	}
}

// Search runs the pipeline for one query. perspective must already be
// validated to [0,100] and language to a supported value.
func (s *Service) Search(ctx context.Context, query string, perspective int, language string) scandal.SearchResponse {
	results := s.searchLive(ctx, query, perspective, language)
	if len(results) == 0 {
		results = s.fallback.Rank(filterSeed(query), perspective)
	}
	if results == nil {
		results = []scandal.ScoredResult{}
	}

	return scandal.SearchResponse{
		Query:       query,
		Perspective: perspective,
		Language:    language,
		Results:     results,
	}
}

func (s *Service) searchLive(ctx context.Context, query string, perspective int, language string) []scandal.ScoredResult {
	articles := s.fetcher.FetchAll(ctx, query, language)
	if len(articles) == 0 {
		s.logger.Printf("search: no live articles for %q, using seed dataset", query)
		return nil
	}

	events := s.builder.Build(articles)
	results := s.live.Rank(events, perspective)

	s.publishAlerts(ctx, query, results)
	return results
}

// publishAlerts forwards live results above the severity threshold to the
// message bus. Failures are logged and never affect the response.
func (s *Service) publishAlerts(ctx context.Context, query string, results []scandal.ScoredResult) {
	if s.alerts == nil {
		return
	}
	for _, res := range results {
		if res.AdjustedScore < s.alertMinScore {
			continue
		}
		if err := s.alerts.PublishScandalDetected(ctx, query, res); err != nil {
			s.logger.Printf("search: alert publish failed for %s: %v", res.Event.ID, err)
		}
	}
}

// filterSeed returns the seed events whose entity name contains the query,
// case-insensitively. An empty query matches everything.
func filterSeed(query string) []scandal.Event {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return scandal.Seed()
	}

	var matched []scandal.Event
	for _, evt := range scandal.Seed() {
		if strings.Contains(strings.ToLower(evt.EntityName), normalized) {
			matched = append(matched, evt)
		}
	}
	return matched
}
