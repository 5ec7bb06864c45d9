// Package cluster turns raw articles into scored controversy events. The
// engine is a pure function of its input plus a clock; it holds no state
// between calls.
package cluster

import (
	"encoding/base64"
	"sort"
	"strings"
	"time"

	"reputation-desk/internal/article"
	"reputation-desk/internal/classify"
	"reputation-desk/internal/scandal"
)

const (
	baselineScore = 55.0
	minScore      = 30.0
	maxScore      = 100.0
	scandalBonus  = 25.0

	// reliability assigned to sources we did not author: corroborated
	// clusters rate slightly above the single-source fallback tier.
	clusteredReliability    = 75
	singleSourceReliability = 70

	maxEvents = 10
)

// Engine clusters articles by normalized title and scores the resulting
// events. The clock is injectable so recency scoring is deterministic in
// tests.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt returns an engine with a fixed clock.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Build runs the full pipeline: scandal pre-filter, title clustering, the
// two-publisher credibility gate, scoring, and the single-source fallback
// tier when no cluster passes the gate. Zero input yields zero output; the
// static-dataset substitution is the caller's concern, not the engine's.
func (e *Engine) Build(articles []article.Article) []scandal.Event {
	if len(articles) == 0 {
		return nil
	}

	// Prefer articles that look scandalous; widen back to the full set when
	// the filter would leave nothing to cluster.
	candidates := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if classify.IsScandalous(a.Text()) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		candidates = articles
	}

	clusters, order := clusterByTitle(candidates)

	events := make([]scandal.Event, 0, len(order))
	for _, key := range order {
		group := clusters[key]
		if distinctPublishers(group) < 2 {
			continue
		}
		events = append(events, e.toEvent(key, group))
	}

	if len(events) == 0 {
		events = e.singleSourceFallback(candidates)
	}

	// Scandalous events first (stable), then by severity.
	sort.SliceStable(events, func(i, j int) bool {
		si := classify.IsScandalous(events[i].Title + " " + events[i].Description)
		sj := classify.IsScandalous(events[j].Title + " " + events[j].Description)
		if si != sj {
			return si
		}
		return events[i].BaseScore > events[j].BaseScore
	})

	if len(events) > maxEvents {
		events = events[:maxEvents]
	}
	return events
}

// clusterByTitle groups articles by normalized title, preserving first-seen
// key order. Articles without a title or URL are dropped.
func clusterByTitle(articles []article.Article) (map[string][]article.Article, []string) {
	clusters := make(map[string][]article.Article)
	var order []string
	for _, a := range articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		key := article.NormalizeTitle(a.Title)
		if _, seen := clusters[key]; !seen {
			order = append(order, key)
		}
		clusters[key] = append(clusters[key], a)
	}
	return clusters, order
}

func (e *Engine) toEvent(key string, group []article.Article) scandal.Event {
	top := group[0]
	description := top.Description
	if description == "" {
		description = top.Title
	}

	sources := make([]scandal.SourceLink, 0, len(group))
	for _, a := range group {
		sources = append(sources, scandal.SourceLink{
			URL:              a.URL,
			Publisher:        a.Source,
			ReliabilityScore: clusteredReliability,
		})
	}

	return scandal.Event{
		ID:              "web-" + shortKey(key),
		EntityName:      article.ExtractEntityName(top.Title),
		Title:           top.Title,
		Date:            e.eventDate(top),
		Description:     description,
		Categories:      classify.Categories(top.Title + " " + description),
		Sources:         sources,
		BaseScore:       e.score(group),
		IdeologicalTilt: float64(classify.Tilt(top.Title + " " + description)),
	}
}

// score computes the credibility-weighted severity for a cluster: a fixed
// baseline plus scandal, corroboration, and recency terms, clamped to
// [minScore, maxScore]. Single-article clusters pay a small corroboration
// deficit rather than skipping the term.
func (e *Engine) score(group []article.Article) float64 {
	score := baselineScore

	var texts []string
	for _, a := range group {
		texts = append(texts, a.Text())
	}
	if classify.IsScandalous(strings.Join(texts, " ")) {
		score += scandalBonus
	}

	corroboration := float64(distinctPublishers(group)-2) * 3
	if corroboration > 10 {
		corroboration = 10
	}
	score += corroboration

	var mostRecent time.Time
	for _, a := range group {
		if a.PublishedAt.After(mostRecent) {
			mostRecent = a.PublishedAt
		}
	}
	if !mostRecent.IsZero() {
		days := e.now().Sub(mostRecent).Hours() / 24
		switch {
		case days < 14:
			score += 8
		case days < 60:
			score += 4
		case days < 180:
			score += 2
		}
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// singleSourceFallback emits one low-confidence event per deduplicated
// article so a query never returns nothing when articles were found. Callers
// can tell this tier apart by len(Sources) == 1.
func (e *Engine) singleSourceFallback(articles []article.Article) []scandal.Event {
	seen := make(map[string]struct{})
	var events []scandal.Event
	for _, a := range articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		key := article.NormalizeTitle(a.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		description := a.Description
		if description == "" {
			description = a.Title
		}

		events = append(events, scandal.Event{
			ID:          "one-" + shortKey(key),
			EntityName:  article.ExtractEntityName(a.Title),
			Title:       a.Title,
			Date:        e.eventDate(a),
			Description: description,
			Categories:  classify.Categories(a.Text()),
			Sources: []scandal.SourceLink{{
				URL:              a.URL,
				Publisher:        a.Source,
				ReliabilityScore: singleSourceReliability,
			}},
			BaseScore:       e.score([]article.Article{a}),
			IdeologicalTilt: float64(classify.Tilt(a.Text())),
		})

		if len(events) == maxEvents {
			break
		}
	}
	return events
}

func (e *Engine) eventDate(a article.Article) string {
	if a.PublishedAt.IsZero() {
		return e.now().UTC().Format(time.RFC3339)
	}
	return a.PublishedAt.UTC().Format(time.RFC3339)
}

// shortKey derives the stable event id fragment from a clustering key.
func shortKey(key string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(key))
	if len(enc) > 12 {
		enc = enc[:12]
	}
	return enc
}

func distinctPublishers(group []article.Article) int {
	set := make(map[string]struct{}, len(group))
	for _, a := range group {
		set[strings.ToLower(a.Source)] = struct{}{}
	}
	return len(set)
}
