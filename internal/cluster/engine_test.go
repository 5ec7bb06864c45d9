package cluster

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"reputation-desk/internal/article"
)

// fixedNow pins recency scoring for the whole suite.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type EngineSuite struct {
	suite.Suite

	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = NewEngineAt(func() time.Time { return fixedNow })
}

func daysAgo(n int) time.Time {
	return fixedNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func (s *EngineSuite) TestEmptyInputYieldsEmptyOutput() {
	s.Empty(s.engine.Build(nil))
	s.Empty(s.engine.Build([]article.Article{}))
}

func (s *EngineSuite) TestTwoPublishersFormAnEvent() {
	arts := []article.Article{
		{Title: "Brand A recall announced", Description: "defective toasters", URL: "https://a.example/1", Source: "Example News", PublishedAt: daysAgo(3)},
		{Title: "Brand A Recall Announced!", URL: "https://b.example/1", Source: "Daily Paper", PublishedAt: daysAgo(4)},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)

	evt := events[0]
	s.True(strings.HasPrefix(evt.ID, "web-"))
	s.Equal("Brand A recall announced", evt.Title)
	s.Equal("defective toasters", evt.Description)
	s.Equal("Brand", evt.EntityName)
	s.Len(evt.Sources, 2)
	s.Equal(daysAgo(3).Format(time.RFC3339), evt.Date)

	// 55 base + 25 scandal ("recall", "defective") + 0 corroboration + 8 recency.
	s.InDelta(88.0, evt.BaseScore, 0.001)
}

func (s *EngineSuite) TestSinglePublisherClusterFallsBackToSingleSource() {
	arts := []article.Article{
		{Title: "Brand A recall announced", URL: "https://a.example/1", Source: "Example News"},
		{Title: "Brand A Recall Announced", URL: "https://a.example/2", Source: "example news"},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)

	// One distinct publisher never yields a multi-source event; the engine
	// demotes the cluster to the single-source tier instead.
	evt := events[0]
	s.True(strings.HasPrefix(evt.ID, "one-"))
	s.Len(evt.Sources, 1)
}

func (s *EngineSuite) TestMultiSourceEventsAlwaysHaveTwoDistinctPublishers() {
	rng := rand.New(rand.NewSource(42))
	titles := []string{"recall at plant", "lawsuit filed", "quarterly report", "new sponsorship"}
	publishers := []string{"Alpha", "Beta", "Gamma"}

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(20)
		arts := make([]article.Article, 0, n)
		for i := 0; i < n; i++ {
			arts = append(arts, article.Article{
				Title:  titles[rng.Intn(len(titles))],
				URL:    fmt.Sprintf("https://example.com/%d/%d", trial, i),
				Source: publishers[rng.Intn(len(publishers))],
			})
		}

		for _, evt := range s.engine.Build(arts) {
			if len(evt.Sources) < 2 {
				continue // fallback tier, single source by contract
			}
			distinct := make(map[string]struct{})
			for _, src := range evt.Sources {
				distinct[strings.ToLower(src.Publisher)] = struct{}{}
			}
			s.GreaterOrEqual(len(distinct), 2, "clustered event with <2 distinct publishers")
		}
	}
}

func (s *EngineSuite) TestScandalPreFilterNarrowsClustering() {
	arts := []article.Article{
		{Title: "Brand A lawsuit over recall", URL: "https://a.example/1", Source: "Example News"},
		{Title: "Brand A Lawsuit Over Recall", URL: "https://b.example/1", Source: "Daily Paper"},
		{Title: "Brand A opens flagship store", URL: "https://c.example/1", Source: "Example News"},
		{Title: "Brand A Opens Flagship Store", URL: "https://d.example/1", Source: "Daily Paper"},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)
	s.Equal("Brand A lawsuit over recall", events[0].Title)
}

func (s *EngineSuite) TestPreFilterWidensWhenNothingIsScandalous() {
	arts := []article.Article{
		{Title: "Brand A opens flagship store", URL: "https://a.example/1", Source: "Example News"},
		{Title: "Brand A Opens Flagship Store", URL: "https://b.example/1", Source: "Daily Paper"},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)
	s.Len(events[0].Sources, 2)
}

func (s *EngineSuite) TestCorroborationAndRecencyBonuses() {
	// Four distinct publishers on one story, 30 days old, no scandal words.
	var arts []article.Article
	for i, pub := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		arts = append(arts, article.Article{
			Title:       "Brand A announces sponsorship renewal",
			URL:         fmt.Sprintf("https://example.com/%d", i),
			Source:      pub,
			PublishedAt: daysAgo(30),
		})
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)

	// 55 + (4-2)*3 corroboration + 4 recency (<60 days); no scandal bonus.
	s.InDelta(65.0, events[0].BaseScore, 0.001)
}

func (s *EngineSuite) TestUndatedClusterGetsNoRecencyBonusAndNowAsDate() {
	arts := []article.Article{
		{Title: "Brand A announces sponsorship renewal", URL: "https://a.example/1", Source: "Alpha"},
		{Title: "Brand A Announces Sponsorship Renewal", URL: "https://b.example/1", Source: "Beta"},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 1)
	s.InDelta(55.0, events[0].BaseScore, 0.001)
	s.Equal(fixedNow.Format(time.RFC3339), events[0].Date)
}

func (s *EngineSuite) TestArticlesWithoutTitleOrURLAreDropped() {
	arts := []article.Article{
		{Title: "", URL: "https://a.example/1", Source: "Alpha"},
		{Title: "Brand A story", URL: "", Source: "Beta"},
	}
	s.Empty(s.engine.Build(arts))
}

func (s *EngineSuite) TestEventsSortByDescendingScore() {
	arts := []article.Article{
		// Older story, two publishers.
		{Title: "Brand A lawsuit filed", URL: "https://a.example/1", Source: "Alpha", PublishedAt: daysAgo(100)},
		{Title: "Brand A Lawsuit Filed", URL: "https://b.example/1", Source: "Beta", PublishedAt: daysAgo(100)},
		// Fresh story, three publishers: higher score, listed second.
		{Title: "Brand A recall backlash grows", URL: "https://c.example/1", Source: "Alpha", PublishedAt: daysAgo(1)},
		{Title: "Brand A Recall Backlash Grows", URL: "https://d.example/1", Source: "Beta", PublishedAt: daysAgo(1)},
		{Title: "Brand A recall backlash grows!", URL: "https://e.example/1", Source: "Gamma", PublishedAt: daysAgo(1)},
	}

	events := s.engine.Build(arts)
	s.Require().Len(events, 2)

	s.Equal("Brand A recall backlash grows", events[0].Title)
	s.Greater(events[0].BaseScore, events[1].BaseScore)
}

func (s *EngineSuite) TestFallbackTierIsCappedAtTen() {
	var arts []article.Article
	for i := 0; i < 13; i++ {
		arts = append(arts, article.Article{
			Title:  fmt.Sprintf("Brand A story number %d", i),
			URL:    fmt.Sprintf("https://example.com/%d", i),
			Source: "Example News",
		})
	}

	events := s.engine.Build(arts)
	s.Len(events, 10)
	for _, evt := range events {
		s.Len(evt.Sources, 1)
	}
}

func (s *EngineSuite) TestDeterministicIDs() {
	arts := []article.Article{
		{Title: "Brand A recall announced", URL: "https://a.example/1", Source: "Alpha"},
		{Title: "Brand A Recall Announced", URL: "https://b.example/1", Source: "Beta"},
	}

	first := s.engine.Build(arts)
	second := s.engine.Build(arts)
	s.Require().Len(first, 1)
	s.Equal(first[0].ID, second[0].ID)
}
