package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"reputation-desk/internal/article"
)

const (
	googleNewsMaxItems  = 25
	googleNewsUserAgent = "ReputationDesk/1.0"
)

// countryForLanguage maps supported interface languages to the feed's
// locale/country parameters. Unlisted languages use the English defaults.
var countryForLanguage = map[string]string{
	"en": "US",
	"es": "ES",
	"ru": "RU",
	"fr": "FR",
}

// GoogleNews fetches from the public Google News search feed. No credential
// is required; the publisher is recovered from the " - Publisher" suffix the
// feed appends to every headline.
type GoogleNews struct {
	baseURL string
	http    *http.Client
	parser  *gofeed.Parser
}

func NewGoogleNews(baseURL string, httpClient *http.Client) *GoogleNews {
	return &GoogleNews{
		baseURL: baseURL,
		http:    httpClient,
		parser:  gofeed.NewParser(),
	}
}

func (g *GoogleNews) Name() string { return "googlenews" }

func (g *GoogleNews) Fetch(ctx context.Context, query, language string) ([]article.Article, error) {
	lang := language
	country, ok := countryForLanguage[lang]
	if !ok {
		lang, country = "en", "US"
	}

	u, err := url.Parse(g.baseURL + "/rss/search")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("hl", lang+"-"+country)
	q.Set("gl", country)
	q.Set("ceid", country+":"+lang)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", googleNewsUserAgent)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google news status %d", resp.StatusCode)
	}

	feed, err := g.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google news parse: %w", err)
	}

	arts := make([]article.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(arts) == googleNewsMaxItems {
			break
		}

		title, publisher := splitHeadline(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		a := article.Article{
			Title:    title,
			URL:      item.Link,
			Source:   publisher,
			Language: lang,
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		arts = append(arts, a)
	}
	return arts, nil
}

// splitHeadline strips the trailing " - Publisher" the feed appends to every
// title and returns both halves. Titles without the suffix keep the default
// "Google News" publisher.
func splitHeadline(title string) (string, string) {
	publisher := "Google News"
	idx := strings.LastIndex(title, " - ")
	if idx > 0 && idx < len(title)-3 {
		publisher = strings.TrimSpace(title[idx+3:])
		title = strings.TrimSpace(title[:idx])
	}
	return strings.TrimSpace(title), publisher
}
