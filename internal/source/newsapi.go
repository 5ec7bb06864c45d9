package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"reputation-desk/internal/article"
)

const newsAPIPageSize = 20

// NewsAPI fetches from a keyed news-search provider (newsapi.org wire format).
// Without an API key it is a no-op adapter: Fetch returns no articles and no
// error, so an unconfigured deployment degrades instead of failing.
type NewsAPI struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewNewsAPI(baseURL, apiKey string, httpClient *http.Client) *NewsAPI {
	return &NewsAPI{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

func (n *NewsAPI) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

func (n *NewsAPI) Fetch(ctx context.Context, query, language string) ([]article.Article, error) {
	if n.apiKey == "" {
		return nil, nil
	}
	if language == "" {
		language = "en"
	}

	u, err := url.Parse(n.baseURL + "/v2/everything")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("language", language)
	q.Set("pageSize", fmt.Sprint(newsAPIPageSize))
	q.Set("sortBy", "publishedAt")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", n.apiKey)

	resp, err := n.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode)
	}

	var out newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	arts := make([]article.Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		publisher := a.Source.Name
		if publisher == "" {
			publisher = "Unknown"
		}
		arts = append(arts, article.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      publisher,
			PublishedAt: parseRFC3339(a.PublishedAt),
			Language:    language,
		})
	}
	return arts, nil
}

func parseRFC3339(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
