// Package scandal defines the wire model for controversy events and the
// hand-curated seed dataset used when live aggregation yields nothing.
package scandal

// SourceLink is one corroborating article folded into an event.
type SourceLink struct {
	URL              string `json:"url"`
	Publisher        string `json:"publisher"`
	ReliabilityScore int    `json:"reliabilityScore"`
}

// Event is a deduplicated controversy backed by one or more corroborating
// articles. Events produced by clustering always carry at least two sources;
// a single source marks the lower-confidence fallback tier. Events live for
// one request and are never persisted.
type Event struct {
	ID          string       `json:"id"`
	EntityName  string       `json:"entityName"`
	Title       string       `json:"title"`
	Date        string       `json:"date"` // RFC 3339
	Description string       `json:"description"`
	Categories  []string     `json:"categories"`
	Sources     []SourceLink `json:"sources"`
	// BaseScore is the severity before perspective adjustment, in [30,100]
	// for live events; seed events carry authored values.
	BaseScore float64 `json:"baseScore"`
	// IdeologicalTilt is in [-100,100]: negative skews more scandalous to a
	// liberal-leaning perspective, positive to a conservative-leaning one.
	IdeologicalTilt float64 `json:"ideologicalTilt"`
}

// ScoredResult pairs an event with its perspective-adjusted score. It is
// computed per request and never stored.
type ScoredResult struct {
	Event         Event   `json:"event"`
	AdjustedScore float64 `json:"adjustedScore"`
}

// SearchResponse is the query endpoint envelope.
type SearchResponse struct {
	Query       string         `json:"query"`
	Perspective int            `json:"perspective"`
	Language    string         `json:"language"`
	Results     []ScoredResult `json:"results"`
}
