package search

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"reputation-desk/internal/scandal"
)

const (
	defaultPerspective = 50
	defaultLanguage    = "en"
)

// supportedLanguages lists the interface languages with provider mappings;
// anything else falls back to English behavior rather than erroring.
var supportedLanguages = map[string]bool{
	"en": true,
	"es": true,
	"ru": true,
	"fr": true,
}

// Searcher is implemented by Service.
type Searcher interface {
	Search(ctx context.Context, query string, perspective int, language string) scandal.SearchResponse
}

// Handler exposes the query endpoint and health check over HTTP.
type Handler struct {
	searcher Searcher
	logger   *log.Logger
}

func NewHandler(searcher Searcher, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		searcher: searcher,
		logger:   logger,
	}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/search", h.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := params.Get("q")

	perspective := defaultPerspective
	if raw := params.Get("p"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 || p > 100 {
			h.writeError(w, http.StatusBadRequest, "invalid perspective: must be an integer between 0 and 100")
			return
		}
		perspective = p
	}

	language := params.Get("lang")
	if !supportedLanguages[language] {
		language = defaultLanguage
	}

	resp := h.searcher.Search(r.Context(), query, perspective, language)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Printf("search: response encode failed: %v", err)
	}
}
