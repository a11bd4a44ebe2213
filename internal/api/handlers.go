package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/logbook"
	"github.com/tmather/daybook/internal/storage"
)

// highlightsPath is the file the reading-highlights extension uploads to.
const highlightsPath = "highlights/kindle-highlights.json"

// Handler holds API route handlers.
type Handler struct {
	logs     *logbook.Store
	prov     *journal.Provisioner
	searcher index.Searcher
	store    storage.Provider
}

// NewHandler creates a new Handler.
func NewHandler(logs *logbook.Store, prov *journal.Provisioner, searcher index.Searcher, store storage.Provider) *Handler {
	return &Handler{logs: logs, prov: prov, searcher: searcher, store: store}
}

// AppendLog handles POST /api/log: validates the submitted entry and
// appends it to the log store. Nothing is persisted on validation failure.
func (h *Handler) AppendLog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	entry, err := logbook.NewEntry(req.Type, req.Datetime, req.Duration, req.Message)
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.logs.Append(entry); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListLogs handles GET /api/log?date=YYYY-MM-DD (default today).
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	entries, err := h.logs.LoadForDay(day)
	if err != nil {
		writeErr(w, err)
		return
	}
	if entries == nil {
		entries = []logbook.Entry{}
	}
	writeJSON(w, http.StatusOK, LogListResponse{Entries: entries})
}

// LogSummary handles GET /api/log/summary?date=YYYY-MM-DD (default today).
func (h *Handler) LogSummary(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	entries, err := h.logs.LoadForDay(day)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Summary: logbook.Summarize(entries)})
}

// ProvisionJournal handles POST /api/journal/{kind}: returns the journal
// note's path, creating it from its template on first access.
func (h *Handler) ProvisionJournal(w http.ResponseWriter, r *http.Request) {
	kind, err := journal.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("kind must be daily, weekly, or monthly"))
		return
	}

	var req JournalRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
	}

	anchor := journal.Anchor{Offset: req.Offset}
	if req.Date != "" {
		parsed, err := logbook.ParseDatetime(req.Date)
		if err != nil {
			writeErr(w, err)
			return
		}
		anchor.Date = &parsed
	}

	path, created, err := h.prov.GetOrCreate(kind, anchor)
	if err != nil {
		writeErr(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, JournalResponse{Path: path, Created: created})
}

// PutHighlights handles PUT /api/highlights: stores the uploaded
// reading-highlights payload at a fixed path under the root.
func (h *Handler) PutHighlights(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req HighlightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		return
	}
	if err := h.store.Write(highlightsPath, []byte(req.Content)); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HighlightsResponse{
		Path: highlightsPath,
		Size: int64(len(req.Content)),
	})
}

// Search handles GET /api/search?q=&limit=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.searcher.Search(q, limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	if results == nil {
		results = []index.SearchResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// dayParam parses the optional ?date= query parameter, defaulting to today.
func dayParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	return logbook.ParseDatetime(raw)
}
