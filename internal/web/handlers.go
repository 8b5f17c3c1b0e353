package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/fact"
	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
	"github.com/Damoblinkz2/hnc-task-0/internal/ops"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// maxBodyBytes caps the accepted request body size.
const maxBodyBytes = 1 << 20

// Handlers contains HTTP route handlers for the string service.
type Handlers struct {
	store store.Store
	cfg   *config.Config
	facts *fact.Client
}

// createRequest is the POST /strings body. Value is a pointer so a
// missing field can be told apart from an empty string.
type createRequest struct {
	Value *string `json:"value"`
}

// HandleCreate handles POST /strings: analyze and store a new string.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.NewInvalidInput("failed to read request body"))
		return
	}

	var req createRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Covers malformed JSON and non-string value types alike
		writeError(w, errors.NewInvalidInput("request body must be a JSON object with a string \"value\" field"))
		return
	}
	if req.Value == nil {
		writeError(w, errors.NewInvalidInput("value is required"))
		return
	}

	out, err := ops.Create(r.Context(), h.store, h.cfg, ops.CreateInput{Value: *req.Value})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

// HandleList handles GET /strings: list with structured filter parameters.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	criteria, err := filter.FromQueryParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := ops.List(r.Context(), h.store, ops.ListInput{Criteria: criteria})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleQuery handles GET /strings/filter-by-natural-language.
func (h *Handlers) HandleQuery(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Query(r.Context(), h.store, ops.QueryInput{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleFetch handles GET /strings/{value}: fetch by exact value.
func (h *Handlers) HandleFetch(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Fetch(r.Context(), h.store, ops.FetchInput{
		Value: r.PathValue("value"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleDelete handles DELETE /strings/{value}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, err := ops.Delete(r.Context(), h.store, ops.DeleteInput{
		Value: r.PathValue("value"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// meResponse is the GET /me payload.
type meResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Stack string `json:"stack"`
	Fact  string `json:"fact"`
}

// HandleMe handles GET /me: operator profile plus an external fact.
// Upstream failures degrade to a stub fact, never an error response.
func (h *Handlers) HandleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, meResponse{
		Email: h.cfg.Profile.Email,
		Name:  h.cfg.Profile.Name,
		Stack: h.cfg.Profile.Stack,
		Fact:  h.facts.Fact(r.Context()),
	})
}
