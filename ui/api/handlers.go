package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/citation"
	"github.com/youssefsiam38/answerui/examples"
	"github.com/youssefsiam38/answerui/ui/service"
	"github.com/youssefsiam38/answerui/view"
)

// maxBodyBytes bounds the size of a posted ask response.
const maxBodyBytes = 1 << 20

// Response wraps all API responses.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
	Meta  *Meta     `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	TotalCount int  `json:"total_count,omitempty"`
	HasMore    bool `json:"has_more,omitempty"`
	Limit      int  `json:"limit,omitempty"`
	Offset     int  `json:"offset,omitempty"`
}

// CreateAnswerRequest is the ask response produced by the chat backend.
type CreateAnswerRequest struct {
	Answer                     string   `json:"answer" validate:"required,max=100000"`
	Thoughts                   string   `json:"thoughts" validate:"max=200000"`
	DataPoints                 []string `json:"data_points" validate:"max=100,dive,required"`
	SupportingContentAvailable bool     `json:"supporting_content_available"`
}

// AnswerDetail is the rendered form of an answer.
type AnswerDetail struct {
	ID                       uuid.UUID       `json:"id"`
	AnswerHTML               string          `json:"answer_html"`
	Citations                []citation.Chip `json:"citations"`
	FollowupQuestions        []string        `json:"followup_questions"`
	ThoughtProcessEnabled    bool            `json:"thought_process_enabled"`
	SupportingContentEnabled bool            `json:"supporting_content_enabled"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeJSONWithMeta writes a JSON response with metadata.
func writeJSONWithMeta(w http.ResponseWriter, status int, data any, meta *Meta) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data, Meta: meta})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeErrorDetails(w, status, code, message, nil)
}

func writeErrorDetails(w http.ResponseWriter, status int, code, message string, details any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error: &APIError{Code: code, Message: message, Details: details},
	})
}

// parseUUID parses a UUID from a path parameter.
func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// parseInt parses an integer from a query parameter with a default.
// It applies bounds validation to prevent resource exhaustion.
func parseInt(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return service.ValidateLimit(i)
}

// parseOffset parses an offset from a query parameter with a default.
func parseOffset(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return service.ValidateOffset(i)
}

// getAnswer resolves the {id} path value, writing the error response on
// failure.
func (rt *router) getAnswer(w http.ResponseWriter, r *http.Request) *answerui.Answer {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid answer ID")
		return nil
	}
	a, err := rt.svc.GetAnswer(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "answer not found")
		return nil
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return nil
	}
	return a
}

func (rt *router) detail(a *answerui.Answer) (*AnswerDetail, error) {
	m, err := rt.views.Build(a, view.Props{})
	if err != nil {
		return nil, err
	}
	return &AnswerDetail{
		ID:                       a.ID,
		AnswerHTML:               string(m.Body),
		Citations:                m.Citations,
		FollowupQuestions:        m.FollowupQuestions,
		ThoughtProcessEnabled:    m.ThoughtProcessEnabled,
		SupportingContentEnabled: m.SupportingContentEnabled,
	}, nil
}

// Answer handlers

func (rt *router) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req CreateAnswerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if msgs := rt.validator.Messages(req); len(msgs) > 0 {
		writeErrorDetails(w, http.StatusUnprocessableEntity, "validation_failed", "invalid ask response", msgs)
		return
	}

	a := answerui.NewAnswer(req.Answer, req.Thoughts, req.DataPoints)
	a.SupportingContentAvailable = req.SupportingContentAvailable
	if err := rt.svc.AddAnswer(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	d, err := rt.detail(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if rt.config.Logger != nil {
		rt.config.Logger.Debug("answer added", "answer_id", a.ID.String(), "citations", len(d.Citations))
	}
	writeJSON(w, http.StatusCreated, d)
}

func (rt *router) handleListAnswers(w http.ResponseWriter, r *http.Request) {
	params := service.AnswerListParams{
		Limit:  parseInt(r, "limit", rt.config.PageSize),
		Offset: parseOffset(r, "offset", 0),
	}

	list, err := rt.svc.ListAnswers(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSONWithMeta(w, http.StatusOK, list.Answers, &Meta{
		TotalCount: list.TotalCount,
		HasMore:    list.HasMore,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

func (rt *router) handleGetAnswer(w http.ResponseWriter, r *http.Request) {
	a := rt.getAnswer(w, r)
	if a == nil {
		return
	}
	d, err := rt.detail(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (rt *router) handleGetDataPoints(w http.ResponseWriter, r *http.Request) {
	a := rt.getAnswer(w, r)
	if a == nil {
		return
	}
	writeJSON(w, http.StatusOK, answerui.ParseDataPoints(a.DataPoints))
}

// Example handlers

func (rt *router) handleListExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, examples.Default())
}

// Cache handlers

// handleCacheStats reports the API renderer's cache only.
func (rt *router) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.views.Cache().Stats())
}
