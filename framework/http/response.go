package http

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-curp/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusBadRequest, "invalid JSON body")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// TooManyRequests sends 429.
func (res *Response) TooManyRequests(message ...string) {
	res.Error(http.StatusTooManyRequests, first(message, "Too Many Attempts."))
}

// MethodNotAllowed sends 405.
func (res *Response) MethodNotAllowed(message ...string) {
	res.Error(http.StatusMethodNotAllowed, first(message, "Method not allowed."))
}

// ValidationError sends 422 with the error bag.
//
//	res.ValidationError(validator.Errors())
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── Views ────────────────────────────────────────────────────────────────────

// View renders the named template through engine.
//
//	res.View(engine, http.StatusOK, "views/index", data)
func (res *Response) View(engine *ViewEngine, status int, name string, data any) {
	engine.View(res.w, status, name, data)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
