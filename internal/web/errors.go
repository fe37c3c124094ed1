package web

// errors.go provides unified error response handling for the web layer.
//
// Technical errors are logged with the request ID; clients get the
// user-friendly message from core.MapError, formatted for HTMX, JSON or
// plain HTML.

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Action  string                 `json:"action,omitempty"`
	Code    string                 `json:"code"`
	Fields  []core.ValidationError `json:"fields,omitempty"`
}

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid applicant id")
)

// statusFor picks the HTTP status for a service error.
func statusFor(err error) int {
	if _, ok := core.AsValidationErrors(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, core.ErrNotFound), errors.Is(err, errUnknownView):
		return http.StatusNotFound
	case errors.Is(err, errInvalidBody), errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fail responds with the status statusFor derives from err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.respondError(w, r, err, statusFor(err))
}

// respondError logs the technical error server-side and returns a
// user-friendly response based on the request type.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	log := logFor(r).With(
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)
	if statusCode >= http.StatusInternalServerError {
		log.Error("request error")
	} else {
		log.Warn("request rejected")
	}

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, userMsg, statusCode)
	case wantsJSON(r):
		resp := ErrorResponse{
			Error:   userMsg.Message,
			Message: userMsg.Message,
			Action:  userMsg.Action,
			Code:    userMsg.Code,
		}
		if verrs, ok := core.AsValidationErrors(err); ok {
			resp.Fields = verrs
		}
		writeJSON(w, r, statusCode, resp)
	default:
		http.Error(w, userMsg.Message+" ("+userMsg.Code+")", statusCode)
	}
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w); err != nil {
		logFor(r).Error("render error partial failed", "error", err)
	}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
