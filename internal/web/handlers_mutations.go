package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxBodySize bounds mutation request bodies.
const maxBodySize = 64 << 10

// parseApplicantID resolves the {id} URL parameter.
func parseApplicantID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errInvalidID, err)
	}
	return id, nil
}

// decodeBody fills dst from a JSON body, or from form fields for HTML forms
// and HTMX requests. Form fields are matched against dst's JSON tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil && err != io.EOF {
			return fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	// Round-trip through JSON so form names follow the same tags.
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

// changed tells HTMX clients to reload any open list view.
func changed(w http.ResponseWriter) {
	w.Header().Set("HX-Trigger", templates.ViewChangedEvent)
}

// handleCreateApplicant adds an applicant from the add form.
func (s *Server) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var in core.ApplicantInput
	if err := decodeBody(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	a, err := s.service.AddApplicant(ctx, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if isHTMX(r) {
		changed(w)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `<div class="alert alert-success" role="status">Applicant %s added</div>`,
			templ.EscapeString(a.Name))
		return
	}
	writeJSON(w, r, http.StatusCreated, a)
}

// statusRequest is the body of a status change.
type statusRequest struct {
	Status string `json:"status"`
}

// handleSetStatus moves an applicant to a new review status.
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicantID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var req statusRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	if err := s.service.SetStatus(ctx, id, core.Status(req.Status)); err != nil {
		s.fail(w, r, err)
		return
	}

	changed(w)
	writeJSON(w, r, http.StatusOK, map[string]string{"id": id.String(), "status": req.Status})
}

// handleDeleteApplicant removes an applicant.
func (s *Server) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicantID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	if err := s.service.Delete(ctx, id); err != nil {
		s.fail(w, r, err)
		return
	}

	changed(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleGetApplicant returns one applicant's details, as the details
// fragment for HTMX requests.
func (s *Server) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	id, err := parseApplicantID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	a, err := s.service.GetApplicant(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if isHTMX(r) {
		s.render(w, r, templates.ApplicantDetails(a))
		return
	}
	writeJSON(w, r, http.StatusOK, a)
}
