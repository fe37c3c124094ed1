package web

import (
	"net/http"

	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/JonMunkholm/dashboard/internal/web/templates"
	"github.com/a-h/templ"
)

// handleDashboard renders the overview page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.DashboardStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, r, templates.Dashboard(s.sidebarFor("dashboard"), stats))
}

// handleDashboardStats returns the dashboard summary for chart widgets.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.DashboardStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// viewSummary describes a registered view in the view listing.
type viewSummary struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	PageSize    int    `json:"pageSize"`
}

// handleListViews returns all registered views.
func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	views := s.service.ListViews()
	out := make([]viewSummary, len(views))
	for i, v := range views {
		out[i] = viewSummary{Key: v.Key, Label: v.Label, Description: v.Description, PageSize: v.Options.PageSize}
	}
	writeJSON(w, r, http.StatusOK, out)
}

// handleViewPage renders a list view. HTMX requests get only the table
// partial so the container can be swapped in place.
func (s *Server) handleViewPage(w http.ResponseWriter, r *http.Request) {
	view, err := lookupView(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.service.BuildView(r.Context(), view, stateFromQuery(view, r.URL.Query()))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := templates.TableData{
		View:   view,
		Result: result,
		Link: func(st table.ViewState) string {
			return viewLink(view, st)
		},
		ExportURL: exportLink(view, result.State),
		PageSizes: pageSizes,
	}

	if isHTMX(r) {
		s.render(w, r, templates.TablePartial(data))
		return
	}
	s.render(w, r, templates.TableView(s.sidebarFor(view.Key), data))
}

// viewResponse is the JSON form of one rendered page of a view.
type viewResponse struct {
	View       string          `json:"view"`
	State      table.ViewState `json:"state"`
	Items      []table.Record  `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	From       int             `json:"from"`
	To         int             `json:"to"`
	Showing    string          `json:"showing"`
}

// handleViewJSON returns one page of a view as JSON.
func (s *Server) handleViewJSON(w http.ResponseWriter, r *http.Request) {
	view, err := lookupView(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.service.BuildView(r.Context(), view, stateFromQuery(view, r.URL.Query()))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p := result.Page
	writeJSON(w, r, http.StatusOK, viewResponse{
		View:       view.Key,
		State:      result.State,
		Items:      p.Items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.DisplayTotalPages(),
		From:       p.From(),
		To:         p.To(),
		Showing:    templates.ShowingText(p),
	})
}

// handleViewExport streams the export artifact of the view's full filtered
// and sorted sequence, independent of the requested page.
func (s *Server) handleViewExport(w http.ResponseWriter, r *http.Request) {
	view, err := lookupView(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	art, err := s.service.ExportView(r.Context(), view, stateFromQuery(view, r.URL.Query()))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	if _, err := w.Write(art.Body); err != nil {
		logFor(r).Warn("export write failed", "view", view.Key, "error", err)
	}
}

// render writes a templ component as an HTML response.
func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logFor(r).Error("render failed", "path", r.URL.Path, "error", err)
	}
}
