package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/core/views"
	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, RequestTimeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Store:   config.StoreConfig{Kind: config.StoreMemory},
		View:    config.ViewConfig{PageSize: 10},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}
}

type testEnv struct {
	server *Server
	store  *core.MemoryStore
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	store := core.NewMemoryStore(core.DemoApplicants(time.Now())...)
	svc, err := core.NewService(store)
	require.NoError(t, err)

	s := NewServer(svc, cfg)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return &testEnv{server: s, store: store}
}

func (e *testEnv) do(t *testing.T, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	return e.do(t, http.MethodGet, target, "", nil)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestViewPage(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/views/applicants")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Showing 1 to 10 of 12 entries")
	assert.Contains(t, body, "Page 1 of 2")
	assert.Contains(t, body, `placeholder="Search applicants..."`)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = env.get(t, "/views/applicants?page=2")
	assert.Contains(t, rec.Body.String(), "Showing 11 to 12 of 12 entries")
}

func TestViewPage_ClampsStalePage(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/views/applicants?page=99")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page 2 of 2")
}

func TestViewPage_HTMXPartial(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodGet, "/views/applicants?search=asha", "", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="table-container"`)
	assert.Contains(t, body, "Showing 1 to 1 of 1 entries")
	assert.Contains(t, body, "Asha Rao")
}

func TestViewPage_NoMatches(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/views/applicants?search=zzz")
	body := rec.Body.String()
	assert.Contains(t, body, "No data found")
	assert.Contains(t, body, "Showing 0 to 0 of 0 entries")
	assert.Contains(t, body, "Page 1 of 1")
}

func TestViewPage_UnknownView(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/views/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "APP002")
}

func TestViewJSON(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/api/views/applicants?size=5&sort=name&page=3")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[viewResponse](t, rec)
	assert.Equal(t, "applicants", resp.View)
	assert.Equal(t, 12, resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 11, resp.From)
	assert.Equal(t, 12, resp.To)
	assert.Equal(t, "Showing 11 to 12 of 12 entries", resp.Showing)
	require.Len(t, resp.Items, 2)
	// Code-point order over all 12 names puts these two last.
	assert.Equal(t, "Sneha Iyer", resp.Items[0]["name"])
	assert.Equal(t, "Vikram Singh", resp.Items[1]["name"])
}

func TestViewJSON_Filter(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/api/views/applicants?filter=approved")
	resp := decode[viewResponse](t, rec)
	assert.Equal(t, 3, resp.TotalItems)
	for _, item := range resp.Items {
		assert.Equal(t, "approved", item["status"])
	}

	rec = env.get(t, "/api/views/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "APP002", decode[ErrorResponse](t, rec).Code)
}

func TestViewExport(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/views/applicants/export?filter=approved&sort=name&dir=desc&page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, table.ContentTypeCSV, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="export.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 4, "header plus every approved applicant, regardless of page")
	assert.Equal(t, "Name,Specialization,College,Qualification,Duration,Submitted,Status", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Sameer Joshi,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",approved"), "raw values, not rendered labels")
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total Applicants")
	assert.Contains(t, rec.Body.String(), `href="/views/applicants"`)

	rec = env.get(t, "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[core.DashboardStats](t, rec)
	assert.Equal(t, 12, stats.TotalApplicants)
	assert.Len(t, stats.MonthlyApplications, core.TrendMonths)
	assert.Len(t, stats.RecentApplicants, core.RecentApplicantsLimit)
}

func TestListViews(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.get(t, "/api/views")
	got := decode[[]viewSummary](t, rec)
	require.NotEmpty(t, got)
	assert.Equal(t, views.ApplicantsKey, got[0].Key)
}

func TestApplicantLifecycle(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/applicants",
		`{"name":"Zoe Fernandes","email":"ZOE@example.com","phone":"9000000000","branch":"CSE","passoutYear":"2026"}`,
		jsonHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[core.Applicant](t, rec)
	assert.Equal(t, "zoe@example.com", created.Email)
	assert.Equal(t, core.StatusPending, created.Status)

	rec = env.get(t, "/api/applicants/"+created.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{"status": {"interview"}}.Encode()
	rec = env.do(t, http.MethodPatch, "/api/applicants/"+created.ID.String()+"/status", form,
		map[string]string{"Content-Type": "application/x-www-form-urlencoded", "HX-Request": "true"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "view-changed", rec.Header().Get("HX-Trigger"))

	got, err := env.store.GetApplicant(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusInterview, got.Status)

	rec = env.do(t, http.MethodDelete, "/api/applicants/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/applicants/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "APP001", decode[ErrorResponse](t, rec).Code)
}

func TestGetApplicant_DetailsFragment(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/applicants",
		`{"name":"Ravi Kumar","email":"ravi@example.com","phone":"9000000001","branch":"ECE",`+
			`"linkedIn":"https://linkedin.com/in/ravi","portfolio":"javascript:alert(1)"}`,
		jsonHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[core.Applicant](t, rec)

	rec = env.do(t, http.MethodGet, "/api/applicants/"+created.ID.String(), "", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<h3>Ravi Kumar</h3>")
	assert.Contains(t, body, "ravi@example.com")
	assert.Contains(t, body, `href="https://linkedin.com/in/ravi"`)
	assert.NotContains(t, body, `href="javascript:`)

	rec = env.get(t, "/api/applicants/"+created.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ravi Kumar", decode[core.Applicant](t, rec).Name)
}

func TestCreateApplicant_ValidationErrors(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodPost, "/api/applicants", `{"name":"","email":"bad"}`, jsonHeaders)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "VAL001", resp.Code)
	var fields []string
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"name", "phone", "branch", "email"}, fields)
}

func TestCreateApplicant_FormAndHTMX(t *testing.T) {
	env := newTestEnv(t, testConfig())

	form := url.Values{
		"name":   {"<Zoe>"},
		"email":  {"zoe@example.com"},
		"phone":  {"9000000000"},
		"branch": {"IT"},
	}.Encode()
	rec := env.do(t, http.MethodPost, "/api/applicants", form, map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"HX-Request":   "true",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "&lt;Zoe&gt;")
	assert.Equal(t, "view-changed", rec.Header().Get("HX-Trigger"))
}

func TestMutations_BadInput(t *testing.T) {
	env := newTestEnv(t, testConfig())

	rec := env.do(t, http.MethodDelete, "/api/applicants/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQ003", decode[ErrorResponse](t, rec).Code)

	rec = env.do(t, http.MethodPost, "/api/applicants", `{"name":`, jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQ003", decode[ErrorResponse](t, rec).Code)

	all, err := env.store.ListApplicants(context.Background())
	require.NoError(t, err)
	rec = env.do(t, http.MethodPatch, "/api/applicants/"+all[0].ID.String()+"/status", `{"status":"hired"}`, jsonHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL004", decode[ErrorResponse](t, rec).Code)
}

func TestMutations_RequireAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Security = config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"secret"}}
	env := newTestEnv(t, cfg)

	body := `{"name":"A","email":"a@example.com","phone":"1","branch":"CSE"}`
	rec := env.do(t, http.MethodPost, "/api/applicants", body, jsonHeaders)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/applicants", body, map[string]string{
		"Content-Type": "application/json",
		"X-API-Key":    "secret",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Reads stay open.
	rec = env.get(t, "/api/views/applicants")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2, MutationLimit: 2, ExportLimit: 2}
	env := newTestEnv(t, cfg)

	assert.Equal(t, http.StatusOK, env.get(t, "/api/views").Code)
	assert.Equal(t, http.StatusOK, env.get(t, "/api/views").Code)

	rec := env.get(t, "/api/views")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, "RATE001", decode[ErrorResponse](t, rec).Code)
}
