package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/a-h/templ"
)

// Dashboard renders the overview page.
func Dashboard(sidebar SidebarParams, stats *core.DashboardStats) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newWriter(w)
		h.raw(`<p class="subtitle">Welcome back! Here's an overview of your platform.</p>`)

		h.raw(`<section class="stats-grid">`)
		statCard(h, "Total Applicants", itoa(stats.TotalApplicants), growthText(stats.MonthlyGrowth))
		statCard(h, "Pending Applications", itoa(stats.PendingApplications), "Awaiting review")
		statCard(h, "In Interview", itoa(stats.StatusCounts[core.StatusInterview]), "")
		statCard(h, "Approved", itoa(stats.StatusCounts[core.StatusApproved]), "")
		h.raw(`</section>`)

		h.raw(`<section class="charts">`)
		writeTrend(h, stats.MonthlyApplications)
		writeDomains(h, stats.DomainStats)
		h.raw(`</section>`)

		writeRecent(h, stats.RecentApplicants)
		return h.err
	})
	return Layout("Dashboard", sidebar, body)
}

func statCard(h *htmlWriter, title, value, note string) {
	h.raw(`<div class="card stat"><p class="stat-title">`)
	h.text(title)
	h.raw(`</p><p class="stat-value">`)
	h.text(value)
	h.raw(`</p>`)
	if note != "" {
		h.raw(`<p class="stat-note">`)
		h.text(note)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

func growthText(g float64) string {
	sign := "+"
	if g < 0 {
		sign = ""
	}
	return sign + strconv.FormatFloat(g, 'f', -1, 64) + "% this month"
}

// writeTrend draws the monthly applications as CSS bars scaled to the
// busiest month.
func writeTrend(h *htmlWriter, months []core.MonthCount) {
	peak := 0
	for _, m := range months {
		peak = max(peak, m.Applications)
	}

	h.raw(`<div class="card"><h3>Application Trends</h3><ul class="bars">`)
	for _, m := range months {
		pct := 0
		if peak > 0 {
			pct = m.Applications * 100 / peak
		}
		h.raw(`<li><span class="bar-label">`)
		h.text(m.Month)
		h.raw(`</span><span class="bar"`)
		h.attr("style", "width:"+itoa(pct)+"%")
		h.raw(`></span><span class="bar-value">`)
		h.int(m.Applications)
		h.raw(`</span></li>`)
	}
	h.raw(`</ul></div>`)
}

func writeDomains(h *htmlWriter, domains []core.DomainCount) {
	h.raw(`<div class="card"><h3>Domain Distribution</h3>`)
	if len(domains) == 0 {
		h.raw(`<p class="empty">No data found</p></div>`)
		return
	}
	h.raw(`<ul class="legend">`)
	for _, d := range domains[:min(4, len(domains))] {
		h.raw(`<li><span>`)
		h.text(d.Domain)
		h.raw(`</span><strong>`)
		h.int(d.Count)
		h.raw(`</strong></li>`)
	}
	h.raw(`</ul></div>`)
}

func writeRecent(h *htmlWriter, applicants []core.Applicant) {
	h.raw(`<section class="card"><h3>Recent Applications</h3>`)
	if len(applicants) == 0 {
		h.raw(`<p class="empty">No data found</p></section>`)
		return
	}
	h.raw(`<ul class="recent">`)
	for _, a := range applicants {
		h.raw(`<li><div><p class="name">`)
		h.text(a.Name)
		h.raw(`</p><p class="muted">`)
		h.text(a.Specialization)
		h.raw(`</p></div><span`)
		h.attr("class", "badge badge-"+string(a.Status))
		h.raw(`>`)
		h.text(a.Status.Label())
		h.raw(`</span></li>`)
	}
	h.raw(`</ul></section>`)
}
