package templates

import (
	"context"
	"io"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/a-h/templ"
)

// ApplicantDetails renders every field of one applicant as a fragment for
// the details panel.
func ApplicantDetails(a core.Applicant) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newWriter(w)
		h.raw(`<div class="applicant-details"><h3>`)
		h.text(a.Name)
		h.raw(`</h3><dl>`)

		year := ""
		if a.PassoutYear != 0 {
			year = itoa(a.PassoutYear)
		}
		submitted := ""
		if !a.SubmittedAt.IsZero() {
			submitted = a.SubmittedAt.Format("Jan 2, 2006 15:04")
		}

		detailRow(h, "Email", a.Email)
		detailRow(h, "Phone", a.Phone)
		detailRow(h, "College", a.College)
		detailRow(h, "Branch", a.Branch)
		detailRow(h, "Specialization", a.Specialization)
		detailRow(h, "Qualification", a.Qualification)
		detailRow(h, "Passout Year", year)
		detailRow(h, "Programming Languages", a.ProgrammingLanguages)
		detailRow(h, "Preferred Domain", a.PreferredDomain)
		detailRow(h, "Experience", a.Experience)
		detailRow(h, "Duration", a.Duration)
		detailRow(h, "Mode of Internship", a.InternshipMode)
		detailLink(h, "LinkedIn", a.LinkedIn)
		detailLink(h, "Portfolio", a.Portfolio)
		detailRow(h, "Status", a.Status.Label())
		detailRow(h, "Submitted", submitted)

		h.raw(`</dl></div>`)
		return h.err
	})
}

func detailRow(h *htmlWriter, label, value string) {
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd>`)
	if value == "" {
		value = "-"
	}
	h.text(value)
	h.raw(`</dd>`)
}

// detailLink renders href as an external link. templ.URL replaces unsafe
// schemes such as javascript: with an inert URL.
func detailLink(h *htmlWriter, label, href string) {
	if href == "" {
		detailRow(h, label, "")
		return
	}
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd><a target="_blank" rel="noopener noreferrer"`)
	h.attr("href", string(templ.URL(href)))
	h.raw(`>`)
	h.text(href)
	h.raw(`</a></dd>`)
}
