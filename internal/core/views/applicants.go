package views

import (
	"strings"
	"time"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/table"
)

// ApplicantsKey is the registry key of the applicant list.
const ApplicantsKey = "applicants"

func init() {
	registerApplicants()
}

func registerApplicants() {
	filters := make([]table.FilterOption, len(core.Statuses))
	for i, st := range core.Statuses {
		filters[i] = table.FilterOption{Value: string(st), Label: st.Label()}
	}

	core.Register(core.ListView{
		Key:         ApplicantsKey,
		Label:       "Applicants",
		Description: "Manage internship applications",
		Columns: []table.Column{
			{Key: "name", Header: "Name", Sortable: true, Render: renderName},
			{Key: "specialization", Header: "Specialization", Sortable: true},
			{Key: "college", Header: "College", Sortable: true, Render: renderCollege},
			{Key: "qualification", Header: "Qualification", Render: renderQualification},
			{Key: "duration", Header: "Duration"},
			{Key: "submittedAt", Header: "Submitted", Sortable: true, Render: renderDate("submittedAt")},
			{Key: "status", Header: "Status", Render: renderStatus},
		},
		Options: table.Options{
			SearchKey:     "name",
			FilterKey:     "status",
			FilterOptions: filters,
		},
		SearchPlaceholder: "Search applicants...",
		Records:           core.ApplicantRecords,
		RowActions: []core.RowAction{
			{
				Label:  "View Details",
				Method: "GET",
				Path:   applicantPath,
				Target: core.DetailsTarget,
			},
			statusAction("Approve", core.StatusApproved),
			statusAction("Schedule Interview", core.StatusInterview),
			statusAction("Reject", core.StatusRejected),
			{
				Label:   "Delete",
				Method:  "DELETE",
				Path:    applicantPath,
				Confirm: "Delete this applicant?",
			},
		},
		CreatePath: "/api/applicants",
		FormFields: applicantFormFields(),
	})
}

func applicantPath(r table.Record) string {
	return "/api/applicants/" + field(r, "id")
}

func statusAction(label string, status core.Status) core.RowAction {
	return core.RowAction{
		Label:  label,
		Method: "PATCH",
		Path: func(r table.Record) string {
			return applicantPath(r) + "/status"
		},
		Values: map[string]string{"status": string(status)},
	}
}

func applicantFormFields() []core.FormField {
	modes := []table.FilterOption{
		{Value: "Remote", Label: "Remote"},
		{Value: "On-site", Label: "On-site"},
		{Value: "Hybrid", Label: "Hybrid"},
	}
	return []core.FormField{
		{Name: "name", Label: "Full Name", Type: "text", Required: true, Placeholder: "John Doe"},
		{Name: "email", Label: "Email", Type: "email", Required: true, Placeholder: "john@example.com"},
		{Name: "phone", Label: "Phone", Type: "tel", Required: true, Placeholder: "+91 98765 43210"},
		{Name: "college", Label: "College", Type: "text"},
		{Name: "branch", Label: "Branch", Type: "text", Required: true, Placeholder: "CSE"},
		{Name: "specialization", Label: "Specialization", Type: "text"},
		{Name: "qualification", Label: "Qualification", Type: "text", Placeholder: "B.Tech"},
		{Name: "passoutYear", Label: "Passout Year", Type: "number", Placeholder: "2025"},
		{Name: "programmingLanguages", Label: "Programming Languages", Type: "text", Placeholder: "Go, Python"},
		{Name: "preferredDomain", Label: "Preferred Domain", Type: "text"},
		{Name: "experience", Label: "Experience", Type: "text"},
		{Name: "duration", Label: "Duration", Type: "text", Placeholder: "3 months"},
		{Name: "internshipMode", Label: "Mode of Internship", Type: "select", Options: modes},
		{Name: "linkedIn", Label: "LinkedIn", Type: "text"},
		{Name: "portfolio", Label: "Portfolio", Type: "text"},
	}
}

func field(r table.Record, key string) string {
	return table.Coerce(r[key])
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func renderName(r table.Record) string {
	return joinNonEmpty(" · ", field(r, "name"), field(r, "email"))
}

func renderCollege(r table.Record) string {
	return joinNonEmpty(" · ", field(r, "college"), field(r, "branch"))
}

func renderQualification(r table.Record) string {
	q := field(r, "qualification")
	year := field(r, "passoutYear")
	if year == "" {
		return q
	}
	return joinNonEmpty(" · ", q, "Passout: "+year)
}

func renderDate(key string) table.Renderer {
	return func(r table.Record) string {
		t, ok := r[key].(time.Time)
		if !ok || t.IsZero() {
			return field(r, key)
		}
		return t.Format("Jan 2, 2006")
	}
}

func renderStatus(r table.Record) string {
	return core.Status(field(r, "status")).Label()
}
