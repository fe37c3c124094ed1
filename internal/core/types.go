package core

import (
	"time"

	"github.com/JonMunkholm/dashboard/internal/table"
	"github.com/google/uuid"
)

// Status is the review state of an application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusInterview Status = "interview"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusInterview}

// Label returns the display label of the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusInterview:
		return "Interview"
	default:
		return string(s)
	}
}

// ParseStatus returns the status named by s.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Applicant is one internship application.
type Applicant struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Branch               string    `json:"branch"`
	College              string    `json:"college"`
	Specialization       string    `json:"specialization"`
	Qualification        string    `json:"qualification"`
	PassoutYear          int       `json:"passoutYear,omitempty"`
	ProgrammingLanguages string    `json:"programmingLanguages"`
	PreferredDomain      string    `json:"preferredDomain"`
	Experience           string    `json:"experience"`
	Duration             string    `json:"duration"`
	InternshipMode       string    `json:"internshipMode"`
	LinkedIn             string    `json:"linkedIn,omitempty"`
	Portfolio            string    `json:"portfolio,omitempty"`
	Status               Status    `json:"status"`
	SubmittedAt          time.Time `json:"submittedAt"`
}

// Record converts the applicant to a table record keyed by the JSON field
// names. SubmittedAt is stored as a UTC time so it sorts chronologically.
func (a Applicant) Record() table.Record {
	r := table.Record{
		"id":                   a.ID.String(),
		"name":                 a.Name,
		"email":                a.Email,
		"phone":                a.Phone,
		"branch":               a.Branch,
		"college":              a.College,
		"specialization":       a.Specialization,
		"qualification":        a.Qualification,
		"programmingLanguages": a.ProgrammingLanguages,
		"preferredDomain":      a.PreferredDomain,
		"experience":           a.Experience,
		"duration":             a.Duration,
		"internshipMode":       a.InternshipMode,
		"linkedIn":             a.LinkedIn,
		"portfolio":            a.Portfolio,
		"status":               string(a.Status),
		"submittedAt":          a.SubmittedAt.UTC(),
	}
	if a.PassoutYear != 0 {
		r["passoutYear"] = a.PassoutYear
	}
	return r
}

// ApplicantInput is the payload of the "add applicant" form.
type ApplicantInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Branch               string `json:"branch"`
	College              string `json:"college"`
	Specialization       string `json:"specialization"`
	Qualification        string `json:"qualification"`
	PassoutYear          string `json:"passoutYear"`
	ProgrammingLanguages string `json:"programmingLanguages"`
	PreferredDomain      string `json:"preferredDomain"`
	Experience           string `json:"experience"`
	Duration             string `json:"duration"`
	InternshipMode       string `json:"internshipMode"`
	LinkedIn             string `json:"linkedIn"`
	Portfolio            string `json:"portfolio"`
}

// MonthCount is the number of applications submitted in one month.
type MonthCount struct {
	Month        string `json:"month"` // "Jan 2025"
	Applications int    `json:"applications"`
}

// DomainCount is the number of applicants preferring one domain.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// DashboardStats is the summary shown on the dashboard cards and charts.
type DashboardStats struct {
	TotalApplicants     int            `json:"totalApplicants"`
	PendingApplications int            `json:"pendingApplications"`
	MonthlyGrowth       float64        `json:"monthlyGrowth"` // Percent change vs. previous month
	StatusCounts        map[Status]int `json:"statusCounts"`
	MonthlyApplications []MonthCount   `json:"monthlyApplications"`
	DomainStats         []DomainCount  `json:"domainStats"`
	RecentApplicants    []Applicant    `json:"recentApplicants"`
}
