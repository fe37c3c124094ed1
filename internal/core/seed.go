package core

import (
	"context"
	"fmt"
	"time"
)

type demoRow struct {
	name, email, phone, branch, college, spec, qual string
	year                                            int
	langs, domain, exp, duration, mode              string
	status                                          Status
	daysAgo                                         int
}

var demoRows = []demoRow{
	{"Asha Rao", "asha.rao@example.com", "9876500001", "CSE", "NIT Trichy", "Machine Learning", "B.Tech", 2025, "Python, Go", "AI/ML", "Fresher", "6 months", "Remote", StatusPending, 1},
	{"Vikram Singh", "vikram.singh@example.com", "9876500002", "IT", "IIIT Hyderabad", "Web Development", "B.Tech", 2024, "JavaScript, TypeScript", "Frontend", "1 year", "3 months", "Hybrid", StatusInterview, 4},
	{"Meera Nair", "meera.nair@example.com", "9876500003", "ECE", "College of Engineering Pune", "Embedded Systems", "B.E", 2025, "C, C++", "IoT", "Fresher", "6 months", "On-site", StatusApproved, 9},
	{"Rahul Verma", "rahul.verma@example.com", "9876500004", "CSE", "VIT Vellore", "Cloud Computing", "B.Tech", 2024, "Go, Python", "Backend", "6 months", "6 months", "Remote", StatusPending, 16},
	{"Sneha Iyer", "sneha.iyer@example.com", "9876500005", "CSE", "BITS Pilani", "Data Science", "M.Sc", 2023, "Python, R, SQL", "Data", "2 years", "3 months", "Remote", StatusRejected, 27},
	{"Arjun Mehta", "arjun.mehta@example.com", "9876500006", "IT", "DTU Delhi", "Cybersecurity", "B.Tech", 2025, "Python, Bash", "Security", "Fresher", "2 months", "On-site", StatusPending, 38},
	{"Kavya Reddy", "kavya.reddy@example.com", "9876500007", "CSE", "Osmania University", "Mobile Development", "BCA", 2024, "Kotlin, Dart", "Mobile", "Fresher", "3 months", "Hybrid", StatusApproved, 45},
	{"Imran Khan", "imran.khan@example.com", "9876500008", "MCA", "Jamia Millia Islamia", "Web Development", "MCA", 2023, "PHP, JavaScript", "Full Stack", "1 year", "6 months", "Remote", StatusInterview, 61},
	{"Priya Sharma", "priya.sharma@example.com", "9876500009", "CSE", "Anna University", "Machine Learning", "B.E", 2026, "Python", "AI/ML", "Fresher", "6 months", "Remote", StatusPending, 74},
	{"Dev Patel", "dev.patel@example.com", "9876500010", "EEE", "Nirma University", "DevOps", "B.Tech", 2024, "Go, YAML, Bash", "Backend", "6 months", "3 months", "On-site", StatusRejected, 98},
	{"Neha Gupta", "neha.gupta@example.com", "9876500011", "IT", "Manipal Institute of Technology", "UI/UX", "B.Des", 2025, "JavaScript", "", "Fresher", "2 months", "Remote", StatusPending, 120},
	{"Sameer Joshi", "sameer.joshi@example.com", "9876500012", "CSE", "IIT Bombay", "Distributed Systems", "M.Tech", 2024, "Go, Rust", "Backend", "1 year", "6 months", "Hybrid", StatusApproved, 150},
}

// DemoApplicants returns a fixed set of applicants spread over the last
// five months before now, for local development and demos.
func DemoApplicants(now time.Time) []Applicant {
	out := make([]Applicant, len(demoRows))
	for i, d := range demoRows {
		out[i] = Applicant{
			Name:                 d.name,
			Email:                d.email,
			Phone:                d.phone,
			Branch:               d.branch,
			College:              d.college,
			Specialization:       d.spec,
			Qualification:        d.qual,
			PassoutYear:          d.year,
			ProgrammingLanguages: d.langs,
			PreferredDomain:      d.domain,
			Experience:           d.exp,
			Duration:             d.duration,
			InternshipMode:       d.mode,
			Status:               d.status,
			SubmittedAt:          now.UTC().AddDate(0, 0, -d.daysAgo).Truncate(time.Second),
		}
	}
	return out
}

// SeedIfEmpty stores the demo applicants when the store holds none.
// Returns the number of applicants added.
func SeedIfEmpty(ctx context.Context, store Store, now time.Time) (int, error) {
	existing, err := store.ListApplicants(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	demo := DemoApplicants(now)
	for _, a := range demo {
		if _, err := store.CreateApplicant(ctx, a); err != nil {
			return 0, fmt.Errorf("seed %s: %w", a.Name, err)
		}
	}
	return len(demo), nil
}
