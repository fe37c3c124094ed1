package core

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// RecentApplicantsLimit is how many applicants the dashboard lists.
const RecentApplicantsLimit = 5

// TrendMonths is how many months the application trend chart covers.
const TrendMonths = 6

// ListApplicants returns every applicant, newest submission first.
func (s *Service) ListApplicants(ctx context.Context) ([]Applicant, error) {
	applicants, err := s.store.ListApplicants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return applicants, nil
}

// GetApplicant returns one applicant.
func (s *Service) GetApplicant(ctx context.Context, id uuid.UUID) (Applicant, error) {
	a, err := s.store.GetApplicant(ctx, id)
	if err != nil {
		return Applicant{}, fmt.Errorf("get applicant %s: %w", id, err)
	}
	return a, nil
}

// DashboardStats summarizes all applicants for the dashboard.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	applicants, err := s.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(applicants, s.now()), nil
}

// computeStats builds the dashboard summary. applicants must be sorted
// newest first.
func computeStats(applicants []Applicant, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalApplicants: len(applicants),
		StatusCounts:    make(map[Status]int, len(Statuses)),
	}
	for _, st := range Statuses {
		stats.StatusCounts[st] = 0
	}

	// Trend buckets, oldest month first.
	now = now.UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]time.Time, TrendMonths)
	for i := range months {
		months[i] = thisMonth.AddDate(0, i-(TrendMonths-1), 0)
	}
	monthCounts := make([]int, TrendMonths)

	domains := make(map[string]int)

	for _, a := range applicants {
		stats.StatusCounts[a.Status]++
		if a.Status == StatusPending {
			stats.PendingApplications++
		}

		domain := a.PreferredDomain
		if domain == "" {
			domain = "Other"
		}
		domains[domain]++

		sub := a.SubmittedAt.UTC()
		bucket := time.Date(sub.Year(), sub.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i, m := range months {
			if bucket.Equal(m) {
				monthCounts[i]++
				break
			}
		}
	}

	stats.MonthlyApplications = make([]MonthCount, TrendMonths)
	for i, m := range months {
		stats.MonthlyApplications[i] = MonthCount{
			Month:        m.Format("Jan 2006"),
			Applications: monthCounts[i],
		}
	}
	stats.MonthlyGrowth = growth(monthCounts[TrendMonths-2], monthCounts[TrendMonths-1])

	stats.DomainStats = make([]DomainCount, 0, len(domains))
	for d, n := range domains {
		stats.DomainStats = append(stats.DomainStats, DomainCount{Domain: d, Count: n})
	}
	sort.Slice(stats.DomainStats, func(i, j int) bool {
		if stats.DomainStats[i].Count != stats.DomainStats[j].Count {
			return stats.DomainStats[i].Count > stats.DomainStats[j].Count
		}
		return stats.DomainStats[i].Domain < stats.DomainStats[j].Domain
	})

	n := min(RecentApplicantsLimit, len(applicants))
	stats.RecentApplicants = append([]Applicant{}, applicants[:n]...)

	return stats
}

// growth is the percent change from prev to cur, rounded to one decimal.
// Growth from zero is reported as 100% when anything arrived.
func growth(prev, cur int) float64 {
	if prev == 0 {
		if cur == 0 {
			return 0
		}
		return 100
	}
	pct := float64(cur-prev) / float64(prev) * 100
	return math.Round(pct*10) / 10
}
