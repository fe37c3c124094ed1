package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/JonMunkholm/dashboard/internal/table"
)

// Service provides the business logic of the dashboard.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service backed by store.
func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("new service: nil store")
	}
	return &Service{store: store, now: time.Now}, nil
}

// ListViews returns all registered list views.
func (s *Service) ListViews() []ListView {
	return All()
}

// ViewRecords fetches the full record collection of a view.
func (s *Service) ViewRecords(ctx context.Context, view ListView) ([]table.Record, error) {
	if view.Records == nil {
		return nil, fmt.Errorf("view %s: no record source", view.Key)
	}
	records, err := view.Records(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", view.Key, err)
	}
	return records, nil
}

// BuildView fetches a view's records and runs them through the table engine.
func (s *Service) BuildView(ctx context.Context, view ListView, state table.ViewState) (table.Result, error) {
	records, err := s.ViewRecords(ctx, view)
	if err != nil {
		return table.Result{}, err
	}

	result := table.Build(records, view.Columns, state)
	logging.FromContext(ctx).Debug("view built",
		"view", view.Key,
		"records", len(records),
		"derived", len(result.Derived),
		"page", result.State.Page,
		"total_pages", result.Page.TotalPages,
	)
	return result, nil
}

// ExportView produces the export artifact for a view: the full filtered and
// sorted sequence, independent of the current page.
func (s *Service) ExportView(ctx context.Context, view ListView, state table.ViewState) (table.Artifact, error) {
	records, err := s.ViewRecords(ctx, view)
	if err != nil {
		return table.Artifact{}, err
	}

	art, err := table.Export(records, view.Columns, state, view.Options)
	if err != nil {
		return table.Artifact{}, fmt.Errorf("export %s: %w", view.Key, err)
	}

	logging.FromContext(ctx).Info("view exported",
		"view", view.Key,
		"bytes", len(art.Body),
		"filename", art.Filename,
	)
	return art, nil
}

// ApplicantRecords is the record source of views listing applicants.
func ApplicantRecords(ctx context.Context, s *Service) ([]table.Record, error) {
	applicants, err := s.ListApplicants(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]table.Record, len(applicants))
	for i, a := range applicants {
		records[i] = a.Record()
	}
	return records, nil
}
