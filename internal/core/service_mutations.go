package core

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/google/uuid"
)

// AddApplicant validates the form input and stores a new pending applicant.
func (s *Service) AddApplicant(ctx context.Context, in ApplicantInput) (Applicant, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Applicant{}, err
	}

	var year int
	if in.PassoutYear != "" {
		// Validate already checked the format.
		year, _ = parsePassoutYear(in.PassoutYear)
	}

	a := Applicant{
		ID:                   uuid.New(),
		Name:                 in.Name,
		Email:                in.Email,
		Phone:                in.Phone,
		Branch:               in.Branch,
		College:              in.College,
		Specialization:       in.Specialization,
		Qualification:        in.Qualification,
		PassoutYear:          year,
		ProgrammingLanguages: in.ProgrammingLanguages,
		PreferredDomain:      in.PreferredDomain,
		Experience:           in.Experience,
		Duration:             in.Duration,
		InternshipMode:       in.InternshipMode,
		LinkedIn:             in.LinkedIn,
		Portfolio:            in.Portfolio,
		Status:               StatusPending,
		SubmittedAt:          s.now().UTC(),
	}

	created, err := s.store.CreateApplicant(ctx, a)
	if err != nil {
		return Applicant{}, fmt.Errorf("add applicant: %w", err)
	}

	logging.WithFields(ctx, actorArgs(ctx)...).Info("applicant added",
		"applicant_id", created.ID,
		"branch", created.Branch,
	)
	return created, nil
}

// SetStatus moves an applicant to a new review status.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if _, ok := ParseStatus(string(status)); !ok {
		return ValidationErrors{{Field: "status", Value: string(status), Message: "invalid enum value"}}
	}

	if err := s.store.UpdateApplicantStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set status of %s: %w", id, err)
	}

	logging.WithFields(ctx, actorArgs(ctx)...).Info("applicant status changed",
		"applicant_id", id,
		"status", status,
	)
	return nil
}

// Delete removes an applicant.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteApplicant(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	logging.WithFields(ctx, actorArgs(ctx)...).Warn("applicant deleted", "applicant_id", id)
	return nil
}
