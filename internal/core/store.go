package core

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an applicant does not exist.
var ErrNotFound = errors.New("applicant not found")

// Store persists applicants. Implementations must be safe for concurrent use.
type Store interface {
	// ListApplicants returns every applicant, newest submission first.
	ListApplicants(ctx context.Context) ([]Applicant, error)
	GetApplicant(ctx context.Context, id uuid.UUID) (Applicant, error)
	CreateApplicant(ctx context.Context, a Applicant) (Applicant, error)
	UpdateApplicantStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteApplicant(ctx context.Context, id uuid.UUID) error
}

// errDuplicateKey mirrors the Postgres wording so MapError treats both
// stores alike.
var errDuplicateKey = errors.New("duplicate key: applicant already exists")
