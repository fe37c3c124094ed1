package core

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps applicants in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	applicants map[uuid.UUID]Applicant
}

// NewMemoryStore creates a store pre-populated with seed.
func NewMemoryStore(seed ...Applicant) *MemoryStore {
	s := &MemoryStore{applicants: make(map[uuid.UUID]Applicant, len(seed))}
	for _, a := range seed {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		s.applicants[a.ID] = a
	}
	return s
}

// ListApplicants returns all applicants, newest submission first.
func (s *MemoryStore) ListApplicants(ctx context.Context) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]Applicant, 0, len(s.applicants))
	for _, a := range s.applicants {
		out = append(out, a)
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

// GetApplicant returns one applicant or ErrNotFound.
func (s *MemoryStore) GetApplicant(ctx context.Context, id uuid.UUID) (Applicant, error) {
	if err := ctx.Err(); err != nil {
		return Applicant{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applicants[id]
	if !ok {
		return Applicant{}, ErrNotFound
	}
	return a, nil
}

// CreateApplicant stores a and returns it with an ID assigned.
func (s *MemoryStore) CreateApplicant(ctx context.Context, a Applicant) (Applicant, error) {
	if err := ctx.Err(); err != nil {
		return Applicant{}, err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.applicants[a.ID]; exists {
		return Applicant{}, errDuplicateKey
	}
	s.applicants[a.ID] = a
	return a, nil
}

// UpdateApplicantStatus changes the status of one applicant.
func (s *MemoryStore) UpdateApplicantStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applicants[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	s.applicants[id] = a
	return nil
}

// DeleteApplicant removes one applicant.
func (s *MemoryStore) DeleteApplicant(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applicants[id]; !ok {
		return ErrNotFound
	}
	delete(s.applicants, id)
	return nil
}

// sortNewestFirst orders by submission time descending, then by ID so the
// order is deterministic.
func sortNewestFirst(applicants []Applicant) {
	slices.SortFunc(applicants, func(a, b Applicant) int {
		if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}
