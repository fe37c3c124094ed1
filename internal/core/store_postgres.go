package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresStore keeps applicants in the applicants table.
type PostgresStore struct {
	db DBTX
}

// NewPostgresStore creates a store on top of a connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

const applicantColumns = `id, name, email, phone, branch, college, specialization, qualification,
	passout_year, programming_languages, preferred_domain, experience, duration,
	internship_mode, linkedin, portfolio, status, submitted_at`

// ListApplicants returns every applicant, newest submission first.
func (s *PostgresStore) ListApplicants(ctx context.Context) ([]Applicant, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+applicantColumns+" FROM applicants ORDER BY submitted_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("query applicants: %w", err)
	}
	defer rows.Close()

	var out []Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// GetApplicant returns one applicant or ErrNotFound.
func (s *PostgresStore) GetApplicant(ctx context.Context, id uuid.UUID) (Applicant, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+applicantColumns+" FROM applicants WHERE id = $1", toPgUUID(id))

	a, err := scanApplicant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Applicant{}, ErrNotFound
	}
	if err != nil {
		return Applicant{}, fmt.Errorf("get applicant: %w", err)
	}
	return a, nil
}

// CreateApplicant inserts a and returns it with an ID assigned.
func (s *PostgresStore) CreateApplicant(ctx context.Context, a Applicant) (Applicant, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO applicants (`+applicantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, COALESCE($18, now()))`,
		toPgUUID(a.ID),
		a.Name,
		a.Email,
		a.Phone,
		a.Branch,
		a.College,
		a.Specialization,
		a.Qualification,
		toPgInt4(a.PassoutYear),
		a.ProgrammingLanguages,
		a.PreferredDomain,
		a.Experience,
		a.Duration,
		a.InternshipMode,
		toPgText(a.LinkedIn),
		toPgText(a.Portfolio),
		string(a.Status),
		pgtype.Timestamptz{Time: a.SubmittedAt, Valid: !a.SubmittedAt.IsZero()},
	)
	if err != nil {
		return Applicant{}, fmt.Errorf("insert applicant: %w", err)
	}
	return a, nil
}

// UpdateApplicantStatus changes the status of one applicant.
func (s *PostgresStore) UpdateApplicantStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE applicants SET status = $2 WHERE id = $1", toPgUUID(id), string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteApplicant removes one applicant.
func (s *PostgresStore) DeleteApplicant(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM applicants WHERE id = $1", toPgUUID(id))
	if err != nil {
		return fmt.Errorf("delete applicant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanApplicant reads one row selected with applicantColumns.
func scanApplicant(row pgx.Row) (Applicant, error) {
	var (
		a           Applicant
		id          pgtype.UUID
		passoutYear pgtype.Int4
		linkedIn    pgtype.Text
		portfolio   pgtype.Text
		status      string
		submittedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&id,
		&a.Name,
		&a.Email,
		&a.Phone,
		&a.Branch,
		&a.College,
		&a.Specialization,
		&a.Qualification,
		&passoutYear,
		&a.ProgrammingLanguages,
		&a.PreferredDomain,
		&a.Experience,
		&a.Duration,
		&a.InternshipMode,
		&linkedIn,
		&portfolio,
		&status,
		&submittedAt,
	)
	if err != nil {
		return Applicant{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	if passoutYear.Valid {
		a.PassoutYear = int(passoutYear.Int32)
	}
	a.LinkedIn = linkedIn.String
	a.Portfolio = portfolio.String
	a.Status = Status(status)
	if submittedAt.Valid {
		a.SubmittedAt = submittedAt.Time
	}
	return a, nil
}

func toPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: [16]byte(id), Valid: id != uuid.Nil}
}

func toPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func toPgInt4(n int) pgtype.Int4 {
	return pgtype.Int4{Int32: int32(n), Valid: n != 0}
}
