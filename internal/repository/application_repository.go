package repository

import (
	"context"
	"errors"
	"strings"

	"talentx/internal/database"
	"talentx/internal/domain/application"
	"talentx/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Insert stores a new application unless one already exists for the same
	// (job, talent) pair, in which case it returns ErrApplicationExists.
	Insert(ctx context.Context, a application.Application) (application.Application, error)
	FindByJobAndTalent(ctx context.Context, jobID, talentID uuid.UUID) (application.Application, error)
	ListApplicantsByJob(ctx context.Context, jobID uuid.UUID) ([]application.Applicant, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, talent_id, source, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (job_id, talent_id) DO NOTHING
		 RETURNING id, job_id, talent_id, source, created_at`,
		a.ID, a.JobID, a.TalentID, string(a.Source), a.CreatedAt.UTC(),
	)

	created, err := scanApplication(row)
	if err != nil {
		switch {
		case errors.Is(err, ErrApplicationNotFound):
			// DO NOTHING returned no row: the pair already has an application.
			return application.Application{}, ErrApplicationExists
		case isUniqueViolation(err):
			return application.Application{}, ErrApplicationExists
		}
		if fkErr := foreignKeyError(err); fkErr != nil {
			return application.Application{}, fkErr
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) FindByJobAndTalent(ctx context.Context, jobID, talentID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, talent_id, source, created_at
		 FROM applications
		 WHERE job_id = $1 AND talent_id = $2`,
		jobID, talentID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListApplicantsByJob(ctx context.Context, jobID uuid.UUID) ([]application.Applicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.talent_id, a.source, a.created_at, u.name
		 FROM applications a
		 JOIN users u ON u.id = a.talent_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Applicant, 0)
	for rows.Next() {
		var it application.Applicant
		var source string
		if err := rows.Scan(&it.ID, &it.JobID, &it.TalentID, &source, &it.CreatedAt, &it.TalentName); err != nil {
			return nil, err
		}
		it.Source = application.Source(source)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var source string
	if err := row.Scan(&a.ID, &a.JobID, &a.TalentID, &source, &a.CreatedAt); err != nil {
		if isNoRows(err) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	a.Source = application.Source(source)
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// foreignKeyError maps a 23503 violation to the missing parent: jobs for the
// job_id constraints, users for every other one. Nil when err is not a violation.
func foreignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return nil
	}
	if strings.HasSuffix(pgErr.ConstraintName, "_job_id_fkey") {
		return ErrJobNotFound
	}
	return user.ErrNotFound
}
