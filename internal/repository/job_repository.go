package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"talentx/internal/database"
	"talentx/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	GetSummary(ctx context.Context, jobID uuid.UUID) (job.Summary, error)
	Search(ctx context.Context, search string) ([]job.Summary, error)
	ListOpenNotAppliedBy(ctx context.Context, talentID uuid.UUID, now time.Time) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, j.company_name, j.tech_stack, j.deadline, j.description, j.employer_id, j.created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs AS j (id, title, company_name, tech_stack, deadline, description, employer_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.CompanyName, j.TechStack, j.Deadline.UTC(), j.Description, j.EmployerID, j.CreatedAt.UTC(),
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, jobID)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetSummary(ctx context.Context, jobID uuid.UUID) (job.Summary, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`, (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
		 FROM jobs j
		 WHERE j.id = $1`,
		jobID,
	)
	return scanSummary(row)
}

// Search matches title or company case-insensitively, or a tech stack entry exactly.
// An empty search returns every job. Newest first.
func (r *PostgresJobRepository) Search(ctx context.Context, search string) ([]job.Summary, error) {
	search = strings.TrimSpace(search)

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`, (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
		 FROM jobs j
		 WHERE $1 = ''
		    OR j.title ILIKE $2 ESCAPE '\'
		    OR j.company_name ILIKE $2 ESCAPE '\'
		    OR $1 = ANY(j.tech_stack)
		 ORDER BY j.created_at DESC`,
		search, "%"+escapeLike(search)+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Summary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListOpenNotAppliedBy(ctx context.Context, talentID uuid.UUID, now time.Time) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.deadline > $2
		   AND NOT EXISTS (SELECT 1 FROM applications a WHERE a.job_id = j.id AND a.talent_id = $1)
		 ORDER BY j.created_at DESC`,
		talentID, now.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyName, &j.TechStack, &j.Deadline, &j.Description, &j.EmployerID, &j.CreatedAt); err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanSummary(row database.Row) (job.Summary, error) {
	var s job.Summary
	j := &s.Job
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyName, &j.TechStack, &j.Deadline, &j.Description, &j.EmployerID, &j.CreatedAt, &s.ApplicationsCount); err != nil {
		if isNoRows(err) {
			return job.Summary{}, ErrJobNotFound
		}
		return job.Summary{}, err
	}
	return s, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows)
}
