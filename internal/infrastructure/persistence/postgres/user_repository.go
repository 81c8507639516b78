package postgres

import (
	"context"
	"database/sql"
	"errors"

	"talentx/internal/database"
	"talentx/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email
		 RETURNING id, name, email, role, created_at`,
		u.ID, u.Name, u.Email, string(u.Role), u.CreatedAt.UTC(),
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, role, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// ListTalentsExcludingJobApplicants returns every TALENT user that has no
// application for jobID, oldest account first.
func (r *UserRepository) ListTalentsExcludingJobApplicants(ctx context.Context, jobID uuid.UUID) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.name, u.email, u.role, u.created_at
		 FROM users u
		 WHERE u.role = 'TALENT'
		   AND NOT EXISTS (SELECT 1 FROM applications a WHERE a.job_id = $1 AND a.talent_id = u.id)
		 ORDER BY u.created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
