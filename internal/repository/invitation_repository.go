package repository

import (
	"context"
	"errors"
	"fmt"

	"talentx/internal/database"
	"talentx/internal/domain/invitation"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationExists     = errors.New("invitation already exists")
	ErrInvitationNotPending = errors.New("invitation is not pending")
)

type InvitationRepository interface {
	// CreateUnique inserts inv unless an invitation for the same job, talent and
	// employer already exists, whatever its status.
	CreateUnique(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error)
	// GetForTalent conflates a missing invitation and one addressed to another talent.
	GetForTalent(ctx context.Context, invitationID, talentID uuid.UUID) (invitation.WithJob, error)
	// TransitionFromPending moves a PENDING invitation to status. Any other current
	// status yields ErrInvitationNotPending.
	TransitionFromPending(ctx context.Context, invitationID uuid.UUID, status invitation.Status) (invitation.Invitation, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]invitation.WithJob, error)
}

type PostgresInvitationRepository struct {
	db database.DB
}

func NewPostgresInvitationRepository(db database.DB) *PostgresInvitationRepository {
	return &PostgresInvitationRepository{db: db}
}

func (r *PostgresInvitationRepository) CreateUnique(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	var created invitation.Invitation
	err := database.Transact(ctx, r.db, func(tx database.Tx) error {
		// No unique constraint backs the triple, so serialize creators on it instead.
		lockKey := fmt.Sprintf("invitation:%s:%s:%s", inv.JobID, inv.TalentID, inv.EmployerID)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey); err != nil {
			return err
		}

		var exists bool
		row := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM invitations WHERE job_id = $1 AND talent_id = $2 AND employer_id = $3)`,
			inv.JobID, inv.TalentID, inv.EmployerID,
		)
		if err := row.Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrInvitationExists
		}

		row = tx.QueryRow(ctx,
			`INSERT INTO invitations (id, job_id, talent_id, employer_id, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, job_id, talent_id, employer_id, status, created_at`,
			inv.ID, inv.JobID, inv.TalentID, inv.EmployerID, string(inv.Status), inv.CreatedAt.UTC(),
		)
		var err error
		created, err = scanInvitation(row)
		if fkErr := foreignKeyError(err); fkErr != nil {
			return fkErr
		}
		return err
	})
	if err != nil {
		return invitation.Invitation{}, err
	}
	return created, nil
}

func (r *PostgresInvitationRepository) GetForTalent(ctx context.Context, invitationID, talentID uuid.UUID) (invitation.WithJob, error) {
	row := r.db.QueryRow(ctx,
		`SELECT i.id, i.job_id, i.talent_id, i.employer_id, i.status, i.created_at, j.title, j.company_name, j.deadline
		 FROM invitations i
		 JOIN jobs j ON j.id = i.job_id
		 WHERE i.id = $1 AND i.talent_id = $2`,
		invitationID, talentID,
	)
	return scanInvitationWithJob(row)
}

func (r *PostgresInvitationRepository) TransitionFromPending(ctx context.Context, invitationID uuid.UUID, status invitation.Status) (invitation.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE invitations
		 SET status = $2
		 WHERE id = $1 AND status = 'PENDING'
		 RETURNING id, job_id, talent_id, employer_id, status, created_at`,
		invitationID, string(status),
	)
	updated, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return invitation.Invitation{}, ErrInvitationNotPending
		}
		return invitation.Invitation{}, err
	}
	return updated, nil
}

func (r *PostgresInvitationRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]invitation.WithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.job_id, i.talent_id, i.employer_id, i.status, i.created_at, j.title, j.company_name, j.deadline
		 FROM invitations i
		 JOIN jobs j ON j.id = i.job_id
		 WHERE i.talent_id = $1
		 ORDER BY i.created_at DESC`,
		talentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]invitation.WithJob, 0)
	for rows.Next() {
		it, err := scanInvitationWithJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInvitation(row database.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	var status string
	if err := row.Scan(&inv.ID, &inv.JobID, &inv.TalentID, &inv.EmployerID, &status, &inv.CreatedAt); err != nil {
		if isNoRows(err) {
			return invitation.Invitation{}, ErrInvitationNotFound
		}
		return invitation.Invitation{}, err
	}
	inv.Status = invitation.Status(status)
	return inv, nil
}

func scanInvitationWithJob(row database.Row) (invitation.WithJob, error) {
	var it invitation.WithJob
	var status string
	if err := row.Scan(&it.ID, &it.JobID, &it.TalentID, &it.EmployerID, &status, &it.CreatedAt, &it.JobTitle, &it.CompanyName, &it.JobDeadline); err != nil {
		if isNoRows(err) {
			return invitation.WithJob{}, ErrInvitationNotFound
		}
		return invitation.WithJob{}, err
	}
	it.Status = invitation.Status(status)
	return it, nil
}
