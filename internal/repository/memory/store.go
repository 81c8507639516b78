// Package memory keeps every entity in process memory behind one mutex. It backs
// the server when no database is configured and the use case tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"talentx/internal/domain/application"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/user"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]user.User
	jobs         map[uuid.UUID]job.Job
	applications map[uuid.UUID]application.Application
	invitations  map[uuid.UUID]invitation.Invitation
}

func NewStore() *Store {
	return &Store{
		users:        map[uuid.UUID]user.User{},
		jobs:         map[uuid.UUID]job.Job{},
		applications: map[uuid.UUID]application.Application{},
		invitations:  map[uuid.UUID]invitation.Invitation{},
	}
}

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) Jobs() *JobRepository                 { return &JobRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository { return &ApplicationRepository{s: s} }
func (s *Store) Invitations() *InvitationRepository   { return &InvitationRepository{s: s} }

// ApplicationCount is the number of stored applications for the pair. Rows are
// keyed by id, so a broken uniqueness check shows up as a count above one.
func (s *Store) ApplicationCount(jobID, talentID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.applications {
		if a.JobID == jobID && a.TalentID == talentID {
			n++
		}
	}
	return n
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) ListTalentsExcludingJobApplicants(_ context.Context, jobID uuid.UUID) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]user.User, 0)
	for _, u := range r.s.users {
		if u.Role != user.RoleTalent {
			continue
		}
		if _, applied := r.s.applicationLocked(jobID, u.ID); applied {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type JobRepository struct{ s *Store }

func (r *JobRepository) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j.TechStack = append([]string(nil), j.TechStack...)
	r.s.jobs[j.ID] = j
	return j, nil
}

func (r *JobRepository) GetByID(_ context.Context, jobID uuid.UUID) (job.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	j, ok := r.s.jobs[jobID]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (r *JobRepository) GetSummary(_ context.Context, jobID uuid.UUID) (job.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	j, ok := r.s.jobs[jobID]
	if !ok {
		return job.Summary{}, repository.ErrJobNotFound
	}
	return job.Summary{Job: j, ApplicationsCount: r.s.countApplicationsLocked(jobID)}, nil
}

func (r *JobRepository) Search(_ context.Context, search string) ([]job.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search = strings.TrimSpace(search)
	needle := strings.ToLower(search)

	out := make([]job.Summary, 0)
	for _, j := range r.s.newestJobsLocked() {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), needle) &&
			!strings.Contains(strings.ToLower(j.CompanyName), needle) &&
			!containsExact(j.TechStack, search) {
			continue
		}
		out = append(out, job.Summary{Job: j, ApplicationsCount: r.s.countApplicationsLocked(j.ID)})
	}
	return out, nil
}

func (r *JobRepository) ListOpenNotAppliedBy(_ context.Context, talentID uuid.UUID, now time.Time) ([]job.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]job.Job, 0)
	for _, j := range r.s.newestJobsLocked() {
		if !j.Deadline.After(now) {
			continue
		}
		if _, applied := r.s.applicationLocked(j.ID, talentID); applied {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

type ApplicationRepository struct{ s *Store }

func (r *ApplicationRepository) Insert(_ context.Context, a application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[a.JobID]; !ok {
		return application.Application{}, repository.ErrJobNotFound
	}
	if _, ok := r.s.users[a.TalentID]; !ok {
		return application.Application{}, user.ErrNotFound
	}
	if _, exists := r.s.applicationLocked(a.JobID, a.TalentID); exists {
		return application.Application{}, repository.ErrApplicationExists
	}
	r.s.applications[a.ID] = a
	return a, nil
}

func (r *ApplicationRepository) FindByJobAndTalent(_ context.Context, jobID, talentID uuid.UUID) (application.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.applicationLocked(jobID, talentID)
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (r *ApplicationRepository) ListApplicantsByJob(_ context.Context, jobID uuid.UUID) ([]application.Applicant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]application.Applicant, 0)
	for _, a := range r.s.applications {
		if a.JobID != jobID {
			continue
		}
		out = append(out, application.Applicant{Application: a, TalentName: r.s.users[a.TalentID].Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type InvitationRepository struct{ s *Store }

func (r *InvitationRepository) CreateUnique(_ context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[inv.JobID]; !ok {
		return invitation.Invitation{}, repository.ErrJobNotFound
	}
	for _, id := range []uuid.UUID{inv.TalentID, inv.EmployerID} {
		if _, ok := r.s.users[id]; !ok {
			return invitation.Invitation{}, user.ErrNotFound
		}
	}
	for _, existing := range r.s.invitations {
		if existing.JobID == inv.JobID && existing.TalentID == inv.TalentID && existing.EmployerID == inv.EmployerID {
			return invitation.Invitation{}, repository.ErrInvitationExists
		}
	}
	r.s.invitations[inv.ID] = inv
	return inv, nil
}

func (r *InvitationRepository) GetForTalent(_ context.Context, invitationID, talentID uuid.UUID) (invitation.WithJob, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invitations[invitationID]
	if !ok || inv.TalentID != talentID {
		return invitation.WithJob{}, repository.ErrInvitationNotFound
	}
	return r.s.withJobLocked(inv), nil
}

func (r *InvitationRepository) TransitionFromPending(_ context.Context, invitationID uuid.UUID, status invitation.Status) (invitation.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invitations[invitationID]
	if !ok || inv.Status != invitation.StatusPending {
		return invitation.Invitation{}, repository.ErrInvitationNotPending
	}
	inv.Status = status
	r.s.invitations[invitationID] = inv
	return inv, nil
}

func (r *InvitationRepository) ListByTalent(_ context.Context, talentID uuid.UUID) ([]invitation.WithJob, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]invitation.WithJob, 0)
	for _, inv := range r.s.invitations {
		if inv.TalentID != talentID {
			continue
		}
		out = append(out, r.s.withJobLocked(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) withJobLocked(inv invitation.Invitation) invitation.WithJob {
	j := s.jobs[inv.JobID]
	return invitation.WithJob{
		Invitation:  inv,
		JobTitle:    j.Title,
		CompanyName: j.CompanyName,
		JobDeadline: j.Deadline,
	}
}

func (s *Store) newestJobsLocked() []job.Job {
	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) applicationLocked(jobID, talentID uuid.UUID) (application.Application, bool) {
	for _, a := range s.applications {
		if a.JobID == jobID && a.TalentID == talentID {
			return a, true
		}
	}
	return application.Application{}, false
}

func (s *Store) countApplicationsLocked(jobID uuid.UUID) int {
	n := 0
	for _, a := range s.applications {
		if a.JobID == jobID {
			n++
		}
	}
	return n
}

func containsExact(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

var (
	_ user.Repository                  = (*UserRepository)(nil)
	_ repository.JobRepository         = (*JobRepository)(nil)
	_ repository.ApplicationRepository = (*ApplicationRepository)(nil)
	_ repository.InvitationRepository  = (*InvitationRepository)(nil)
)
