package seeder

import (
	_ "embed"
	"fmt"
	"io"

	"talentx/internal/domain/application"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/user"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Users        []UserFixture        `yaml:"users"`
	Jobs         []JobFixture         `yaml:"jobs"`
	Applications []ApplicationFixture `yaml:"applications"`
	Invitations  []InvitationFixture  `yaml:"invitations"`
}

type UserFixture struct {
	ID    uuid.UUID `yaml:"id"`
	Name  string    `yaml:"name"`
	Email string    `yaml:"email"`
	Role  user.Role `yaml:"role"`
}

type JobFixture struct {
	ID             uuid.UUID `yaml:"id"`
	Title          string    `yaml:"title"`
	CompanyName    string    `yaml:"company_name"`
	TechStack      []string  `yaml:"tech_stack"`
	DeadlineInDays int       `yaml:"deadline_in_days"`
	EmployerID     uuid.UUID `yaml:"employer_id"`
}

type ApplicationFixture struct {
	ID       uuid.UUID          `yaml:"id"`
	JobID    uuid.UUID          `yaml:"job_id"`
	TalentID uuid.UUID          `yaml:"talent_id"`
	Source   application.Source `yaml:"source"`
}

type InvitationFixture struct {
	ID         uuid.UUID         `yaml:"id"`
	JobID      uuid.UUID         `yaml:"job_id"`
	TalentID   uuid.UUID         `yaml:"talent_id"`
	EmployerID uuid.UUID         `yaml:"employer_id"`
	Status     invitation.Status `yaml:"status"`
}

// DefaultFixtures is the demo data set: one employer, three talents, two jobs,
// one manual application and one pending invitation.
func DefaultFixtures() (Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

func LoadFixtures(r io.Reader) (Fixtures, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Fixtures{}, err
	}
	return ParseFixtures(b)
}

func ParseFixtures(b []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

func (f Fixtures) validate() error {
	roles := map[uuid.UUID]user.Role{}
	for _, u := range f.Users {
		if u.ID == uuid.Nil || !u.Role.Valid() {
			return fmt.Errorf("user %q: id and a valid role are required", u.Name)
		}
		roles[u.ID] = u.Role
	}
	owners := map[uuid.UUID]uuid.UUID{}
	for _, j := range f.Jobs {
		if roles[j.EmployerID] != user.RoleEmployer {
			return fmt.Errorf("job %s: employer %s is not a fixture employer", j.ID, j.EmployerID)
		}
		if len(j.TechStack) == 0 {
			return fmt.Errorf("job %s: tech stack is empty", j.ID)
		}
		owners[j.ID] = j.EmployerID
	}
	for _, a := range f.Applications {
		if _, ok := owners[a.JobID]; !ok || roles[a.TalentID] != user.RoleTalent || !a.Source.Valid() {
			return fmt.Errorf("application %s: unknown job, non-talent or bad source", a.ID)
		}
	}
	for _, inv := range f.Invitations {
		if owners[inv.JobID] != inv.EmployerID || roles[inv.TalentID] != user.RoleTalent {
			return fmt.Errorf("invitation %s: job not owned by employer or non-talent invitee", inv.ID)
		}
		switch inv.Status {
		case invitation.StatusPending, invitation.StatusAccepted, invitation.StatusDeclined:
		default:
			return fmt.Errorf("invitation %s: bad status %q", inv.ID, inv.Status)
		}
	}
	return nil
}
