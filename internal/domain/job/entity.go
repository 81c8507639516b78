package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	Title       string
	CompanyName string
	TechStack   []string
	Deadline    time.Time
	Description string
	EmployerID  uuid.UUID
	CreatedAt   time.Time
}

func (j Job) OwnedBy(employerID uuid.UUID) bool {
	return employerID != uuid.Nil && j.EmployerID == employerID
}

// Summary is a job row with its application count, used by the public listing.
type Summary struct {
	Job
	ApplicationsCount int
}
