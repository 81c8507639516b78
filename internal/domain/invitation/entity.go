package invitation

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
)

// IsResponse reports whether s is a status a talent may respond with.
func (s Status) IsResponse() bool {
	return s == StatusAccepted || s == StatusDeclined
}

type Invitation struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	TalentID   uuid.UUID
	EmployerID uuid.UUID
	Status     Status
	CreatedAt  time.Time
}

// WithJob is an invitation joined with the job fields a talent sees in their inbox.
type WithJob struct {
	Invitation
	JobTitle    string
	CompanyName string
	JobDeadline time.Time
}
