package application

import (
	"time"

	"github.com/google/uuid"
)

type Source string

const (
	SourceManual     Source = "MANUAL"
	SourceInvitation Source = "INVITATION"
)

func (s Source) Valid() bool {
	return s == SourceManual || s == SourceInvitation
}

type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	TalentID  uuid.UUID
	Source    Source
	CreatedAt time.Time
}

// Applicant is an application joined with the talent's display name.
type Applicant struct {
	Application
	TalentName string
}
