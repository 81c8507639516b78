package dto

import (
	"talentx/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID        uuid.UUID          `json:"id"`
	JobID     uuid.UUID          `json:"jobId"`
	TalentID  uuid.UUID          `json:"talentId"`
	Source    application.Source `json:"source"`
	CreatedAt string             `json:"createdAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		TalentID:  a.TalentID,
		Source:    a.Source,
		CreatedAt: FormatTime(a.CreatedAt),
	}
}

type ApplicantResponse struct {
	TalentID   uuid.UUID          `json:"talentId"`
	TalentName string             `json:"talentName"`
	Source     application.Source `json:"source"`
	AppliedAt  string             `json:"appliedAt"`
}

func NewApplicantsResponse(items []application.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicantResponse{
			TalentID:   a.TalentID,
			TalentName: a.TalentName,
			Source:     a.Source,
			AppliedAt:  FormatTime(a.CreatedAt),
		})
	}
	return out
}
