package dto

import (
	"talentx/internal/domain/invitation"

	"github.com/google/uuid"
)

type InvitationResponse struct {
	ID         uuid.UUID         `json:"id"`
	JobID      uuid.UUID         `json:"jobId"`
	TalentID   uuid.UUID         `json:"talentId"`
	EmployerID uuid.UUID         `json:"employerId"`
	Status     invitation.Status `json:"status"`
	CreatedAt  string            `json:"createdAt"`
}

func NewInvitationResponse(inv invitation.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:         inv.ID,
		JobID:      inv.JobID,
		TalentID:   inv.TalentID,
		EmployerID: inv.EmployerID,
		Status:     inv.Status,
		CreatedAt:  FormatTime(inv.CreatedAt),
	}
}

// TalentInvitationResponse is an invitation as listed to the invited talent.
type TalentInvitationResponse struct {
	ID          uuid.UUID         `json:"id"`
	JobTitle    string            `json:"jobTitle"`
	CompanyName string            `json:"companyName"`
	Deadline    string            `json:"deadline"`
	Status      invitation.Status `json:"status"`
}

func NewTalentInvitationsResponse(items []invitation.WithJob) []TalentInvitationResponse {
	out := make([]TalentInvitationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TalentInvitationResponse{
			ID:          it.ID,
			JobTitle:    it.JobTitle,
			CompanyName: it.CompanyName,
			Deadline:    FormatTime(it.JobDeadline),
			Status:      it.Status,
		})
	}
	return out
}
