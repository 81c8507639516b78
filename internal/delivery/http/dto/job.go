package dto

import (
	"talentx/internal/domain/job"
	"talentx/internal/usecase"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	TechStack   []string  `json:"techStack"`
	Deadline    string    `json:"deadline"`
	Description string    `json:"description"`
	EmployerID  uuid.UUID `json:"employerId"`
	CreatedAt   string    `json:"createdAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		CompanyName: j.CompanyName,
		TechStack:   nonNil(j.TechStack),
		Deadline:    FormatTime(j.Deadline),
		Description: j.Description,
		EmployerID:  j.EmployerID,
		CreatedAt:   FormatTime(j.CreatedAt),
	}
}

type JobListItemResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	CompanyName       string    `json:"companyName"`
	ApplicationsCount int       `json:"applicationsCount"`
}

func NewJobListResponse(items []job.Summary) []JobListItemResponse {
	out := make([]JobListItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, JobListItemResponse{
			ID:                s.ID,
			Title:             s.Title,
			CompanyName:       s.CompanyName,
			ApplicationsCount: s.ApplicationsCount,
		})
	}
	return out
}

type JobDetailsResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	CompanyName       string    `json:"companyName"`
	TechStack         []string  `json:"techStack"`
	Deadline          string    `json:"deadline"`
	Description       string    `json:"description"`
	ApplicationsCount int       `json:"applicationsCount"`
	IsExpired         bool      `json:"isExpired"`
}

func NewJobDetailsResponse(d usecase.JobDetails) JobDetailsResponse {
	return JobDetailsResponse{
		ID:                d.ID,
		Title:             d.Title,
		CompanyName:       d.CompanyName,
		TechStack:         nonNil(d.TechStack),
		Deadline:          FormatTime(d.Deadline),
		Description:       d.Description,
		ApplicationsCount: d.ApplicationsCount,
		IsExpired:         d.IsExpired,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
