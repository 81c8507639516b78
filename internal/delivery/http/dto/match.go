package dto

import (
	"talentx/internal/usecase"

	"github.com/google/uuid"
)

type TalentMatchResponse struct {
	TalentID uuid.UUID `json:"talentId"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
}

func NewTalentMatchesResponse(items []usecase.TalentMatch) []TalentMatchResponse {
	out := make([]TalentMatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, TalentMatchResponse{TalentID: m.TalentID, Name: m.Name, Score: m.Score})
	}
	return out
}

type FeedItemResponse struct {
	JobID       uuid.UUID `json:"jobId"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	Score       int       `json:"score"`
}

func NewFeedResponse(items []usecase.FeedItem) []FeedItemResponse {
	out := make([]FeedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FeedItemResponse{JobID: it.JobID, Title: it.Title, CompanyName: it.CompanyName, Score: it.Score})
	}
	return out
}
