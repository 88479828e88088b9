package domain

import (
	"context"
	"time"
)

// WorkExperience is a child record of a Candidate, linked by CandidateID.
type WorkExperience struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// WorkExperiencePayload carries one work-experience entry of the intake request.
type WorkExperiencePayload struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, experience *WorkExperience) error
	Update(ctx context.Context, experience *WorkExperience) error
}
