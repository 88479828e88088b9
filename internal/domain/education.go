package domain

import (
	"context"
	"time"
)

// Education is a child record of a Candidate, linked by CandidateID.
type Education struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Institution string     `json:"institution"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// EducationPayload carries one education entry of the intake request.
// Dates arrive as strict YYYY-MM-DD strings; the validator rejects anything
// else before these are parsed.
type EducationPayload struct {
	Institution string  `json:"institution"`
	Title       string  `json:"title"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type EducationRepository interface {
	Create(ctx context.Context, education *Education) error
	Update(ctx context.Context, education *Education) error
}
