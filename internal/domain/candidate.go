package domain

import (
	"context"
	"time"
)

// Candidate is the parent record of the intake aggregate. Education,
// WorkExperiences and Resumes are dependent children linked by CandidateID;
// the aggregate is written as a logical unit but not atomically (see
// CandidateUsecase.AddCandidate).
type Candidate struct {
	ID              int64            `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	Address         *string          `json:"address,omitempty"`
	Education       []Education      `json:"education,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences,omitempty"`
	Resumes         []Resume         `json:"resumes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// CandidatePayload is the raw intake request body. ID present means the edit
// flow: the record is updated by id and no validation is applied. CV is kept
// as a loose map so an empty object {} can be told apart from an absent one.
type CandidatePayload struct {
	ID              *int64                  `json:"id,omitempty"`
	FirstName       string                  `json:"firstName"`
	LastName        string                  `json:"lastName"`
	Email           string                  `json:"email"`
	Phone           *string                 `json:"phone,omitempty"`
	Address         *string                 `json:"address,omitempty"`
	Educations      []EducationPayload      `json:"educations,omitempty"`
	WorkExperiences []WorkExperiencePayload `json:"workExperiences,omitempty"`
	CV              map[string]interface{}  `json:"cv,omitempty"`
}

// HasCV reports whether the payload carries a populated cv object.
// A cv with zero keys is treated as absent.
func (p *CandidatePayload) HasCV() bool {
	return len(p.CV) > 0
}

// CandidateRepository defines data access methods for candidates.
// Create assigns the generated id back onto the record.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)

	// CreateWithChildren inserts the candidate and every populated child
	// collection inside one transaction. This is the bulk-import path only;
	// the standard intake flow writes parent and children as independent
	// sequential operations.
	CreateWithChildren(ctx context.Context, candidate *Candidate) error
}

// CandidateUsecase defines business logic for candidate intake.
type CandidateUsecase interface {
	// AddCandidate validates the payload, persists the parent, then each
	// child in array order. Children already written stay committed when a
	// later write fails. The returned record carries scalar fields only.
	AddCandidate(ctx context.Context, payload *CandidatePayload) (*Candidate, error)

	// ImportCandidate validates the payload and writes the whole aggregate
	// in a single transaction.
	ImportCandidate(ctx context.Context, payload *CandidatePayload) (*Candidate, error)

	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
}
