package usecase

import (
	"context"
	"time"

	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"
	"go-talent-tracking/pkg/validation"
)

type candidateUsecase struct {
	candidates  domain.CandidateRepository
	educations  domain.EducationRepository
	experiences domain.WorkExperienceRepository
	resumes     domain.ResumeRepository
	validator   *validation.CandidateValidator
}

func NewCandidateUsecase(
	candidates domain.CandidateRepository,
	educations domain.EducationRepository,
	experiences domain.WorkExperienceRepository,
	resumes domain.ResumeRepository,
	validator *validation.CandidateValidator,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidates:  candidates,
		educations:  educations,
		experiences: experiences,
		resumes:     resumes,
		validator:   validator,
	}
}

// AddCandidate runs the intake sequence: validate, persist the parent, then
// each child as its own storage operation in array order. The sequence is
// deliberately not transactional: a failed child write aborts the rest but
// leaves everything already committed in place. The returned record carries
// the parent's scalar fields only.
func (u *candidateUsecase) AddCandidate(ctx context.Context, payload *domain.CandidatePayload) (*domain.Candidate, error) {
	mode := validation.ModeCreate
	if payload.ID != nil {
		mode = validation.ModeEdit
	}
	if err := u.validator.Validate(payload, mode); err != nil {
		return nil, err
	}

	candidate := candidateFromPayload(payload)
	if payload.ID != nil {
		candidate.ID = *payload.ID
		if err := u.candidates.Update(ctx, candidate); err != nil {
			return nil, err
		}
	} else {
		if err := u.candidates.Create(ctx, candidate); err != nil {
			return nil, err
		}
	}

	// Snapshot before any child is attached: children are created below but
	// never embedded in the response.
	persisted := *candidate

	for i := range payload.Educations {
		education := educationFromPayload(&payload.Educations[i], candidate.ID)
		if err := u.educations.Create(ctx, education); err != nil {
			return nil, err
		}
		candidate.Education = append(candidate.Education, *education)
	}

	for i := range payload.WorkExperiences {
		experience := workExperienceFromPayload(&payload.WorkExperiences[i], candidate.ID)
		if err := u.experiences.Create(ctx, experience); err != nil {
			return nil, err
		}
		candidate.WorkExperiences = append(candidate.WorkExperiences, *experience)
	}

	if payload.HasCV() {
		resume := resumeFromCV(payload.CV, candidate.ID)
		if err := u.saveResume(ctx, resume); err != nil {
			return nil, err
		}
		candidate.Resumes = append(candidate.Resumes, *resume)
	}

	return &persisted, nil
}

// ImportCandidate is the transactional alternative to AddCandidate: the whole
// aggregate is built up front and written in a single transaction by the
// repository.
func (u *candidateUsecase) ImportCandidate(ctx context.Context, payload *domain.CandidatePayload) (*domain.Candidate, error) {
	if err := u.validator.Validate(payload, validation.ModeCreate); err != nil {
		return nil, err
	}

	candidate := candidateFromPayload(payload)
	for i := range payload.Educations {
		candidate.Education = append(candidate.Education, *educationFromPayload(&payload.Educations[i], 0))
	}
	for i := range payload.WorkExperiences {
		candidate.WorkExperiences = append(candidate.WorkExperiences, *workExperienceFromPayload(&payload.WorkExperiences[i], 0))
	}
	if payload.HasCV() {
		candidate.Resumes = append(candidate.Resumes, *resumeFromCV(payload.CV, 0))
	}

	if err := u.candidates.CreateWithChildren(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

// saveResume enforces the append-only résumé rule before the gateway is ever
// contacted.
func (u *candidateUsecase) saveResume(ctx context.Context, resume *domain.Resume) error {
	if resume.ID != 0 {
		return apperror.Forbidden(domain.MsgResumeImmutable)
	}
	return u.resumes.Create(ctx, resume)
}

func candidateFromPayload(p *domain.CandidatePayload) *domain.Candidate {
	return &domain.Candidate{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
	}
}

// Date strings reach this point already vetted by the validator, so parse
// failures are not re-checked here.
func educationFromPayload(p *domain.EducationPayload, candidateID int64) *domain.Education {
	start, _ := time.Parse("2006-01-02", p.StartDate)
	education := &domain.Education{
		CandidateID: candidateID,
		Institution: p.Institution,
		Title:       p.Title,
		StartDate:   start,
	}
	if p.EndDate != nil && *p.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *p.EndDate)
		education.EndDate = &end
	}
	return education
}

func workExperienceFromPayload(p *domain.WorkExperiencePayload, candidateID int64) *domain.WorkExperience {
	start, _ := time.Parse("2006-01-02", p.StartDate)
	experience := &domain.WorkExperience{
		CandidateID: candidateID,
		Company:     p.Company,
		Position:    p.Position,
		Description: p.Description,
		StartDate:   start,
	}
	if p.EndDate != nil && *p.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *p.EndDate)
		experience.EndDate = &end
	}
	return experience
}

func resumeFromCV(cv map[string]interface{}, candidateID int64) *domain.Resume {
	filePath, _ := cv["filePath"].(string)
	fileType, _ := cv["fileType"].(string)
	return domain.NewResume(candidateID, filePath, fileType)
}
