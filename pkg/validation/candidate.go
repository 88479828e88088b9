package validation

import (
	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Mode tells the validator which intake flow a payload belongs to. Edit
// payloads are assumed pre-validated and skip every check; the flag is
// explicit so the bypass never happens by accident.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Violation messages. These exact strings are part of the external contract:
// API clients pattern-match on them, so the wording must never change.
const (
	MsgInvalidName        = "Invalid name"
	MsgInvalidEmail       = "Invalid email"
	MsgInvalidPhone       = "Invalid phone"
	MsgInvalidAddress     = "Invalid address"
	MsgInvalidInstitution = "Invalid institution"
	MsgInvalidTitle       = "Invalid title"
	MsgInvalidDate        = "Invalid date"
	MsgInvalidEndDate     = "Invalid end date"
	MsgInvalidCompany     = "Invalid company"
	MsgInvalidPosition    = "Invalid position"
	MsgInvalidDescription = "Invalid description"
	MsgInvalidCV          = "Invalid CV data"
)

// CandidateValidator checks a full intake payload field by field, in a fixed
// order, and stops at the first violation. Violations surface as
// apperror.BadRequest carrying one of the Msg* strings above.
type CandidateValidator struct {
	validate *validator.Validate
}

func NewCandidateValidator(v *validator.Validate) *CandidateValidator {
	RegisterValidators(v)
	return &CandidateValidator{validate: v}
}

// Validate runs the full rule cascade: names, email, phone, address, each
// education entry in array order, each work experience in array order, then
// the cv descriptor. ModeEdit returns immediately without checking anything.
func (cv *CandidateValidator) Validate(p *domain.CandidatePayload, mode Mode) error {
	if mode == ModeEdit {
		return nil
	}

	if err := cv.validate.Var(p.FirstName, "required,min=2,max=100,candidate_name"); err != nil {
		return apperror.BadRequest(MsgInvalidName)
	}
	if err := cv.validate.Var(p.LastName, "required,min=2,max=100,candidate_name"); err != nil {
		return apperror.BadRequest(MsgInvalidName)
	}
	if err := cv.validate.Var(p.Email, "required,strict_email"); err != nil {
		return apperror.BadRequest(MsgInvalidEmail)
	}
	// An empty phone string means "not provided" and passes, same as nil.
	if p.Phone != nil {
		if err := cv.validate.Var(*p.Phone, "spanish_phone"); err != nil {
			return apperror.BadRequest(MsgInvalidPhone)
		}
	}
	if p.Address != nil {
		if err := cv.validate.Var(*p.Address, "max=100"); err != nil {
			return apperror.BadRequest(MsgInvalidAddress)
		}
	}

	for i := range p.Educations {
		if err := cv.validateEducation(&p.Educations[i]); err != nil {
			return err
		}
	}
	for i := range p.WorkExperiences {
		if err := cv.validateWorkExperience(&p.WorkExperiences[i]); err != nil {
			return err
		}
	}

	return cv.validateCV(p)
}

func (cv *CandidateValidator) validateEducation(e *domain.EducationPayload) error {
	if err := cv.validate.Var(e.Institution, "required,min=1,max=100"); err != nil {
		return apperror.BadRequest(MsgInvalidInstitution)
	}
	if err := cv.validate.Var(e.Title, "required,min=1,max=100"); err != nil {
		return apperror.BadRequest(MsgInvalidTitle)
	}
	if err := cv.validate.Var(e.StartDate, "required,strict_date"); err != nil {
		return apperror.BadRequest(MsgInvalidDate)
	}
	if e.EndDate != nil {
		if err := cv.validate.Var(*e.EndDate, "strict_date"); err != nil {
			return apperror.BadRequest(MsgInvalidEndDate)
		}
	}
	return nil
}

func (cv *CandidateValidator) validateWorkExperience(w *domain.WorkExperiencePayload) error {
	if err := cv.validate.Var(w.Company, "required,min=1,max=100"); err != nil {
		return apperror.BadRequest(MsgInvalidCompany)
	}
	if err := cv.validate.Var(w.Position, "required,min=1,max=100"); err != nil {
		return apperror.BadRequest(MsgInvalidPosition)
	}
	if w.Description != nil {
		if err := cv.validate.Var(*w.Description, "max=200"); err != nil {
			return apperror.BadRequest(MsgInvalidDescription)
		}
	}
	if err := cv.validate.Var(w.StartDate, "required,strict_date"); err != nil {
		return apperror.BadRequest(MsgInvalidDate)
	}
	if w.EndDate != nil {
		if err := cv.validate.Var(*w.EndDate, "strict_date"); err != nil {
			return apperror.BadRequest(MsgInvalidEndDate)
		}
	}
	return nil
}

// validateCV treats a cv object with zero keys as absent. A populated one
// must carry filePath and fileType as strings; emptiness is not checked, the
// upload collaborator owns those values.
func (cv *CandidateValidator) validateCV(p *domain.CandidatePayload) error {
	if !p.HasCV() {
		return nil
	}
	if _, ok := p.CV["filePath"].(string); !ok {
		return apperror.BadRequest(MsgInvalidCV)
	}
	if _, ok := p.CV["fileType"].(string); !ok {
		return apperror.BadRequest(MsgInvalidCV)
	}
	return nil
}
