package domain

import (
	"context"
	"time"
)

// MsgResumeImmutable is returned whenever a write is attempted on a résumé
// that already has an identity. Part of the public API contract; keep the
// wording.
const MsgResumeImmutable = "No se permite la actualización de un currículum existente."

// Resume is a child record of a Candidate. Résumés are append-only: a Resume
// that already carries an id must never be written again (the usecase rejects
// it before any repository call).
type Resume struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	FilePath    string    `json:"filePath"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
}

// NewResume builds an unsaved résumé with the upload date fixed at
// construction time.
func NewResume(candidateID int64, filePath, fileType string) *Resume {
	return &Resume{
		CandidateID: candidateID,
		FilePath:    filePath,
		FileType:    fileType,
		UploadDate:  time.Now(),
	}
}

// ResumeRepository intentionally has no Update: résumés are immutable once
// stored.
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
}
