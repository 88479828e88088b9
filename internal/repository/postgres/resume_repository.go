package postgres

import (
	"context"

	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepository struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepository{db: db}
}

// Create inserts a new résumé record. Résumés are append-only: an instance
// that already carries an id is rejected here, before any query is issued.
func (r *resumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	if resume.ID != 0 {
		return apperror.Forbidden(domain.MsgResumeImmutable)
	}

	query := `
		INSERT INTO resumes (candidate_id, file_path, file_type, upload_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		resume.CandidateID, resume.FilePath, resume.FileType, resume.UploadDate,
	).Scan(&resume.ID)
}
