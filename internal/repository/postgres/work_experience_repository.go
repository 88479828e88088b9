package postgres

import (
	"context"

	"go-talent-tracking/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workExperienceRepository struct {
	db *pgxpool.Pool
}

func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepository{db: db}
}

func (r *workExperienceRepository) Create(ctx context.Context, experience *domain.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (candidate_id, company, position, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		experience.CandidateID, experience.Company, experience.Position,
		experience.Description, experience.StartDate, experience.EndDate,
	).Scan(&experience.ID)
}

func (r *workExperienceRepository) Update(ctx context.Context, experience *domain.WorkExperience) error {
	query := `
		UPDATE work_experiences SET
			company = $1, position = $2, description = $3, start_date = $4, end_date = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, query,
		experience.Company, experience.Position, experience.Description,
		experience.StartDate, experience.EndDate, experience.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
