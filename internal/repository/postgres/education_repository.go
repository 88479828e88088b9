package postgres

import (
	"context"

	"go-talent-tracking/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepository struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepository{db: db}
}

// Storage errors on child writes are returned unmodified; only candidate
// writes carry a translation layer.
func (r *educationRepository) Create(ctx context.Context, education *domain.Education) error {
	query := `
		INSERT INTO educations (candidate_id, institution, title, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		education.CandidateID, education.Institution, education.Title,
		education.StartDate, education.EndDate,
	).Scan(&education.ID)
}

func (r *educationRepository) Update(ctx context.Context, education *domain.Education) error {
	query := `
		UPDATE educations SET
			institution = $1, title = $2, start_date = $3, end_date = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query,
		education.Institution, education.Title,
		education.StartDate, education.EndDate, education.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
