package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// translateWriteError maps storage failures on candidate writes to the
// domain taxonomy. Anything unrecognized is returned unmodified so operators
// keep the original diagnostic detail.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return apperror.Conflict(msgDuplicateEmail)
		}
		return err
	}
	if isConnectivityError(err) {
		return apperror.ServiceUnavailable(msgDatabaseDown)
	}
	return err
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (first_name, last_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.Address,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

// nullIfEmpty turns an omitted scalar field ("" after JSON decoding) into a
// NULL parameter so COALESCE leaves the stored value untouched.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	// Scalar fields only; fields the edit payload omits keep their stored
	// value. Child collections are never part of an update.
	query := `
		UPDATE candidates SET
			first_name = COALESCE($1, first_name),
			last_name  = COALESCE($2, last_name),
			email      = COALESCE($3, email),
			phone      = COALESCE($4, phone),
			address    = COALESCE($5, address),
			updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		nullIfEmpty(candidate.FirstName), nullIfEmpty(candidate.LastName), nullIfEmpty(candidate.Email),
		candidate.Phone, candidate.Address, candidate.ID,
	).Scan(&candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound(msgCandidateMissing)
		}
		return translateWriteError(err)
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
		FROM candidates WHERE id = $1`

	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email,
		&c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) loadChildren(ctx context.Context, c *domain.Candidate) error {
	eduQuery := `
		SELECT id, candidate_id, institution, title, start_date, end_date
		FROM educations WHERE candidate_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, eduQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch educations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Institution, &e.Title, &e.StartDate, &e.EndDate); err != nil {
			return err
		}
		c.Education = append(c.Education, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	weQuery := `
		SELECT id, candidate_id, company, position, description, start_date, end_date
		FROM work_experiences WHERE candidate_id = $1 ORDER BY id`
	weRows, err := r.db.Query(ctx, weQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch work experiences: %w", err)
	}
	defer weRows.Close()
	for weRows.Next() {
		var w domain.WorkExperience
		if err := weRows.Scan(&w.ID, &w.CandidateID, &w.Company, &w.Position, &w.Description, &w.StartDate, &w.EndDate); err != nil {
			return err
		}
		c.WorkExperiences = append(c.WorkExperiences, w)
	}
	if err := weRows.Err(); err != nil {
		return err
	}

	resumeQuery := `
		SELECT id, candidate_id, file_path, file_type, upload_date
		FROM resumes WHERE candidate_id = $1 ORDER BY id`
	resumeRows, err := r.db.Query(ctx, resumeQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch resumes: %w", err)
	}
	defer resumeRows.Close()
	for resumeRows.Next() {
		var res domain.Resume
		if err := resumeRows.Scan(&res.ID, &res.CandidateID, &res.FilePath, &res.FileType, &res.UploadDate); err != nil {
			return err
		}
		c.Resumes = append(c.Resumes, res)
	}
	return resumeRows.Err()
}

// CreateWithChildren writes the whole aggregate inside one transaction. This
// is the bulk-import path: either everything commits or nothing does, unlike
// the sequential intake flow.
func (r *candidateRepository) CreateWithChildren(ctx context.Context, candidate *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translateWriteError(err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO candidates (first_name, last_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, insertQuery,
		candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.Address,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		return translateWriteError(err)
	}

	eduInsert := `
		INSERT INTO educations (candidate_id, institution, title, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range candidate.Education {
		e := &candidate.Education[i]
		e.CandidateID = candidate.ID
		if err := tx.QueryRow(ctx, eduInsert, e.CandidateID, e.Institution, e.Title, e.StartDate, e.EndDate).Scan(&e.ID); err != nil {
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}

	weInsert := `
		INSERT INTO work_experiences (candidate_id, company, position, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for i := range candidate.WorkExperiences {
		w := &candidate.WorkExperiences[i]
		w.CandidateID = candidate.ID
		if err := tx.QueryRow(ctx, weInsert, w.CandidateID, w.Company, w.Position, w.Description, w.StartDate, w.EndDate).Scan(&w.ID); err != nil {
			return fmt.Errorf("failed to insert work experience: %w", err)
		}
	}

	resumeInsert := `
		INSERT INTO resumes (candidate_id, file_path, file_type, upload_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range candidate.Resumes {
		res := &candidate.Resumes[i]
		res.CandidateID = candidate.ID
		if err := tx.QueryRow(ctx, resumeInsert, res.CandidateID, res.FilePath, res.FileType, res.UploadDate).Scan(&res.ID); err != nil {
			return fmt.Errorf("failed to insert resume: %w", err)
		}
	}

	return tx.Commit(ctx)
}
