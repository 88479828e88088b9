package postgres_test

import (
	"context"
	"testing"

	"go-talent-tracking/internal/domain"
	"go-talent-tracking/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
)

func TestResumeCreateRejectsIdentifiedInstance(t *testing.T) {
	// The append-only guard fires before any query, so no pool is needed:
	// reaching the database here would panic.
	repo := postgres.NewResumeRepository(nil)

	resume := &domain.Resume{
		ID:          5,
		CandidateID: 1,
		FilePath:    "/uploads/x.pdf",
		FileType:    "application/pdf",
	}

	err := repo.Create(context.Background(), resume)

	assert.EqualError(t, err, "No se permite la actualización de un currículum existente.")
}
