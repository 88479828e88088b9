package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-talent-tracking/config"
	v1 "go-talent-tracking/internal/delivery/http/v1"
	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"
	"go-talent-tracking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) AddCandidate(ctx context.Context, payload *domain.CandidatePayload) (*domain.Candidate, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) ImportCandidate(ctx context.Context, payload *domain.CandidatePayload) (*domain.Candidate, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func newTestRouter(uc domain.CandidateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	return v1.NewRouter(v1.RouterDeps{
		CandidateUC: uc,
		Config:      &config.Config{FrontendURL: "http://localhost:3000", UploadDir: "uploads"},
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddCandidateEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := new(MockCandidateUsecase)
		uc.On("AddCandidate", mock.Anything, mock.AnythingOfType("*domain.CandidatePayload")).
			Return(&domain.Candidate{ID: 1, FirstName: "Juan"}, nil)

		w := postJSON(newTestRouter(uc), "/v1/candidates",
			`{"firstName":"Juan","lastName":"Pérez","email":"juan.perez@example.com"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Candidate added successfully", resp.Message)
	})

	t.Run("validation violation maps to 400 with the exact message", func(t *testing.T) {
		uc := new(MockCandidateUsecase)
		uc.On("AddCandidate", mock.Anything, mock.Anything).
			Return(nil, apperror.BadRequest("Invalid name"))

		w := postJSON(newTestRouter(uc), "/v1/candidates",
			`{"firstName":"J","lastName":"Pérez","email":"juan.perez@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid name")
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		uc := new(MockCandidateUsecase)
		uc.On("AddCandidate", mock.Anything, mock.Anything).
			Return(nil, apperror.Conflict("The email already exists in the database"))

		w := postJSON(newTestRouter(uc), "/v1/candidates",
			`{"firstName":"Juan","lastName":"Pérez","email":"dup@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "The email already exists in the database")
	})

	t.Run("malformed body maps to 400 without reaching the usecase", func(t *testing.T) {
		uc := new(MockCandidateUsecase)

		w := postJSON(newTestRouter(uc), "/v1/candidates", `{"firstName":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "AddCandidate", mock.Anything, mock.Anything)
	})
}

func TestGetCandidateEndpoint(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := new(MockCandidateUsecase)

		req := httptest.NewRequest(http.MethodGet, "/v1/candidates/abc", nil)
		w := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		uc := new(MockCandidateUsecase)
		uc.On("GetCandidate", mock.Anything, int64(99)).
			Return(nil, apperror.NotFound("Candidate not found"))

		req := httptest.NewRequest(http.MethodGet, "/v1/candidates/99", nil)
		w := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
