package v1

import (
	"net/http"
	"strconv"

	"go-talent-tracking/internal/delivery/http/response"
	"go-talent-tracking/internal/domain"
	"go-talent-tracking/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.AddCandidate)
		candidates.POST("/import", handler.ImportCandidate)
		candidates.PUT("/:id", handler.EditCandidate)
		candidates.GET("/:id", handler.GetCandidate)
	}
}

// AddCandidate godoc
// @Summary      Add a candidate
// @Description  Validate and persist a candidate with education, work experience and résumé data
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	var payload domain.CandidatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid payload"))
		return
	}

	candidate, err := h.candidateUC.AddCandidate(c, &payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate added successfully", candidate)
}

// EditCandidate updates a candidate's scalar fields by id. The payload is
// assumed pre-validated on this flow.
func (h *CandidateHandler) EditCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	var payload domain.CandidatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid payload"))
		return
	}
	payload.ID = &id

	candidate, err := h.candidateUC.AddCandidate(c, &payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated successfully", candidate)
}

// ImportCandidate writes the full aggregate in a single transaction, unlike
// the standard add flow.
func (h *CandidateHandler) ImportCandidate(c *gin.Context) {
	var payload domain.CandidatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid payload"))
		return
	}

	candidate, err := h.candidateUC.ImportCandidate(c, &payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate imported successfully", candidate)
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}
