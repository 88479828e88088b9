package v1

import (
	"net/http"

	"go-talent-tracking/config"
	"go-talent-tracking/internal/delivery/http/middleware"
	"go-talent-tracking/internal/delivery/http/response"
	"go-talent-tracking/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewCandidateHandler(v1, deps.CandidateUC)
	NewUploadHandler(v1, deps.Config)

	return r
}
