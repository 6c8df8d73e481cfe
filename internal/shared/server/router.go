package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evalmatch-backend/internal/jobdescriptions"
	"evalmatch-backend/internal/matches"
	"evalmatch-backend/internal/resumes"
	"evalmatch-backend/internal/services/health"
	"evalmatch-backend/internal/shared/config"
	"evalmatch-backend/internal/shared/server/middleware"
	"evalmatch-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router registers.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
	JobsHandler    *jobdescriptions.Handler
	MatchesHandler *matches.Handler
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.MatchesHandler != nil {
		deps.MatchesHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
