package matches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"evalmatch-backend/internal/llm"
	"evalmatch-backend/internal/shared/server/middleware"
	"evalmatch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-match", h.analyze)
	rg.POST("/generate-questions", h.generateQuestions)
	rg.GET("/matches", h.list)
	rg.GET("/matches/:id", h.get)
}

type analyzeRequest struct {
	ResumeID         int64 `json:"resumeId" binding:"required"`
	JobDescriptionID int64 `json:"jobDescriptionId" binding:"required"`
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "X-User-Id header is required")
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume ID and job description ID are required")
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), userID, req.ResumeID, req.JobDescriptionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Resume ID and job description ID are required")
		case errors.Is(err, ErrReferenceNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, llm.ErrEmptyResponse), errors.Is(err, llm.ErrMalformedResponse):
			respond.Error(c, http.StatusInternalServerError, "analysis_failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to analyze match")
		}
		return
	}

	respond.OK(c, gin.H{
		"match":              result.Match,
		"analysis":           result.Analysis,
		"interviewQuestions": result.Questions,
	})
}

type generateQuestionsRequest struct {
	MatchID int64 `json:"matchId" binding:"required"`
}

func (h *Handler) generateQuestions(c *gin.Context) {
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Match ID is required")
		return
	}

	questions, err := h.Svc.RegenerateQuestions(c.Request.Context(), req.MatchID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Match ID is required")
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrReferenceNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, llm.ErrEmptyResponse), errors.Is(err, llm.ErrMalformedResponse):
			respond.Error(c, http.StatusInternalServerError, "analysis_failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate questions")
		}
		return
	}

	respond.OK(c, gin.H{"questions": questions})
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch matches")
		return
	}
	respond.OK(c, records)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid match id")
		return
	}

	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Match not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch match")
		return
	}
	respond.OK(c, record)
}
