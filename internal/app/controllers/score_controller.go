package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/app/models/dto"
	"github.com/psantos/classdiary/internal/app/services"
	"github.com/psantos/classdiary/internal/middleware"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// ScoreController handles score-related operations
type ScoreController struct {
	scoreService services.ScoreService
}

// NewScoreController creates a new ScoreController
func NewScoreController(scoreService services.ScoreService) *ScoreController {
	return &ScoreController{
		scoreService: scoreService,
	}
}

// CreateScore records a score row for a student enrolled after the
// assessment was seeded
func (c *ScoreController) CreateScore(ctx *gin.Context) {
	assessmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Assessment ID must be a valid number"))
		return
	}

	var req dto.CreateScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	score := &models.Score{
		AssessmentID: assessmentID,
		StudentID:    req.StudentID,
		Score:        req.Score,
	}
	created, err := c.scoreService.CreateScore(ctx, score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetScoresByAssessment lists an assessment's scores with student names
func (c *ScoreController) GetScoresByAssessment(ctx *gin.Context) {
	assessmentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Assessment ID must be a valid number"))
		return
	}

	scores, err := c.scoreService.GetScoresByAssessment(ctx, assessmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scores,
		Timestamp: time.Now(),
	})
}

// UpdateScore sets a score's value
func (c *ScoreController) UpdateScore(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Score ID must be a valid number"))
		return
	}

	var req dto.UpdateScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scoreService.UpdateScore(ctx, id, req.Score); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Score updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteScore removes a score row
func (c *ScoreController) DeleteScore(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Score ID must be a valid number"))
		return
	}

	if err := c.scoreService.DeleteScore(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Score deleted successfully"},
		Timestamp: time.Now(),
	})
}
