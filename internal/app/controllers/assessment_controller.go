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

// AssessmentController handles assessment-related operations
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// CreateAssessment creates an assessment and seeds a zero score per
// enrolled student, atomically.
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assessment, err := c.assessmentService.CreateAssessment(ctx, classroomID, req.Name, req.PassingScore)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assessment,
		Timestamp: time.Now(),
	})
}

// GetAssessmentsByClassroom lists a classroom's assessments
func (c *AssessmentController) GetAssessmentsByClassroom(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	assessments, err := c.assessmentService.GetAssessmentsByClassroom(ctx, classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assessments,
		Timestamp: time.Now(),
	})
}

// UpdateAssessment updates an assessment's name and passing score
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Assessment ID must be a valid number"))
		return
	}

	var req dto.UpdateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assessment := &models.Assessment{
		ID:           id,
		ClassroomID:  req.ClassroomID,
		Name:         req.Name,
		PassingScore: req.PassingScore,
	}
	if err := c.assessmentService.UpdateAssessment(ctx, assessment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assessment updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteAssessment removes an assessment
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Assessment ID must be a valid number"))
		return
	}

	if err := c.assessmentService.DeleteAssessment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assessment deleted successfully"},
		Timestamp: time.Now(),
	})
}
