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

// ActivityController handles activity-related operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CreateActivity creates an activity; new activities start open
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity := &models.Activity{
		ClassroomID: classroomID,
		Description: req.Description,
	}
	created, err := c.activityService.CreateActivity(ctx, activity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetActivitiesByClassroom lists a classroom's activities
func (c *ActivityController) GetActivitiesByClassroom(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	activities, err := c.activityService.GetActivitiesByClassroom(ctx, classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      activities,
		Timestamp: time.Now(),
	})
}

// UpdateActivity updates an activity's description and status
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Activity ID must be a valid number"))
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity := &models.Activity{
		ID:          id,
		ClassroomID: req.ClassroomID,
		Description: req.Description,
		Status:      models.ActivityStatus(req.Status),
	}
	if err := c.activityService.UpdateActivity(ctx, activity); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Activity updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteActivity removes an activity
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Activity ID must be a valid number"))
		return
	}

	if err := c.activityService.DeleteActivity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Activity deleted successfully"},
		Timestamp: time.Now(),
	})
}
