package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psantos/classdiary/internal/app/models/dto"
	"github.com/psantos/classdiary/internal/app/services"
	"github.com/psantos/classdiary/internal/middleware"
	"github.com/psantos/classdiary/internal/pkg/apperrors"
)

// ClassroomController handles classroom-related operations
type ClassroomController struct {
	classroomService services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// CreateClassroom handles classroom creation
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classroom, err := c.classroomService.CreateClassroom(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// GetAllClassrooms retrieves all classrooms
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	classrooms, err := c.classroomService.GetAllClassrooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classrooms,
		Timestamp: time.Now(),
	})
}

// GetClassroomByID retrieves a classroom by ID
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	classroom, err := c.classroomService.GetClassroomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// UpdateClassroom renames a classroom
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.classroomService.UpdateClassroom(ctx, id, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Classroom updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteClassroom deletes a classroom
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	if err := c.classroomService.DeleteClassroom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Classroom deleted successfully"},
		Timestamp: time.Now(),
	})
}
