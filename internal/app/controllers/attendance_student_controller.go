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

// AttendanceStudentController handles per-student roll-call row operations
type AttendanceStudentController struct {
	attendanceStudentService services.AttendanceStudentService
}

// NewAttendanceStudentController creates a new AttendanceStudentController
func NewAttendanceStudentController(attendanceStudentService services.AttendanceStudentService) *AttendanceStudentController {
	return &AttendanceStudentController{
		attendanceStudentService: attendanceStudentService,
	}
}

// CreateAttendanceStudent adds a status row to an already-saved roll call
func (c *AttendanceStudentController) CreateAttendanceStudent(ctx *gin.Context) {
	attendanceID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance ID must be a valid number"))
		return
	}

	var req dto.CreateAttendanceStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record := &models.AttendanceStudent{
		AttendanceID: attendanceID,
		StudentID:    req.StudentID,
		Status:       models.AttendanceStatus(req.Status),
	}
	id, err := c.attendanceStudentService.CreateAttendanceStudent(ctx, record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	record.ID = id

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetByAttendance lists a roll call's status rows with student names
func (c *AttendanceStudentController) GetByAttendance(ctx *gin.Context) {
	attendanceID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance ID must be a valid number"))
		return
	}

	records, err := c.attendanceStudentService.GetByAttendance(ctx, attendanceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// UpdateAttendanceStudent flips one student's outcome in a roll call
func (c *AttendanceStudentController) UpdateAttendanceStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance record ID must be a valid number"))
		return
	}

	var req dto.UpdateAttendanceStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record := &models.AttendanceStudent{
		ID:           id,
		AttendanceID: req.AttendanceID,
		StudentID:    req.StudentID,
		Status:       models.AttendanceStatus(req.Status),
	}
	if err := c.attendanceStudentService.UpdateAttendanceStudent(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance record updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteAttendanceStudent removes one status row
func (c *AttendanceStudentController) DeleteAttendanceStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance record ID must be a valid number"))
		return
	}

	if err := c.attendanceStudentService.DeleteAttendanceStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance record deleted successfully"},
		Timestamp: time.Now(),
	})
}
