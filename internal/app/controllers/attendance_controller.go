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

// AttendanceController handles roll-call event operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// CreateAttendance saves a roll call: the event plus one status row per
// marked student, atomically.
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	entries := make([]models.RollCallEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, models.RollCallEntry{
			StudentID: entry.StudentID,
			Status:    models.AttendanceStatus(entry.Status),
		})
	}

	attendance, err := c.attendanceService.CreateAttendance(ctx, classroomID, req.Date, entries)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      attendance,
		Timestamp: time.Now(),
	})
}

// GetAttendancesByClassroom lists a classroom's roll-call events, newest first
func (c *AttendanceController) GetAttendancesByClassroom(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Classroom ID must be a valid number"))
		return
	}

	attendances, err := c.attendanceService.GetAttendancesByClassroom(ctx, classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      attendances,
		Timestamp: time.Now(),
	})
}

// UpdateAttendance changes a roll-call event's date
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance ID must be a valid number"))
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := middleware.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendance := &models.Attendance{
		ID:          id,
		ClassroomID: req.ClassroomID,
		Date:        req.Date,
	}
	if err := c.attendanceService.UpdateAttendance(ctx, attendance); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteAttendance removes a roll-call event. Its status rows stay behind;
// deletes are single-row and physical.
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Attendance ID must be a valid number"))
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance deleted successfully"},
		Timestamp: time.Now(),
	})
}
