package dto

// CreateScheduleRequest is the payload for adding a weekly time block.
type CreateScheduleRequest struct {
	WeekDay   string `json:"week_day" binding:"required,min=1,max=20"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// UpdateScheduleRequest is the payload for updating a weekly time block.
type UpdateScheduleRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required,gt=0"`
	WeekDay     string `json:"week_day" binding:"required,min=1,max=20"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}
