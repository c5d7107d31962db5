package models

// Schedule is a recurring weekly time block for a classroom. Times are
// stored as the "HH:MM" strings the masked inputs produce.
type Schedule struct {
	ID          int64  `db:"id" json:"id"`
	ClassroomID int64  `db:"classroom_id" json:"classroom_id"`
	WeekDay     string `db:"week_day" json:"week_day"`
	StartTime   string `db:"start_time" json:"start_time"`
	EndTime     string `db:"end_time" json:"end_time"`
}

// ScheduleWithClassroom is a schedule row denormalized with the classroom
// name for display.
type ScheduleWithClassroom struct {
	Schedule
	ClassroomName string `db:"classroom_name" json:"classroom_name"`
}
