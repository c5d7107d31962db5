package dto

// RollCallEntryRequest is one marked student in a roll call being saved.
type RollCallEntryRequest struct {
	StudentID int64  `json:"student_id" binding:"required,gt=0"`
	Status    string `json:"status" binding:"required,oneof=presente ausente"`
}

// CreateAttendanceRequest is the payload for saving a roll call. Date is
// optional; when omitted the current date is recorded. Entries cover only
// the students the teacher marked.
type CreateAttendanceRequest struct {
	Date    string                 `json:"date"`
	Entries []RollCallEntryRequest `json:"entries" binding:"dive"`
}

// UpdateAttendanceRequest is the payload for changing a roll-call date.
type UpdateAttendanceRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required,gt=0"`
	Date        string `json:"date" binding:"required"`
}

// CreateAttendanceStudentRequest is the payload for adding a status row to
// an already-saved roll call.
type CreateAttendanceStudentRequest struct {
	StudentID int64  `json:"student_id" binding:"required,gt=0"`
	Status    string `json:"status" binding:"required,oneof=presente ausente"`
}

// UpdateAttendanceStudentRequest is the payload for changing one student's
// outcome in a roll call.
type UpdateAttendanceStudentRequest struct {
	AttendanceID int64  `json:"attendance_id" binding:"required,gt=0"`
	StudentID    int64  `json:"student_id" binding:"required,gt=0"`
	Status       string `json:"status" binding:"required,oneof=presente ausente"`
}
