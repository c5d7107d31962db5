package models

// AttendanceStatus is a student's outcome in one roll call.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "presente"
	AttendanceStatusAbsent  AttendanceStatus = "ausente"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent:
		return true
	default:
		return false
	}
}

// Attendance is one roll-call event for a classroom on a given date.
// The date is stored as the display string the app renders (dd/mm/yyyy).
type Attendance struct {
	ID          int64  `db:"id" json:"id"`
	ClassroomID int64  `db:"classroom_id" json:"classroom_id"`
	Date        string `db:"date" json:"date"`
}

// AttendanceStudent is the per-student outcome row of one attendance event.
type AttendanceStudent struct {
	ID           int64            `db:"id" json:"id"`
	AttendanceID int64            `db:"attendance_id" json:"attendance_id"`
	StudentID    int64            `db:"student_id" json:"student_id"`
	Status       AttendanceStatus `db:"status" json:"status"`
}

// AttendanceStudentRecord extends the outcome row with the student's name
// for display.
type AttendanceStudentRecord struct {
	AttendanceStudent
	StudentName string `db:"student_name" json:"student_name"`
}

// RollCallEntry is one marked student in a roll call being saved. Students
// the teacher left unmarked have no entry and no row is written for them.
type RollCallEntry struct {
	StudentID int64            `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
}
