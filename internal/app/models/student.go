package models

// DefaultStudentFeedback is the feedback text a student starts with.
const DefaultStudentFeedback = "Nenhuma observação."

// Student belongs to a classroom and accumulates attendance and score rows.
type Student struct {
	ID          int64  `db:"id" json:"id"`
	ClassroomID int64  `db:"classroom_id" json:"classroom_id"`
	Name        string `db:"name" json:"name"`
	Feedback    string `db:"feedback" json:"feedback"`
}

// StudentWithTotals is a student row denormalized with roll-call totals,
// aggregated from Attendances_Students.
type StudentWithTotals struct {
	Student
	TotalAttendance int64 `db:"total_attendance" json:"total_attendance"`
	TotalAbsence    int64 `db:"total_absence" json:"total_absence"`
}
