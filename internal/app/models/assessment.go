package models

// Assessment is a gradable evaluation defined for a classroom.
type Assessment struct {
	ID           int64   `db:"id" json:"id"`
	ClassroomID  int64   `db:"classroom_id" json:"classroom_id"`
	Name         string  `db:"name" json:"name"`
	PassingScore float64 `db:"passing_score" json:"passing_score"`
}

// AssessmentWithClassroom is an assessment row denormalized with the
// classroom name for display.
type AssessmentWithClassroom struct {
	Assessment
	ClassroomName string `db:"classroom_name" json:"classroom_name"`
}

// Score is one student's numeric result on one assessment. Rows are seeded
// at 0.0 for every enrolled student when the assessment is created.
type Score struct {
	ID           int64   `db:"id" json:"id"`
	AssessmentID int64   `db:"assessment_id" json:"assessment_id"`
	StudentID    int64   `db:"student_id" json:"student_id"`
	Score        float64 `db:"score" json:"score"`
}

// ScoreWithStudent extends a score row with the student's name for display.
type ScoreWithStudent struct {
	Score
	StudentName string `db:"student_name" json:"student_name"`
}
