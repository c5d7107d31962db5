package dto

// CreateAssessmentRequest is the payload for creating an assessment. A zero
// score row is seeded for every student enrolled in the classroom.
type CreateAssessmentRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	PassingScore float64 `json:"passing_score" binding:"gte=0"`
}

// UpdateAssessmentRequest is the payload for updating an assessment.
type UpdateAssessmentRequest struct {
	ClassroomID  int64   `json:"classroom_id" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	PassingScore float64 `json:"passing_score" binding:"gte=0"`
}

// CreateScoreRequest is the payload for recording a score row for a
// student who was enrolled after the assessment was seeded.
type CreateScoreRequest struct {
	StudentID int64   `json:"student_id" binding:"required,gt=0"`
	Score     float64 `json:"score" binding:"gte=0"`
}

// UpdateScoreRequest is the payload for grading one student.
type UpdateScoreRequest struct {
	Score float64 `json:"score" binding:"gte=0"`
}
