package dto

// CreateStudentRequest is the payload for enrolling a student. Feedback is
// not taken at creation; the student starts with the default text.
type CreateStudentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Feedback    string `json:"feedback"`
}
