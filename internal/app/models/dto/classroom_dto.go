package dto

// CreateClassroomRequest is the payload for creating a classroom.
type CreateClassroomRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateClassroomRequest is the payload for renaming a classroom.
type UpdateClassroomRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
