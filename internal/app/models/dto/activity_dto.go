package dto

// CreateActivityRequest is the payload for creating an activity. New
// activities always start open.
type CreateActivityRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// UpdateActivityRequest is the payload for updating an activity.
type UpdateActivityRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required,gt=0"`
	Description string `json:"description" binding:"required,min=1,max=500"`
	Status      string `json:"status" binding:"required,oneof=aberta concluida"`
}
