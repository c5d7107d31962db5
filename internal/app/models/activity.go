package models

// ActivityStatus tracks whether an activity is still open.
type ActivityStatus string

const (
	ActivityStatusOpen ActivityStatus = "aberta"
	ActivityStatusDone ActivityStatus = "concluida"
)

// Valid returns true when the status is a supported value.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityStatusOpen, ActivityStatusDone:
		return true
	default:
		return false
	}
}

// Activity is a freeform task tracked per classroom.
type Activity struct {
	ID          int64          `db:"id" json:"id"`
	ClassroomID int64          `db:"classroom_id" json:"classroom_id"`
	Description string         `db:"description" json:"description"`
	Status      ActivityStatus `db:"status" json:"status"`
}

// ActivityWithClassroom is an activity row denormalized with the classroom
// name for display.
type ActivityWithClassroom struct {
	Activity
	ClassroomName string `db:"classroom_name" json:"classroom_name"`
}
