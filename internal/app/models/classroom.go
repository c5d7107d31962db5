package models

// Classroom is a teacher's group of enrolled students. Every other entity
// hangs off a classroom.
type Classroom struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
