package repositories

import (
	"github.com/psantos/classdiary/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	ClassroomRepository         *ClassroomRepository
	StudentRepository           *StudentRepository
	AttendanceRepository        *AttendanceRepository
	AttendanceStudentRepository *AttendanceStudentRepository
	AssessmentRepository        *AssessmentRepository
	ScoreRepository             *ScoreRepository
	ActivityRepository          *ActivityRepository
	ScheduleRepository          *ScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		ClassroomRepository:         NewClassroomRepository(database),
		StudentRepository:           NewStudentRepository(database),
		AttendanceRepository:        NewAttendanceRepository(database),
		AttendanceStudentRepository: NewAttendanceStudentRepository(database),
		AssessmentRepository:        NewAssessmentRepository(database),
		ScoreRepository:             NewScoreRepository(database),
		ActivityRepository:          NewActivityRepository(database),
		ScheduleRepository:          NewScheduleRepository(database),
	}
}
