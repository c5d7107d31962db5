package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/psantos/classdiary/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	classroomController *controllers.ClassroomController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	attendanceStudentController *controllers.AttendanceStudentController,
	assessmentController *controllers.AssessmentController,
	scoreController *controllers.ScoreController,
	activityController *controllers.ActivityController,
	scheduleController *controllers.ScheduleController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Classroom routes, with the per-classroom nested collections
	classrooms := v1.Group("/classrooms")
	{
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.POST("", classroomController.CreateClassroom)
		classrooms.GET("/:id", classroomController.GetClassroomByID)
		classrooms.PUT("/:id", classroomController.UpdateClassroom)
		classrooms.DELETE("/:id", classroomController.DeleteClassroom)

		classrooms.GET("/:id/students", studentController.GetStudentsByClassroom)
		classrooms.POST("/:id/students", studentController.CreateStudent)

		classrooms.GET("/:id/attendances", attendanceController.GetAttendancesByClassroom)
		classrooms.POST("/:id/attendances", attendanceController.CreateAttendance)

		classrooms.GET("/:id/assessments", assessmentController.GetAssessmentsByClassroom)
		classrooms.POST("/:id/assessments", assessmentController.CreateAssessment)

		classrooms.GET("/:id/activities", activityController.GetActivitiesByClassroom)
		classrooms.POST("/:id/activities", activityController.CreateActivity)

		classrooms.GET("/:id/schedules", scheduleController.GetSchedulesByClassroom)
		classrooms.POST("/:id/schedules", scheduleController.CreateSchedule)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Attendance routes, with the per-attendance status rows
	attendances := v1.Group("/attendances")
	{
		attendances.PUT("/:id", attendanceController.UpdateAttendance)
		attendances.DELETE("/:id", attendanceController.DeleteAttendance)

		attendances.GET("/:id/students", attendanceStudentController.GetByAttendance)
		attendances.POST("/:id/students", attendanceStudentController.CreateAttendanceStudent)
	}

	// Attendance status row routes
	attendanceStudents := v1.Group("/attendance-students")
	{
		attendanceStudents.PUT("/:id", attendanceStudentController.UpdateAttendanceStudent)
		attendanceStudents.DELETE("/:id", attendanceStudentController.DeleteAttendanceStudent)
	}

	// Assessment routes, with the per-assessment scores
	assessments := v1.Group("/assessments")
	{
		assessments.PUT("/:id", assessmentController.UpdateAssessment)
		assessments.DELETE("/:id", assessmentController.DeleteAssessment)

		assessments.GET("/:id/scores", scoreController.GetScoresByAssessment)
		assessments.POST("/:id/scores", scoreController.CreateScore)
	}

	// Score routes
	scores := v1.Group("/scores")
	{
		scores.PUT("/:id", scoreController.UpdateScore)
		scores.DELETE("/:id", scoreController.DeleteScore)
	}

	// Activity routes
	activities := v1.Group("/activities")
	{
		activities.PUT("/:id", activityController.UpdateActivity)
		activities.DELETE("/:id", activityController.DeleteActivity)
	}

	// Schedule routes
	schedules := v1.Group("/schedules")
	{
		schedules.PUT("/:id", scheduleController.UpdateSchedule)
		schedules.DELETE("/:id", scheduleController.DeleteSchedule)
	}
}
