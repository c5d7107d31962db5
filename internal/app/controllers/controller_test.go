package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/app/controllers"
	"github.com/psantos/classdiary/internal/app/migrations"
	"github.com/psantos/classdiary/internal/app/models/dto"
	"github.com/psantos/classdiary/internal/app/repositories"
	"github.com/psantos/classdiary/internal/app/routes"
	"github.com/psantos/classdiary/internal/app/services"
	"github.com/psantos/classdiary/internal/db"
)

// setupRouter builds the full route tree over an in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Open(db.Options{Path: ":memory:", BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.NewMigrator(database.DB).Migrate(context.Background()); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	repos := repositories.NewRepositories(database)

	classroomService := services.NewClassroomService(repos.ClassroomRepository)
	studentService := services.NewStudentService(repos.StudentRepository, repos.ClassroomRepository)
	attendanceService := services.NewAttendanceService(
		database,
		repos.AttendanceRepository,
		repos.AttendanceStudentRepository,
		repos.ClassroomRepository,
	)
	attendanceStudentService := services.NewAttendanceStudentService(repos.AttendanceStudentRepository)
	assessmentService := services.NewAssessmentService(
		database,
		repos.AssessmentRepository,
		repos.ScoreRepository,
		repos.StudentRepository,
		repos.ClassroomRepository,
	)
	scoreService := services.NewScoreService(repos.ScoreRepository, repos.AssessmentRepository, repos.StudentRepository)
	activityService := services.NewActivityService(repos.ActivityRepository, repos.ClassroomRepository)
	scheduleService := services.NewScheduleService(repos.ScheduleRepository, repos.ClassroomRepository)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewClassroomController(classroomService),
		controllers.NewStudentController(studentService),
		controllers.NewAttendanceController(attendanceService),
		controllers.NewAttendanceStudentController(attendanceStudentService),
		controllers.NewAssessmentController(assessmentService),
		controllers.NewScoreController(scoreService),
		controllers.NewActivityController(activityService),
		controllers.NewScheduleController(scheduleService),
	)
	return router
}

func TestCreateClassroomMissingNameReturnsFieldError(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classrooms", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Name", resp.Error.Field)
	assert.Contains(t, w.Body.String(), "Name is required")
}

func TestCreateClassroomMalformedBodyReturnsValidationError(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classrooms", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Validation failed", resp.Error.Message)
}

func TestGetClassroomBadIDReturnsBadRequest(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/classrooms/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Classroom ID must be a valid number", resp.Error.Message)
}
