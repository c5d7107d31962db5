package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/psantos/classdiary/internal/app/controllers"
	appMigrations "github.com/psantos/classdiary/internal/app/migrations"
	appRepos "github.com/psantos/classdiary/internal/app/repositories"
	appRoutes "github.com/psantos/classdiary/internal/app/routes"
	appServices "github.com/psantos/classdiary/internal/app/services"
	"github.com/psantos/classdiary/internal/config"
	"github.com/psantos/classdiary/internal/db"
	appMiddleware "github.com/psantos/classdiary/internal/middleware"
	"github.com/psantos/classdiary/internal/pkg/logger"
	"github.com/psantos/classdiary/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ClassroomService         appServices.ClassroomService
	StudentService           appServices.StudentService
	AttendanceService        appServices.AttendanceService
	AttendanceStudentService appServices.AttendanceStudentService
	AssessmentService        appServices.AssessmentService
	ScoreService             appServices.ScoreService
	ActivityService          appServices.ActivityService
	ScheduleService          appServices.ScheduleService

	ClassroomController         *appControllers.ClassroomController
	StudentController           *appControllers.StudentController
	AttendanceController        *appControllers.AttendanceController
	AttendanceStudentController *appControllers.AttendanceStudentController
	AssessmentController        *appControllers.AssessmentController
	ScoreController             *appControllers.ScoreController
	ActivityController          *appControllers.ActivityController
	ScheduleController          *appControllers.ScheduleController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the embedded database and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.DB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.Open(db.OptionsFromConfig(cfg))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.ClassroomService = appServices.NewClassroomService(deps.Repos.ClassroomRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ClassroomRepository)
	deps.AttendanceService = appServices.NewAttendanceService(
		database,
		deps.Repos.AttendanceRepository,
		deps.Repos.AttendanceStudentRepository,
		deps.Repos.ClassroomRepository,
	)
	deps.AttendanceStudentService = appServices.NewAttendanceStudentService(deps.Repos.AttendanceStudentRepository)
	deps.AssessmentService = appServices.NewAssessmentService(
		database,
		deps.Repos.AssessmentRepository,
		deps.Repos.ScoreRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ClassroomRepository,
	)
	deps.ScoreService = appServices.NewScoreService(
		deps.Repos.ScoreRepository,
		deps.Repos.AssessmentRepository,
		deps.Repos.StudentRepository,
	)
	deps.ActivityService = appServices.NewActivityService(deps.Repos.ActivityRepository, deps.Repos.ClassroomRepository)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository, deps.Repos.ClassroomRepository)

	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.AttendanceStudentController = appControllers.NewAttendanceStudentController(deps.AttendanceStudentService)
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.ScoreController = appControllers.NewScoreController(deps.ScoreService)
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)

	if cfg.Seed.DemoData {
		seedLogger := logger.WithField("component", "seed")
		if err := seed.CreateDemoData(context.Background(), deps.Repos, seedLogger); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.ClassroomController,
		deps.StudentController,
		deps.AttendanceController,
		deps.AttendanceStudentController,
		deps.AssessmentController,
		deps.ScoreController,
		deps.ActivityController,
		deps.ScheduleController,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
