package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/psantos/classdiary/internal/app/migrations"
	"github.com/psantos/classdiary/internal/app/models"
	"github.com/psantos/classdiary/internal/db"
)

// setupTestDB opens a private in-memory database with the schema applied.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(db.Options{Path: ":memory:", BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.NewMigrator(database.DB).Migrate(context.Background()); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return database
}

// setupTestDBForeignKeys opens an in-memory database with foreign key
// enforcement turned on, for the constraint-mapping paths.
func setupTestDBForeignKeys(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(db.Options{Path: ":memory:", BusyTimeout: time.Second, ForeignKeys: true})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.NewMigrator(database.DB).Migrate(context.Background()); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return database
}

func createTestClassroom(t *testing.T, database *db.DB, name string) int64 {
	t.Helper()

	id, err := NewClassroomRepository(database).CreateClassroom(context.Background(), &models.Classroom{Name: name})
	if err != nil {
		t.Fatalf("creating classroom %q: %v", name, err)
	}
	return id
}

func createTestStudent(t *testing.T, database *db.DB, classroomID int64, name string) int64 {
	t.Helper()

	id, err := NewStudentRepository(database).CreateStudent(context.Background(), &models.Student{
		ClassroomID: classroomID,
		Name:        name,
	})
	if err != nil {
		t.Fatalf("creating student %q: %v", name, err)
	}
	return id
}

// createTestAttendance writes the attendance event and its entries the way
// the service layer does, in one transaction.
func createTestAttendance(t *testing.T, database *db.DB, classroomID int64, date string, entries []models.RollCallEntry) int64 {
	t.Helper()

	attendanceRepo := NewAttendanceRepository(database)
	recordRepo := NewAttendanceStudentRepository(database)

	var attendanceID int64
	err := database.WithTx(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
		id, err := attendanceRepo.CreateAttendanceTx(ctx, tx, &models.Attendance{ClassroomID: classroomID, Date: date})
		if err != nil {
			return err
		}
		attendanceID = id
		return recordRepo.CreateManyTx(ctx, tx, id, entries)
	})
	if err != nil {
		t.Fatalf("creating attendance: %v", err)
	}
	return attendanceID
}
