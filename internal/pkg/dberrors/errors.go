package dberrors

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// code extracts the SQLite extended result code from an error, or -1.
func code(err error) int {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code()
	}
	return -1
}

// IsConstraintError checks if the error is any SQLite constraint violation.
func IsConstraintError(err error) bool {
	// The primary result code lives in the low byte of the extended code.
	return code(err)&0xff == sqlite3.SQLITE_CONSTRAINT
}

// IsUniqueConstraintError checks if the error is a SQLite unique violation.
func IsUniqueConstraintError(err error) bool {
	c := code(err)
	return c == sqlite3.SQLITE_CONSTRAINT_UNIQUE || c == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// IsForeignKeyError checks if the error is a SQLite foreign key violation.
func IsForeignKeyError(err error) bool {
	return code(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}
