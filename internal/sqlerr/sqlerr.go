// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database drivers (pgx for
// PostgreSQL, duckdb-go for the local store) and converts them into
// user-friendly messages (e.g., converting a "foreign key violation"
// into a "Not Found" error)
package sqlerr

import (
	"errors"
	"strings"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a driver-independent category of database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
)

// Severity mirrors the PostgreSQL severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is the normalized form of a driver error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (Code " + string(e.Code) + ": SQLSTATE " + e.DatabaseCode + ")"
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a PostgreSQL SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps a PostgreSQL severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}

// ConvertDuckDBError converts a duckdb-go constraint error into an Error.
//
// DuckDB reports constraint failures as a single error type, so the
// violation kind is read from the message text. Violations surfacing at
// commit time arrive as transaction errors and are matched the same way.
func ConvertDuckDBError(src *duckdb.Error) *Error {
	code := Other
	if strings.Contains(strings.ToLower(src.Msg), "constraint") {
		code = mapDuckDBMessage(src.Msg)
	}

	return &Error{
		Code:      code,
		Severity:  SeverityError,
		Message:   src.Msg,
		driverErr: src,
	}
}

func mapDuckDBMessage(msg string) Code {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "foreign key"):
		return ForeignKeyViolation
	case strings.Contains(lower, "duplicate key"),
		strings.Contains(lower, "unique constraint"),
		strings.Contains(lower, "primary key constraint"):
		return UniqueViolation
	case strings.Contains(lower, "not null"):
		return NotNullViolation
	case strings.Contains(lower, "check constraint"):
		return CheckViolation
	default:
		return Other
	}
}

// Classify reports the Code of a raw or already converted driver error.
func Classify(err error) Code {
	if err == nil {
		return Other
	}
	if sqlErr := convert(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return Classify(err) == UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key failure.
func IsForeignKeyViolation(err error) bool {
	return Classify(err) == ForeignKeyViolation
}

// convert normalizes any supported driver error; nil when err is not one.
func convert(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}

	var duckErr *duckdb.Error
	if errors.As(err, &duckErr) {
		return ConvertDuckDBError(duckErr)
	}

	return nil
}
