// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly messages (e.g., converting
// a "check violation" into a "Bad Request" error)
package sqlerr

import "fmt"

// Code is a driver-independent category for a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	StringTooLong       Code = "string_data_right_truncation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
)

// SQLSTATE values (PostgreSQL appendix A) mapped by MapCode.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
	sqlStateStringTooLong       = "22001"
	sqlStateNumericOutOfRange   = "22003"
)

// Severity mirrors the PostgreSQL severity field.
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

// Error is a normalized database error. driverErr keeps the original
// so errors.As can still reach *pgconn.PgError.
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
	return fmt.Sprintf("%s: %s (code %s, SQLSTATE %s)", e.Severity, e.Message, e.Code, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case sqlStateNotNullViolation:
		return NotNullViolation
	case sqlStateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlStateUniqueViolation:
		return UniqueViolation
	case sqlStateCheckViolation:
		return CheckViolation
	case sqlStateStringTooLong:
		return StringTooLong
	case sqlStateNumericOutOfRange:
		return NumericOutOfRange
	default:
		return Other
	}
}

// MapSeverity maps the driver's severity string, defaulting to ERROR.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
