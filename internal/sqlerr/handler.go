package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/starwars-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	uniqueConstraintPattern  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignConstraintPattern = regexp.MustCompile(`_([a-z]+)_id_fkey$`)
	duckDBKeyPattern         = regexp.MustCompile(`key "([a-z_]+?)(?:_id)?:`)
)

// ConvertPgError converts a pgconn.PgError into an Error.
//
// SQLSTATE and severity are mapped onto the package enums; table, column
// and constraint names are kept for message generation.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates an application error code of the form
// <DOMAIN>_<ACTION>, e.g. personaje + ForeignKeyViolation => PERSONAJE_NOT_FOUND.
func generateErrorCode(entity string, errType Code) string {
	if entity == "" {
		entity = "RECORD"
	}

	domain := strings.ToUpper(strings.ReplaceAll(entity, " ", "_"))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for sqlErr.
func formatUserFriendlyMessage(sqlErr *Error, entity string) string {
	entityName := humanizeText(entity)
	if entityName == "" {
		entityName = "record"
	}

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity from table/column data.
//
// A column like "personaje_id" wins over the table name; the table
// name is used as-is since every table in the schema is singular.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return strings.TrimSuffix(strings.ToLower(columnName), "_id")
	}

	if tableName != "" {
		return strings.ToLower(tableName)
	}

	return ""
}

// referencedEntity names the row a foreign key violation points at.
//
// Postgres reports the referencing table, so the constraint name
// (favorito_personaje_personaje_id_fkey) is preferred. DuckDB only
// reports the offending key inside the message text.
func referencedEntity(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return getEntityName("", sqlErr.ColumnName)
	}
	if m := foreignConstraintPattern.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
		return m[1]
	}
	if m := duckDBKeyPattern.FindStringSubmatch(sqlErr.Message); len(m) > 1 && m[1] != "id" {
		return m[1]
	}
	return sqlErr.TableName
}

// humanizeText converts snake_case into Title Case ("color_ojos" -> "Color Ojos").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// Supports "unique_<table>_<column>" and "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - Foreign key violation: 404 <ENTITY>_NOT_FOUND
//   - Unique / not-null / check violation: 400
//   - If ErrNoRows: 404, naming the table when the error carries "table:<name>:"
//   - Otherwise: errs.NewInternalServerError
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if sqlErr := convert(err); sqlErr != nil {
		switch sqlErr.Code {
		case ForeignKeyViolation:
			entity := referencedEntity(sqlErr)
			errorCode := generateErrorCode(entity, sqlErr.Code)
			return errs.NewNotFoundError(formatUserFriendlyMessage(sqlErr, entity), true, &errorCode)

		case UniqueViolation:
			entity := getEntityName(sqlErr.TableName, "")
			errorCode := generateErrorCode(entity, sqlErr.Code)
			userMessage := formatUserFriendlyMessage(sqlErr, entity)
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation:
			entity := getEntityName(sqlErr.TableName, "")
			errorCode := generateErrorCode(entity, sqlErr.Code)
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr, entity), true, &errorCode, fieldErrors)

		case CheckViolation:
			entity := getEntityName(sqlErr.TableName, "")
			errorCode := generateErrorCode(entity, sqlErr.Code)
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr, entity), true, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	// Both pgx and database/sql define ErrNoRows.
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			errorCode := strings.ToUpper(table) + "_NOT_FOUND"
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", humanizeText(table)), true, &errorCode)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
