package errors

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed error: a stable code plus an operator-facing
// message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError turns a repository error into an ErrorInfo without leaking
// driver internals. context names the record kind ("product", "scent", ...)
// for the message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: fmt.Sprintf("The requested %s was not found", contextOrRecord(context)),
		}
	}

	errStr := strings.ToLower(err.Error())

	// Postgres unique violation (23505); sqlite reports "UNIQUE constraint".
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: fmt.Sprintf("A %s with that identifier already exists", contextOrRecord(context)),
		}
	}

	// Foreign key violation (23503).
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: fmt.Sprintf("The %s is referenced by other records", contextOrRecord(context)),
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: fmt.Sprintf("Could not save the %s. Please try again", contextOrRecord(context)),
	}
}

func contextOrRecord(context string) string {
	if context == "" {
		return "record"
	}
	return context
}
