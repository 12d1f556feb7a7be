// Package errors defines the application-level error taxonomy.
// Callers outside this module map these onto their own transport; within
// the module they are matched by identity via errors.Is.
package errors

import (
	"net/http"

	"faithcompanion/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"email already registered",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username already taken",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DEACTIVATED",
		"account is deactivated",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or tampered session token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet strength requirements",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"profile not found",
		"",
	)

	ErrPreferencesNotFound = NewBaseError(
		http.StatusNotFound,
		"PREFERENCES_NOT_FOUND",
		"preferences not found",
		"",
	)

	// Scripture-related errors
	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"unrecognized scripture reference",
		"",
	)

	ErrVerseNotFound = NewBaseError(
		http.StatusNotFound,
		"VERSE_NOT_FOUND",
		"verse text not available",
		"",
	)

	ErrTranslationNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSLATION_NOT_FOUND",
		"translation not available",
		"",
	)

	// Learning-content errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"reading plan not found",
		"",
	)

	ErrProgressNotFound = NewBaseError(
		http.StatusNotFound,
		"PROGRESS_NOT_FOUND",
		"no progress recorded for this plan",
		"",
	)

	ErrReadingNotFound = NewBaseError(
		http.StatusNotFound,
		"READING_NOT_FOUND",
		"no reading assigned for this day",
		"",
	)

	ErrStudyGuideNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDY_GUIDE_NOT_FOUND",
		"study guide not found",
		"",
	)

	ErrDevotionalNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVOTIONAL_NOT_FOUND",
		"devotional not found",
		"",
	)
)
