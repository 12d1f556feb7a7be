// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"faithcompanion/internal/domain/entity"
	domainerrors "faithcompanion/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for usecase inputs.
// Custom rules are registered once at package init.
var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// username: alphanumeric with underscores.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	// reminder_time: 24-hour "HH:MM".
	_ = v.RegisterValidation("reminder_time", func(fl validator.FieldLevel) bool {
		return isValidClockTime(fl.Field().String())
	})

	// theme: member of the closed theme set.
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return entity.Theme(fl.Field().String()).IsValid()
	})

	// plan_type: member of the closed plan type set.
	_ = v.RegisterValidation("plan_type", func(fl validator.FieldLevel) bool {
		return entity.PlanType(fl.Field().String()).IsValid()
	})

	return v
}

// validateInput runs struct validation and maps failures onto the
// domain validation error.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

// isValidClockTime reports whether s is a "HH:MM" time between 00:00 and 23:59.
func isValidClockTime(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// checkPasswordStrength enforces the rules validator tags cannot express:
// at least one uppercase letter, one lowercase letter and one digit.
func checkPasswordStrength(password string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must contain an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}
