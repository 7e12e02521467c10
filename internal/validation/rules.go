// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sealedfields/internal/errors"
)

var (
	// emailRegex is the same syntax class the host platform applies to email fields.
	// Placeholders are built to satisfy it.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// recordIDRegex accepts the record identifiers the host platform generates.
	recordIDRegex = regexp.MustCompile(`^[A-Za-z0-9._\-]{1,100}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// RecipientList validates a ';' or ',' separated list of email addresses.
var RecipientList = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, part := range SplitRecipients(s) {
			if !emailRegex.MatchString(part) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_recipient_list", "must be a list of valid email addresses"),
)

// RecordID validates a record identifier.
var RecordID = validation.NewStringRuleWithError(
	func(s string) bool {
		return recordIDRegex.MatchString(s)
	},
	validation.NewError("validation_record_id", "must be a valid record identifier"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// SplitRecipients splits a recipient header value on ';' and ',' and drops
// empty elements.
func SplitRecipients(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
