// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// It is used in the service layer, never in storage code.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
)

var (
	// hexColorRegex matches a six-digit CSS hex color such as "#aabbcc".
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// ErrInvalidForm is returned when a form-encoded body cannot be parsed.
	ErrInvalidForm = apperr.ValidationError("Invalid form payload")
)

// Validator collects field-level validation errors via a fluent API.
//
// Not safe for concurrent use; create one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the rune count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the rune count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Length fails if the rune count is outside [min, max]. At most one error is recorded.
func (v *Validator) Length(field, value string, min, max int) *Validator {
	count := utf8.RuneCountInString(value)
	if count < min || count > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d characters", min, max))
	}
	return v
}

// HexColor fails unless value is a "#rrggbb" color.
func (v *Validator) HexColor(field, value string) *Validator {
	if !hexColorRegex.MatchString(value) {
		v.add(field, "Must be a hex color like #aabbcc")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
//	v.Custom("color", len(c) == 4, "Short hex colors are not supported")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rule failed, nil otherwise.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
