// SPDX-License-Identifier: MIT

// Package validate collects every problem found while checking a schema or
// a generator configuration, so a single run reports all of them.
package validate

import (
	"fmt"
	"go/token"
	"os"
	"slices"
	"strings"
)

// Error is one failed check.
type Error struct {
	Field   string // dotted path of the offending value
	Value   any
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ValidationError is returned by Validator.Err when at least one check
// failed.
type ValidationError struct {
	errs []Error
}

// Errors returns the failed checks in the order they were recorded.
func (e ValidationError) Errors() []Error {
	return e.errs
}

func (e ValidationError) Error() string {
	var b strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Validator records failed checks. The zero value is ready to use.
type Validator struct {
	errs []Error
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failed check.
func (v *Validator) AddError(field, message string, value any) {
	v.errs = append(v.errs, Error{Field: field, Value: value, Message: message})
}

func (v *Validator) addf(field string, value any, format string, args ...any) {
	v.AddError(field, fmt.Sprintf(format, args...), value)
}

// IsValid reports whether no check has failed so far.
func (v *Validator) IsValid() bool {
	return len(v.errs) == 0
}

// Errors returns the failed checks recorded so far.
func (v *Validator) Errors() []Error {
	return v.errs
}

// Err returns nil or a ValidationError holding a snapshot of the failed
// checks; later checks do not change it.
func (v *Validator) Err() error {
	if v.IsValid() {
		return nil
	}
	return ValidationError{errs: slices.Clone(v.errs)}
}

// Range checks minVal <= value <= maxVal.
func (v *Validator) Range(field string, value, minVal, maxVal int) {
	if value < minVal || value > maxVal {
		v.addf(field, value, "value must be between %d and %d, got %d", minVal, maxVal, value)
	}
}

// NotEmpty rejects empty and whitespace-only strings.
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// OneOf checks value against a fixed set.
func (v *Validator) OneOf(field, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		v.addf(field, value, "value must be one of %v, got %q", allowed, value)
	}
}

// Identifier checks that value can be used as a Go identifier.
func (v *Validator) Identifier(field, value string) {
	if !token.IsIdentifier(value) {
		v.addf(field, value, "%q is not a valid Go identifier", value)
	}
}

// Unique adds value to seen, failing if it was already present.
func (v *Validator) Unique(field, value string, seen map[string]struct{}) {
	if _, dup := seen[value]; dup {
		v.addf(field, value, "duplicate name %q", value)
		return
	}
	seen[value] = struct{}{}
}

// Custom records the error returned by check, if any.
func (v *Validator) Custom(field string, value any, check func(any) error) {
	if err := check(value); err != nil {
		v.AddError(field, err.Error(), value)
	}
}

// File checks that path names an existing regular file.
func (v *Validator) File(field, path string) {
	if path == "" {
		v.AddError(field, "file path cannot be empty", path)
		return
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		v.addf(field, path, "cannot access file: %v", err)
	case info.IsDir():
		v.AddError(field, "path is a directory, expected file", path)
	}
}
