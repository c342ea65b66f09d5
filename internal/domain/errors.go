package domain

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)

// Validation codes shared with API clients.
const (
	CodeInvalid        = "invalid"
	CodeEmptyOrder     = "empty order"
	CodeMixedFlight    = "mixed-flight order"
	CodeSeatOutOfRange = "seat-out-of-range"
)

// ValidationError reports malformed input. Fields maps a request field to a
// human readable message and may be empty.
type ValidationError struct {
	Code   string
	Fields map[string]string
}

func NewValidationError(code string, fields map[string]string) *ValidationError {
	return &ValidationError{Code: code, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Code
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Code + ": " + strings.Join(parts, "; ")
}

// ConflictError means the request was well formed but collides with
// committed state. It matches ErrConflict under errors.Is.
type ConflictError struct {
	Code string
}

func (e *ConflictError) Error() string { return e.Code }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

var (
	ErrSeatAlreadyBooked = &ConflictError{Code: "seat-already-booked"}
	ErrSeatHeld          = &ConflictError{Code: "seat-is-being-booked"}
	ErrOrderAlreadyPaid  = &ConflictError{Code: "order-already-paid"}
)

// NotFoundError names the missing resource. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Resource string
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// fieldErrors collects per-field messages while validating an entity.
type fieldErrors map[string]string

func (f fieldErrors) required(field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		f[field] = "this field may not be blank"
		return
	}
	f.maxLen(field, value, max)
}

func (f fieldErrors) maxLen(field, value string, max int) {
	if len(value) > max {
		f[field] = "ensure this field has no more than " + strconv.Itoa(max) + " characters"
	}
}

func (f fieldErrors) positiveID(field string, id int64) {
	if id <= 0 {
		f[field] = "this field is required"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(CodeInvalid, f)
}
