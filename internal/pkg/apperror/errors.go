package apperror

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed or empty input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks an unknown session, restaurant or user (HTTP 404).
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	if e.Id == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.Id)
}

// ForbiddenError marks an ownership mismatch (HTTP 403).
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// UnauthorizedError marks missing or bad credentials (HTTP 401).
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, Id: id}
}

func Forbidden(message string) error {
	return &ForbiddenError{Message: message}
}

func Unauthorized(message string) error {
	return &UnauthorizedError{Message: message}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
