/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a crew query matches no records
	ErrNotFound = errors.New("crew not found")

	// ErrInvalidInput is returned when request parameters fail validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackend is returned when the storage backend call itself fails
	ErrBackend = errors.New("storage backend failure")
)

// BackendKind is a coarse category of storage failure, used for logging.
type BackendKind string

const (
	KindThrottled    BackendKind = "throttled"
	KindAccessDenied BackendKind = "access denied"
	KindMissingTable BackendKind = "missing table"
	KindUnavailable  BackendKind = "unavailable"
	KindTimeout      BackendKind = "timeout"
	KindFailure      BackendKind = "failure"
)

// NotFoundError represents a query that executed but matched zero crew records
type NotFoundError struct {
	MovieID int
	Role    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No crew members found for role %q in movie %d", e.Role, e.MovieID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// BackendError wraps a failed storage call. Operation names the call that failed.
type BackendError struct {
	Operation string
	Kind      BackendKind
	Cause     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Operation, e.Kind, e.Cause)
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func (e *BackendError) Unwrap() error { return e.Cause }

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(movieID int, role string) error {
	return &NotFoundError{MovieID: movieID, Role: role}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBackendError classifies cause and wraps it in a BackendError.
// A nil cause yields nil.
func NewBackendError(operation string, cause error) error {
	if cause == nil {
		return nil
	}
	return &BackendError{Operation: operation, Kind: ClassifyBackend(cause), Cause: cause}
}

// ClassifyBackend maps smithy API error codes and context errors onto a BackendKind.
func ClassifyBackend(err error) BackendKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var api smithy.APIError
	if errors.As(err, &api) {
		switch api.ErrorCode() {
		case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
			return KindThrottled
		case "AccessDeniedException", "UnrecognizedClientException":
			return KindAccessDenied
		case "ResourceNotFoundException":
			return KindMissingTable
		case "InternalServerError", "ServiceUnavailable":
			return KindUnavailable
		}
	}
	return KindFailure
}

// BackendKindOf returns the kind carried by a wrapped BackendError, or "" when err is not one.
func BackendKindOf(err error) BackendKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsBackendError checks if an error is a storage backend error
func IsBackendError(err error) bool {
	return errors.Is(err, ErrBackend)
}
