// Package errors provides standardized error handling for the
// recommendation service.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeStoreUnavailable covers candidate-store fetch failures:
	// connectivity, timeout, malformed result. The whole request fails.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// ErrCodeCacheUnavailable covers cache get/set failures. The service
	// absorbs these locally; callers only see added latency.
	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	// ErrCodeInvalidPreference covers request fields that cannot be
	// normalized by clamping (transport-level type errors).
	ErrCodeInvalidPreference ErrorCode = "INVALID_PREFERENCE"

	// ErrCodeEnrichmentFailed covers per-item upstream enrichment failures
	// during ingestion. The affected item falls back to a minimal record.
	ErrCodeEnrichmentFailed ErrorCode = "ENRICHMENT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewStoreUnavailableError creates a retryable candidate-store error.
func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Candidate store query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a cache fault error. It is never
// surfaced to callers; the service logs it and proceeds without the cache.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Result cache operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPreferenceError creates a non-retryable request error.
func NewInvalidPreferenceError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPreference,
		Message:   "Preference request could not be normalized",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnrichmentFailedError creates a per-item ingestion error.
func NewEnrichmentFailedError(term string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEnrichmentFailed,
		Message:   "Upstream product enrichment failed",
		Details:   fmt.Sprintf("term: %s, error: %s", term, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError extracts a *StandardError from an error chain, if any.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsRetryable reports whether the error is a retryable service error.
func IsRetryable(err error) bool {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Retryable
	}
	return false
}

// HasCode reports whether the error carries the given code.
func HasCode(err error, code ErrorCode) bool {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code == code
	}
	return false
}
