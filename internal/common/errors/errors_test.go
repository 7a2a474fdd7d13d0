// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_Error(t *testing.T) {
	err := NewStoreUnavailableError(fmt.Errorf("dial tcp: connection refused"))
	assert.Equal(t, "StandardError[STORE_UNAVAILABLE]: Candidate store query failed", err.Error())
	assert.Contains(t, err.Details, "connection refused")
}

func TestRetryability(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"store unavailable retries", NewStoreUnavailableError(fmt.Errorf("down")), true},
		{"cache unavailable retries", NewCacheUnavailableError(fmt.Errorf("down")), true},
		{"invalid preference does not", NewInvalidPreferenceError("bad limit"), false},
		{"enrichment failure does not", NewEnrichmentFailedError("pizza", fmt.Errorf("timeout")), false},
		{"plain error does not", fmt.Errorf("plain"), false},
		{"nil does not", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestAsStandardError_Wrapped(t *testing.T) {
	inner := NewStoreUnavailableError(fmt.Errorf("down"))
	wrapped := fmt.Errorf("recommend hall 42: %w", inner)

	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeStoreUnavailable, stdErr.Code)
	assert.True(t, HasCode(wrapped, ErrCodeStoreUnavailable))
	assert.False(t, HasCode(wrapped, ErrCodeInvalidPreference))
}

func TestAsStandardError_Plain(t *testing.T) {
	_, ok := AsStandardError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
