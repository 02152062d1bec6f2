package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	err := WrapError(ErrInvalidConfig, "load config")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("wrapped error should match sentinel")
	}
	if err.Error() != "load config: invalid configuration" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid config", fmt.Errorf("x: %w", ErrInvalidConfig), true},
		{"knowledge", ErrKnowledgeUnavailable, true},
		{"token limit", ErrTokenLimitExceeded, false},
		{"exporter", ErrExporterUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Error("nil should not be retryable")
	}
	if !IsRetryable(WrapError(ErrExporterUnavailable, "otlp")) {
		t.Error("exporter failure should be retryable")
	}
	if IsRetryable(ErrInvalidConfig) {
		t.Error("config error should not be retryable")
	}
}
