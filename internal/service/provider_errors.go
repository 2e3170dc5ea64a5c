package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrEmptyMessage       = errors.New("message is required")
	ErrModelNotConfigured = errors.New("model provider credential is not configured")
	ErrQuotaExceeded      = errors.New("model provider quota exceeded")
	ErrProviderFailure    = errors.New("model provider call failed")
)

// ProviderError carries the HTTP status a model provider answered with, when known.
type ProviderError struct {
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider error: %v", e.Err)
	}
	return fmt.Sprintf("provider error (status %d): %v", e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type ProviderErrorClass int

const (
	ProviderErrorGeneric ProviderErrorClass = iota
	ProviderErrorQuota
)

func (c ProviderErrorClass) String() string {
	if c == ProviderErrorQuota {
		return "quota"
	}
	return "generic"
}

var quotaMarkers = []string{"429", "quota", "rate limit", "resource_exhausted", "resource exhausted"}

// ClassifyProviderError decides whether a provider failure means "try again later".
// A 429 status wins; otherwise the message is matched case-insensitively.
func ClassifyProviderError(statusCode int, message string) ProviderErrorClass {
	if statusCode == http.StatusTooManyRequests {
		return ProviderErrorQuota
	}
	lower := strings.ToLower(message)
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return ProviderErrorQuota
		}
	}
	return ProviderErrorGeneric
}

// classifyError applies ClassifyProviderError to any error, pulling the status
// code out of a wrapped *ProviderError.
func classifyError(err error) ProviderErrorClass {
	var pe *ProviderError
	status := 0
	if errors.As(err, &pe) {
		status = pe.StatusCode
	}
	return ClassifyProviderError(status, err.Error())
}
