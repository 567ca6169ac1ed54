package utils

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrRateLimited          = errors.New("ai service rate limited")
	ErrAIServiceUnavailable = errors.New("ai service unavailable")
	ErrMalformedPlan        = errors.New("malformed plan response")
	ErrExportFailed         = errors.New("export failed")
)

// IsRateLimitSignal reports whether an upstream error looks like a quota or
// rate-limit rejection. The Gemini free tier surfaces these as HTTP 429 or
// a RESOURCE_EXHAUSTED status string rather than a typed error.
func IsRateLimitSignal(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "rate limit")
}
