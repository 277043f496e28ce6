// Package apierror defines the structured error taxonomy exposed by the
// HTTP API. Every failure that reaches a caller is either one of these
// errors or is flattened to a generic internal error.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API-facing error with an HTTP status and a stable code.
type Error struct {
	// Status is the HTTP status code to respond with.
	Status int

	// Code is the machine-readable error code (e.g. "invalid_param").
	Code string

	// Message is the human-readable description.
	Message string

	// RetryAfter is the number of seconds until a rate-limited caller
	// may retry. Zero for all other error kinds.
	RetryAfter int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
}

// New creates an API error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// InvalidParam reports a missing or malformed request parameter.
func InvalidParam(message string) *Error {
	return New(http.StatusBadRequest, "invalid_param", message)
}

// UnsupportedLeague reports a league outside the supported registry.
func UnsupportedLeague(league int) *Error {
	return New(http.StatusBadRequest, "unsupported_league",
		fmt.Sprintf("League %d is not supported", league))
}

// InvalidSeason reports a season before the league's first recorded one.
func InvalidSeason(season int, leagueName string) *Error {
	return New(http.StatusBadRequest, "invalid_season",
		fmt.Sprintf("Season %d is not supported for %s", season, leagueName))
}

// RateLimited reports an exhausted rate-limit window.
func RateLimited(retryAfter int) *Error {
	return &Error{
		Status:     http.StatusTooManyRequests,
		Code:       "rate_limited",
		Message:    "Too many requests",
		RetryAfter: retryAfter,
	}
}

// As unwraps err into an *Error if one is in its chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
