package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPetNotFound        = errors.New("pet not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrMemoryNotFound     = errors.New("memory photo not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")

	// ErrMissingAPIKey is the configuration failure for the AI provider.
	// Raised at client construction so generation never dials without a credential.
	ErrMissingAPIKey = errors.New("missing AI provider API key")

	ErrEmptyAIResponse  = errors.New("empty response from AI provider")
	ErrAIServiceTimeout = errors.New("AI provider timed out")
)

// UpstreamError is a non-2xx reply from the AI provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI provider error: %d %s", e.Status, e.Body)
}

// MalformedOutputError means the provider's text held no parseable JSON object.
// Raw keeps the full model output for diagnosis.
type MalformedOutputError struct {
	Raw string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("could not parse JSON from AI output: %s", e.Raw)
}

// NotApplicableError is the provider explicitly rejecting the input
// (e.g. "not a dog photo"), distinct from malformed output.
type NotApplicableError struct {
	Message string
}

func (e *NotApplicableError) Error() string {
	return e.Message
}
