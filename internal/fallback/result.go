// Package fallback models the outcome of a provider call: either a live
// response parsed from the provider, or a mock substituted from local tables.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// Source tells whether a value came from the provider or from local tables.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Reason explains why a fallback was used.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonMissingCredentials Reason = "missing_credentials"
	ReasonBadStatus          Reason = "bad_status"
	ReasonMalformedPayload   Reason = "malformed_payload"
	ReasonUnreachable        Reason = "unreachable"
	ReasonUnmapped           Reason = "unmapped"
)

// ErrMalformedPayload marks a provider response that could not be used.
var ErrMalformedPayload = errors.New("malformed or empty provider payload")

// StatusError is returned by raw HTTP adapters on a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Result carries a value plus where it came from.
type Result[T any] struct {
	Value  T
	Source Source
	Reason Reason
	Err    error
}

// Live wraps a value parsed from a successful provider call.
func Live[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceLive}
}

// Fallback wraps a mock value. err may be nil (e.g. missing credentials).
func Fallback[T any](v T, reason Reason, err error) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback, Reason: reason, Err: err}
}

func (r Result[T]) IsFallback() bool {
	return r.Source == SourceFallback
}

// Classify maps a provider error onto a fallback reason.
func Classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}

	var statusErr *StatusError
	var googleErr *googleapi.Error
	var openaiErr *openai.APIError
	var requestErr *openai.RequestError
	var netErr net.Error

	switch {
	case errors.Is(err, ErrMalformedPayload):
		return ReasonMalformedPayload
	case errors.As(err, &statusErr), errors.As(err, &googleErr),
		errors.As(err, &openaiErr), errors.As(err, &requestErr):
		return ReasonBadStatus
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		return ReasonUnreachable
	default:
		return ReasonUnreachable
	}
}
