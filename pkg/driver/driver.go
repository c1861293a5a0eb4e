// Package driver dispatches work to runners. A Driver knows how to tell one
// kind of runner to start or cancel an execution; the Gateway owns retries,
// failure finalization and the async dispatch goroutines.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/baton-ci/baton/ent"
)

// ErrorKind classifies a dispatch failure for the retry policy.
type ErrorKind string

const (
	// KindBadRequest: the runner rejected the payload. Retrying the same
	// payload cannot succeed.
	KindBadRequest ErrorKind = "bad_request"

	// KindUnauthorized: the runner rejected our credentials.
	KindUnauthorized ErrorKind = "unauthorized"

	// KindUnavailable: the runner answered but cannot take work right now.
	KindUnavailable ErrorKind = "unavailable"

	// KindTransient: no usable answer (network error, timeout, 5xx).
	KindTransient ErrorKind = "transient"
)

// Error is a classified dispatch failure.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt could succeed. Unclassified
// errors are treated as transient.
func Retryable(err error) bool {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind == KindUnavailable || derr.Kind == KindTransient
	}
	return true
}

func badRequest(msg string, err error) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg, Err: err}
}

func unauthorized(msg string, err error) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg, Err: err}
}

func unavailable(msg string, err error) *Error {
	return &Error{Kind: KindUnavailable, Msg: msg, Err: err}
}

func transient(msg string, err error) *Error {
	return &Error{Kind: KindTransient, Msg: msg, Err: err}
}

// Request carries everything a driver needs to address one runner about one
// execution.
type Request struct {
	Execution *ent.Execution
	Runner    *ent.Runner

	// CallbackURL is the full runner-webhook endpoint of this server.
	CallbackURL string

	// Token is the bearer token the runner must present on that endpoint.
	Token string
}

// Driver starts and cancels executions on one class of runner. Both calls
// must honor ctx and classify failures as *Error.
type Driver interface {
	// Type is the runner type this driver serves (e.g. "docker").
	Type() string

	Start(ctx context.Context, req Request) error

	// Cancel is best-effort: the execution is already terminal in the Store
	// when it is called.
	Cancel(ctx context.Context, req Request) error
}
