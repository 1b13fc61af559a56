package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/pkg/metrics"
)

// Failure is returned when a call failed without a usable message. Its text
// is the operation's fixed fallback; the cause, if any, stays reachable via
// errors.Is/As.
type Failure struct {
	Op      string
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// serverError is implemented by the API client's HTTP error type.
type serverError interface {
	error
	HTTPStatus() int
	ServerMessage() string
}

// caller carries what every service call logs and measures under.
type caller struct {
	service string
	log     zerolog.Logger
}

func newCaller(service string, log zerolog.Logger) caller {
	return caller{service: service, log: log.With().Str("service", service).Logger()}
}

// call runs fn with the shared call contract: a debug line before dispatch,
// an error line on failure, metrics, and error normalization. Errors are
// returned verbatim unless they carry no message of their own (a server error
// with an empty body, or a panic with a non-error value), in which case the
// fixed fallback message is used.
func call[T any](ctx context.Context, c caller, op, fallback string, fn func(context.Context) (T, error)) (out T, err error) {
	c.log.Debug().Str("op", op).Msg("dispatching request")
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = &Failure{Op: op, Message: fallback}
			}
		}
		err = normalize(op, fallback, err)
		metrics.ObserveServiceCall(c.service, op, start, err)
		if err != nil {
			c.log.Error().Err(err).Str("op", op).Msg("request failed")
		}
	}()

	return fn(ctx)
}

// exec is call for operations that return nothing on success.
func exec(ctx context.Context, c caller, op, fallback string, fn func(context.Context) error) error {
	_, err := call(ctx, c, op, fallback, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func normalize(op, fallback string, err error) error {
	if err == nil {
		return nil
	}
	var se serverError
	if errors.As(err, &se) && se.ServerMessage() == "" && se.HTTPStatus() != http.StatusUnauthorized {
		return &Failure{Op: op, Message: fallback, Err: err}
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func code(p *int32) int {
	if p == nil {
		return 0
	}
	return int(*p)
}

func timeOf(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
