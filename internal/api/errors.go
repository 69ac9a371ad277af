package api

import (
	"errors"
	"fmt"
	"time"
)

// Class partitions client errors for retry decisions: transient failures
// (network, 5xx) are worth retrying, invalid ones (4xx, bad payloads) are
// not.
type Class int

const (
	ClassTransient Class = iota
	ClassInvalid
)

func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error wraps a request failure with its classification and the operation
// that produced it.
type Error struct {
	Op    string
	Class Class
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// transientErr wraps err as a retryable failure of op.
func transientErr(op string, err error) *Error {
	return &Error{Op: op, Class: ClassTransient, Err: err}
}

// invalidErr wraps err as a non-retryable failure of op.
func invalidErr(op string, err error) *Error {
	return &Error{Op: op, Class: ClassInvalid, Err: err}
}

// IsTransient reports whether err is classified as retryable.
func IsTransient(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ClassTransient
	}
	return false
}

// RetryConfig bounds the client's retry loop. MaxRetries counts additional
// attempts beyond the first.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the retry policy used unless overridden.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}
}

// ShouldRetry reports whether another attempt is warranted after err on the
// given zero-based attempt number.
func (rc RetryConfig) ShouldRetry(err error, attempt int) bool {
	if err == nil || attempt >= rc.MaxRetries {
		return false
	}
	return IsTransient(err)
}

// BackoffDelay returns the exponential delay before the given zero-based
// retry attempt, capped at MaxDelay.
func (rc RetryConfig) BackoffDelay(attempt int) time.Duration {
	d := rc.InitialDelay
	for i := 0; i < attempt; i++ {
		d = time.Duration(float64(d) * rc.BackoffFactor)
		if d >= rc.MaxDelay {
			return rc.MaxDelay
		}
	}
	if d > rc.MaxDelay {
		return rc.MaxDelay
	}
	return d
}
