package errors

import "github.com/pkg/errors"

// ErrorTracer pairs a message with an underlying error that carries a
// stack trace. It is the type usecases return upward so the logger can
// surface where a failure originated.
type ErrorTracer struct {
	Message string
	Err     error
}

// StackTracer is implemented by errors that expose a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// NewTracer creates an ErrorTracer with the provided message and no cause.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError wraps an existing error, capturing a stack trace at the
// call site unless the error already carries one.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// Wrap attaches err as the cause, adding a stack trace if it has none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	if _, ok := err.(StackTracer); ok {
		e.Err = err
	} else {
		e.Err = errors.WithStack(err)
	}
	return e
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack trace of the underlying error, or nil if the
// tracer has no cause with a stack.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if withStack, ok := e.Err.(StackTracer); ok {
		return withStack.StackTrace()
	}
	return nil
}
