package errors

import stderrors "errors"

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// InvalidOperation represents an arithmetic or conversion error, e.g. a
	// division by zero or a malformed decimal string. Always fatal to the
	// current call and never retried internally.
	InvalidOperation ErrorCode = "invalid_operation"
	// MissingAsset represents an asset lookup miss. Expected and non-fatal:
	// pipelines translate it into a nil result rather than an error.
	MissingAsset ErrorCode = "missing_asset"
	// MissingOrderbook represents an orderbook lookup miss for a pair.
	// Expected and non-fatal, same treatment as MissingAsset.
	MissingOrderbook ErrorCode = "missing_orderbook"
	// InconsistentOrderSet represents an order set spanning more than one
	// maker or taker asset where a single market was required. Signals a
	// caller bug and is raised hard.
	InconsistentOrderSet ErrorCode = "inconsistent_order_set"
	// TransportFailure represents a failed collaborator call (relayer or
	// node). Propagates unchanged; recovery policy belongs to the caller.
	TransportFailure ErrorCode = "transport_failure"

	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
)

// DomainError is an `error` carrying an ErrorCode alongside a human message
// and an optional cause.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewDomainError creates a DomainError with the given code and message.
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WithCause attaches an underlying error and returns the receiver.
func (e *DomainError) WithCause(err error) *DomainError {
	e.Err = err
	return e
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from err, walking the wrap chain. Errors
// without a DomainError in their chain map to GeneralInternalServerError.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return GeneralInternalServerError
}

// HasCode checks whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
