// Package ccerr provides the structured error types used across the
// conversion core. Configuration errors (unsupported cast pairings,
// invalid timezones) are always fatal and surface before any row is
// processed; typecast errors are per-value and subject to the
// column's strict/lenient policy.
package ccerr

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Per-value data errors
	TYPECAST_ERROR = "Typecast Error"

	// Configuration errors
	UNSUPPORTED_TYPE = "Unsupported Type"
	INVALID_TIMEZONE = "Invalid Timezone"

	// Miscellaneous
	INTERNAL_ERROR   = "Internal Error"
	INVALID_ARGUMENT = "Invalid Argument"
)

type JSONStackTrace map[string]interface{}

// Error is the interface every typed ccerr error satisfies. The gRPC
// status bridge lets host integrations forward errors across process
// boundaries without losing the type or the detail metadata.
type Error interface {
	GetCode() codes.Code
	GetType() string
	ToErr() error
	AddDetail(key, value string)
	Error() string
}

func newBaseError(err error, errorType string, code codes.Code) baseError {
	if err == nil {
		err = fmt.Errorf("initial error")
	}
	genericError := NewGenericError(err)

	return baseError{
		code:         code,
		errorType:    errorType,
		GenericError: genericError,
	}
}

type baseError struct {
	code      codes.Code
	errorType string
	GenericError
}

func (e *baseError) GetCode() codes.Code {
	return e.code
}

func (e *baseError) GetType() string {
	return e.errorType
}

func (e *baseError) ToErr() error {
	st := status.New(e.code, e.msg)
	ef := &errdetails.ErrorInfo{
		Reason:   e.errorType,
		Metadata: e.details,
	}
	statusWithDetails, err := st.WithDetails(ef)
	if err == nil {
		return statusWithDetails.Err()
	}
	return st.Err()
}

func (e *baseError) AddDetail(key, value string) {
	e.GenericError.AddDetail(key, value)
}

func (e *baseError) Error() string {
	return e.GenericError.Error()
}
