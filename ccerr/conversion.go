package ccerr

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// NewTypecastError reports a single value that could not be cast to
// its column's destination type. Under a strict column policy this
// aborts the run; under a lenient policy the caller substitutes null
// and emits a diagnostic instead of returning it.
func NewTypecastError(column, sourceType, destType string, value any, err error) *TypecastError {
	if err == nil {
		err = fmt.Errorf("cannot cast value")
	}
	baseError := newBaseError(err, TYPECAST_ERROR, codes.InvalidArgument)
	baseError.AddDetail("column", column)
	baseError.AddDetail("source_type", sourceType)
	baseError.AddDetail("destination_type", destType)
	baseError.AddDetail("value", fmt.Sprintf("%v", value))

	return &TypecastError{
		baseError,
	}
}

type TypecastError struct {
	baseError
}

// NewUnsupportedTypeError reports a (source, destination) pairing the
// conversion matrix has no cell for. Detected at construction time,
// before any row is processed.
func NewUnsupportedTypeError(column, sourceType, destType string, err error) *UnsupportedTypeError {
	if err == nil {
		err = fmt.Errorf("unsupported type pairing")
	}
	baseError := newBaseError(err, UNSUPPORTED_TYPE, codes.Unimplemented)
	baseError.AddDetail("column", column)
	baseError.AddDetail("source_type", sourceType)
	baseError.AddDetail("destination_type", destType)

	return &UnsupportedTypeError{
		baseError,
	}
}

type UnsupportedTypeError struct {
	baseError
}

// NewInvalidTimezoneError reports a timezone specification that is
// neither a numeric offset nor a resolvable named zone. Always a
// fatal configuration error, never subject to the strict flag.
func NewInvalidTimezoneError(timezone string, err error) *InvalidTimezoneError {
	if err == nil {
		err = fmt.Errorf("invalid timezone")
	}
	baseError := newBaseError(err, INVALID_TIMEZONE, codes.InvalidArgument)
	baseError.AddDetail("timezone", timezone)

	return &InvalidTimezoneError{
		baseError,
	}
}

type InvalidTimezoneError struct {
	baseError
}
