package ccerr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       Error
		errorType string
		code      codes.Code
		details   map[string]string
	}{
		{
			"typecast",
			NewTypecastError("amount", "string", "INTEGER", "abc", fmt.Errorf("parse failed")),
			TYPECAST_ERROR,
			codes.InvalidArgument,
			map[string]string{
				"column":           "amount",
				"source_type":      "string",
				"destination_type": "INTEGER",
				"value":            "abc",
			},
		},
		{
			"unsupported type",
			NewUnsupportedTypeError("active", "boolean", "TIMESTAMP", nil),
			UNSUPPORTED_TYPE,
			codes.Unimplemented,
			map[string]string{
				"column":           "active",
				"source_type":      "boolean",
				"destination_type": "TIMESTAMP",
			},
		},
		{
			"invalid timezone",
			NewInvalidTimezoneError("Mars/Phobos", nil),
			INVALID_TIMEZONE,
			codes.InvalidArgument,
			map[string]string{"timezone": "Mars/Phobos"},
		},
		{
			"internal",
			NewInternalErrorf("boom %d", 7),
			INTERNAL_ERROR,
			codes.Internal,
			map[string]string{},
		},
		{
			"invalid argument",
			NewInvalidArgumentError(nil),
			INVALID_ARGUMENT,
			codes.InvalidArgument,
			map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errorType, tt.err.GetType())
			assert.Equal(t, tt.code, tt.err.GetCode())
			assert.NotEmpty(t, tt.err.Error())
			for key, value := range tt.details {
				assert.Contains(t, tt.err.Error(), fmt.Sprintf("%s: %s", key, value))
			}
		})
	}
}

func TestDetails(t *testing.T) {
	err := NewInvalidTimezoneError("Mars/Phobos", nil)
	err.AddDetail("Column Name", "created_at")

	details := err.Details()
	assert.Equal(t, "created_at", details["column_name"], "keys are normalized")
	assert.Equal(t, "Mars/Phobos", details["timezone"])
}

func TestToErrRoundTrip(t *testing.T) {
	original := NewTypecastError("amount", "string", "INTEGER", "abc", fmt.Errorf("parse failed"))

	grpcErr := original.ToErr()
	st, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if errorInfo, ok := detail.(*errdetails.ErrorInfo); ok {
			info = errorInfo
		}
	}
	require.NotNil(t, info)
	assert.Equal(t, TYPECAST_ERROR, info.Reason)
	assert.Equal(t, "amount", info.Metadata["column"])
}

func TestStack(t *testing.T) {
	err := NewInternalError(fmt.Errorf("boom"))
	assert.NotEmpty(t, err.Stack())
}
