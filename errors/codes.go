package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates malformed or unsupported request input:
	// bad filename, unsupported format, oversize file, unknown model,
	// unsupported language, empty content, unrecognized provider token.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeServiceUnavailable indicates the resolved provider has no
	// configured credential and cannot serve requests.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeUpstream indicates the provider call failed or returned an
	// unrecognized response shape.
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"
	// ErrCodeInternal indicates an unexpected internal fault.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeUpstream:           true,
	ErrCodeInvalidArgument:    false,
	ErrCodeInternal:           false,
}

// IsRetryableCode returns true if the error code indicates the caller may
// retry the request later. The service itself never retries upstream calls.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
