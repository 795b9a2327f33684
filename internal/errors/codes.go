package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidWindow   ErrorCode = "invalid_window"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"
	ErrAlreadyRunning ErrorCode = "already_running"

	// Platform / capability errors
	ErrUnsupportedPlatform ErrorCode = "unsupported_platform"
	ErrPermissionDenied    ErrorCode = "permission_denied"
	ErrSourceUnavailable   ErrorCode = "source_unavailable"

	// Authentication errors
	ErrNotAuthenticated ErrorCode = "not_authenticated"
	ErrSessionExpired   ErrorCode = "session_expired"

	// Sync errors
	ErrUploadFailed  ErrorCode = "upload_failed"
	ErrRequestFailed ErrorCode = "request_failed"
	ErrSyncAborted   ErrorCode = "sync_aborted"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrTimeout          ErrorCode = "operation_timeout"
	ErrInvalidOperation ErrorCode = "invalid_operation"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:            "Internal error occurred",
	ErrInvalidArgument:     "Invalid argument provided",
	ErrNotImplemented:      "Operation not implemented",
	ErrUnavailable:         "Service unavailable",
	ErrInvalidConfig:       "Invalid configuration",
	ErrMissingConfig:       "Missing configuration",
	ErrBindFlags:           "Failed to bind flags",
	ErrReadConfig:          "Failed to read configuration",
	ErrInvalidWindow:       "Invalid sync window",
	ErrInvalidLogLevel:     "Invalid log level",
	ErrInitFailed:          "Initialization failed",
	ErrShutdownFailed:      "Shutdown failed",
	ErrAlreadyRunning:      "Another instance is already running",
	ErrUnsupportedPlatform: "Biometric source unavailable on this platform",
	ErrPermissionDenied:    "Health data read access was declined",
	ErrSourceUnavailable:   "Sample source unavailable",
	ErrNotAuthenticated:    "No credential available",
	ErrSessionExpired:      "Session expired, re-authentication required",
	ErrUploadFailed:        "Batch upload failed",
	ErrRequestFailed:       "Request to backend failed",
	ErrSyncAborted:         "Sync aborted",
	ErrOperationFailed:     "Operation failed",
	ErrTimeout:             "Operation timed out",
	ErrInvalidOperation:    "Invalid operation",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
