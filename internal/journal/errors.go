package journal

import "codeberg.org/veland/wearsyncd/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("journal_invalid_db_path")

	// Storage errors
	ErrStorageAccess = errors.ErrorCode("journal_storage_access_failed")
	ErrStorageInit   = errors.ErrInitFailed
	ErrStorageClose  = errors.ErrShutdownFailed

	// Recording errors
	ErrInvalidEntry     = errors.ErrorCode("journal_invalid_entry")
	ErrOperationTimeout = errors.ErrTimeout
)
