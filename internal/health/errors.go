package health

import "codeberg.org/veland/wearsyncd/internal/errors"

const (
	// Configuration errors
	ErrInvalidDBPath = errors.ErrorCode("health_invalid_db_path")

	// Storage errors
	ErrStoreInit   = errors.ErrorCode("health_store_init_failed")
	ErrStoreAccess = errors.ErrorCode("health_store_access_failed")
	ErrStoreClose  = errors.ErrShutdownFailed

	// Capability errors
	ErrNotSupported = errors.ErrUnsupportedPlatform
	ErrScopeQuery   = errors.ErrorCode("health_scope_query_failed")
)
