package syncer

import "codeberg.org/veland/wearsyncd/internal/errors"

const (
	// Platform / capability errors
	ErrUnsupportedPlatform = errors.ErrUnsupportedPlatform
	ErrPermissionDenied    = errors.ErrPermissionDenied

	// Sync errors
	ErrSyncAborted = errors.ErrSyncAborted
)
