package remote

import "codeberg.org/veland/wearsyncd/internal/errors"

const (
	// Authentication errors
	ErrNotAuthenticated = errors.ErrNotAuthenticated
	ErrSessionExpired   = errors.ErrSessionExpired

	// Transport errors
	ErrUploadFailed   = errors.ErrUploadFailed
	ErrRequestFailed  = errors.ErrRequestFailed
	ErrDecodeResponse = errors.ErrorCode("remote_decode_response_failed")
	ErrEncodeRequest  = errors.ErrorCode("remote_encode_request_failed")
)
