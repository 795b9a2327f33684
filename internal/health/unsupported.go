package health

import (
	"context"
	"time"

	"codeberg.org/veland/wearsyncd/internal/errors"
)

// unsupportedProvider is the fallback for platforms without a health bridge
type unsupportedProvider struct{}

// NewUnsupportedProvider returns a Provider whose Supported always reports
// false. Callers are expected to short-circuit before any fetch.
func NewUnsupportedProvider() Provider {
	return &unsupportedProvider{}
}

func (*unsupportedProvider) Supported() bool {
	return false
}

func (*unsupportedProvider) RequestAuthorization(_ context.Context) (bool, error) {
	return false, errors.New().New(ErrNotSupported)
}

func (*unsupportedProvider) Samples(_ context.Context, _ MetricType, _, _ time.Time) ([]Sample, error) {
	return nil, errors.New().New(ErrNotSupported)
}

func (*unsupportedProvider) Close() error {
	return nil
}
