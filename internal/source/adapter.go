package source

import (
	"context"
	"time"

	"codeberg.org/veland/wearsyncd/internal/aggregate"
	"codeberg.org/veland/wearsyncd/internal/health"
	"codeberg.org/veland/wearsyncd/internal/logger"
)

// Adapter reads one metric's raw samples for a time window. Failures and
// timeouts degrade to an empty result so one unavailable metric never blocks
// aggregation of the others.
type Adapter struct {
	metric   health.MetricType
	provider health.Provider
	timeout  time.Duration
}

func NewAdapter(metric health.MetricType, provider health.Provider, timeout time.Duration) *Adapter {
	return &Adapter{
		metric:   metric,
		provider: provider,
		timeout:  timeout,
	}
}

// NewAdapters builds one adapter per negotiated read scope
func NewAdapters(provider health.Provider, timeout time.Duration) []*Adapter {
	adapters := make([]*Adapter, 0, len(health.Scopes))
	for _, metric := range health.Scopes {
		adapters = append(adapters, NewAdapter(metric, provider, timeout))
	}

	return adapters
}

// Metric returns the metric type this adapter reads
func (a *Adapter) Metric() health.MetricType {
	return a.metric
}

// Fetch reads all samples in the window's half-open range. A store error or a
// timeout is logged and yields an empty slice, never an error: partial data is
// always preferable to blocking the whole sync.
func (a *Adapter) Fetch(ctx context.Context, window aggregate.Window) []health.Sample {
	fetchCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start, end := window.Range()

	samples, err := a.provider.Samples(fetchCtx, a.metric, start, end)
	if err != nil {
		logger.Warn().
			Str("metric", string(a.metric)).
			Err(err).
			Msg("sample source unavailable, continuing without it")

		return nil
	}

	return samples
}
