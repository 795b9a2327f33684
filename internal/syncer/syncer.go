package syncer

import (
	"context"
	"sync"
	"time"

	"codeberg.org/veland/wearsyncd/internal/aggregate"
	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/health"
	"codeberg.org/veland/wearsyncd/internal/journal"
	"codeberg.org/veland/wearsyncd/internal/logger"
	"codeberg.org/veland/wearsyncd/internal/remote"
	"codeberg.org/veland/wearsyncd/internal/source"

	uuid "github.com/satori/go.uuid"
)

// Syncer coordinates one sync cycle: capability guard, concurrent adapter
// fan-out, aggregation, and the batch upload.
type Syncer struct {
	provider   health.Provider
	adapters   []*source.Adapter
	client     remote.Client
	journal    journal.Recorder
	windowDays int
	now        func() time.Time
	background sync.WaitGroup
}

func New(provider health.Provider, adapters []*source.Adapter, client remote.Client,
	recorder journal.Recorder, windowDays int,
) *Syncer {
	return &Syncer{
		provider:   provider,
		adapters:   adapters,
		client:     client,
		journal:    recorder,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Sync runs one full cycle and returns the number of days the server
// accepted. Platform and authentication failures abort before any network or
// store work; per-adapter failures never do.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	errFactory := errors.New()

	cycleID := uuid.NewV4().String()
	startedAt := s.now()

	if !s.provider.Supported() {
		return 0, errFactory.New(ErrUnsupportedPlatform)
	}

	granted, err := s.provider.RequestAuthorization(ctx)
	if err != nil {
		return 0, errFactory.Wrap(ErrPermissionDenied, err)
	}
	if !granted {
		return 0, errFactory.New(ErrPermissionDenied)
	}

	window := aggregate.NewWindow(startedAt, s.windowDays)

	logger.Info().
		Str("cycle_id", cycleID).
		Int("window_days", s.windowDays).
		Msg("starting sync cycle")

	sets := s.fetchAll(ctx, window)

	if ctx.Err() != nil {
		return 0, errFactory.Wrap(ErrSyncAborted, ctx.Err())
	}

	summaries := aggregate.Aggregate(sets, window)

	daysSynced, err := s.client.Upload(ctx, summaries)
	if err != nil {
		s.record(cycleID, startedAt, 0, journal.OutcomeFailed, err)
		return 0, err
	}

	s.record(cycleID, startedAt, daysSynced, journal.OutcomeSynced, nil)

	logger.Info().
		Str("cycle_id", cycleID).
		Int("days_synced", daysSynced).
		Msg("sync cycle complete")

	return daysSynced, nil
}

// fetchAll fires every adapter concurrently over the same window and collects
// the results. Each goroutine owns its own slot; no shared mutable state.
func (s *Syncer) fetchAll(ctx context.Context, window aggregate.Window) map[health.MetricType][]health.Sample {
	results := make([][]health.Sample, len(s.adapters))

	var wg sync.WaitGroup
	for i, adapter := range s.adapters {
		wg.Add(1)
		go func(i int, adapter *source.Adapter) {
			defer wg.Done()
			results[i] = adapter.Fetch(ctx, window)
		}(i, adapter)
	}
	wg.Wait()

	sets := make(map[health.MetricType][]health.Sample, len(s.adapters))
	for i, adapter := range s.adapters {
		sets[adapter.Metric()] = results[i]
	}

	return sets
}

// CheckAndSync asks the staleness gate whether a sync is worth performing.
// When it is, the sync runs in the background and the call returns
// immediately. A gate error means "no sync needed": surprise battery and
// network usage is worse than a delayed sync.
func (s *Syncer) CheckAndSync(ctx context.Context) *remote.SyncCheck {
	cycleID := uuid.NewV4().String()
	startedAt := s.now()

	check, err := s.client.AutoSync(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("staleness check failed, skipping sync")
		s.record(cycleID, startedAt, 0, journal.OutcomeSkipped, err)

		return &remote.SyncCheck{SyncNeeded: false, Reason: "staleness check failed"}
	}

	if !check.SyncNeeded {
		logger.Debug().Str("reason", check.Reason).Msg("sync not needed")
		s.record(cycleID, startedAt, 0, journal.OutcomeSkipped, nil)

		return check
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		if _, err := s.Sync(context.WithoutCancel(ctx)); err != nil {
			logger.Error().Err(err).Msg("background sync failed")
		}
	}()

	return check
}

// Wait blocks until any background sync triggered by CheckAndSync finishes
func (s *Syncer) Wait() {
	s.background.Wait()
}

func (s *Syncer) record(cycleID string, startedAt time.Time, daysSynced int, outcome string, cause error) {
	entry := &journal.Entry{
		ID:         cycleID,
		StartedAt:  startedAt,
		WindowDays: s.windowDays,
		DaysSynced: daysSynced,
		Outcome:    outcome,
	}
	if cause != nil {
		var appErr errors.Error
		if errors.As(cause, &appErr) {
			entry.ErrorCode = string(appErr.Code())
		} else {
			entry.ErrorCode = string(errors.ErrInternal)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.journal.Record(ctx, entry); err != nil {
		logger.Warn().Err(err).Msg("failed to record sync attempt")
	}
}
