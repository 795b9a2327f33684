package journal

import (
	"context"

	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/logger"
)

type service struct {
	repo Repository
	cfg  Config
}

// No-op implementation
type noopRecorder struct{}

func NewService(cfg Config) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	// If the journal is disabled, return a no-op recorder
	if !cfg.Enabled {
		logger.Debug().Msg("Sync journal disabled, using no-op recorder")
		return &noopRecorder{}, nil
	}

	repo, err := NewRepository(cfg)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to create journal repository")
		return nil, err
	}

	logger.Debug().
		Str("db_path", cfg.DBPath).
		Msg("Sync journal initialized")

	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

func (s *service) Record(ctx context.Context, entry *Entry) error {
	errFactory := errors.New()

	if entry == nil || entry.ID == "" {
		return errFactory.New(ErrInvalidEntry)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
		return s.repo.Store(ctx, entry)
	}
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *service) Close() error {
	errFactory := errors.New()

	if err := s.repo.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	return nil
}

func (*noopRecorder) Record(_ context.Context, _ *Entry) error {
	return nil
}

func (*noopRecorder) Recent(_ context.Context, _ int) ([]Entry, error) {
	return nil, nil
}

func (*noopRecorder) Close() error {
	return nil
}
