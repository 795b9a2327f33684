package journal_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/veland/wearsyncd/internal/journal"
	"codeberg.org/veland/wearsyncd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init(false, false, true)
}

func TestRecordAndRecent(t *testing.T) {
	recorder, err := journal.NewService(journal.Config{
		Enabled: true,
		DBPath:  filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)
	defer recorder.Close()

	first := &journal.Entry{
		ID:         "cycle-1",
		StartedAt:  time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC),
		WindowDays: 7,
		DaysSynced: 7,
		Outcome:    journal.OutcomeSynced,
	}
	second := &journal.Entry{
		ID:         "cycle-2",
		StartedAt:  time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC),
		WindowDays: 7,
		Outcome:    journal.OutcomeFailed,
		ErrorCode:  "upload_failed",
	}

	require.NoError(t, recorder.Record(context.Background(), first))
	require.NoError(t, recorder.Record(context.Background(), second))

	entries, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "cycle-2", entries[0].ID, "newest first")
	assert.Equal(t, journal.OutcomeFailed, entries[0].Outcome)
	assert.Equal(t, "upload_failed", entries[0].ErrorCode)
	assert.Equal(t, 7, entries[1].DaysSynced)
}

func TestRecordUpsertsByID(t *testing.T) {
	recorder, err := journal.NewService(journal.Config{
		Enabled: true,
		DBPath:  filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)
	defer recorder.Close()

	entry := &journal.Entry{
		ID:         "cycle-1",
		StartedAt:  time.Now(),
		WindowDays: 7,
		Outcome:    journal.OutcomeFailed,
		ErrorCode:  "upload_failed",
	}
	require.NoError(t, recorder.Record(context.Background(), entry))

	entry.Outcome = journal.OutcomeSynced
	entry.DaysSynced = 7
	entry.ErrorCode = ""
	require.NoError(t, recorder.Record(context.Background(), entry))

	entries, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, journal.OutcomeSynced, entries[0].Outcome)
	assert.Empty(t, entries[0].ErrorCode)
}

func TestRecordRejectsEmptyEntry(t *testing.T) {
	recorder, err := journal.NewService(journal.Config{
		Enabled: true,
		DBPath:  filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)
	defer recorder.Close()

	assert.Error(t, recorder.Record(context.Background(), nil))
	assert.Error(t, recorder.Record(context.Background(), &journal.Entry{}))
}

func TestDisabledJournalIsNoop(t *testing.T) {
	recorder, err := journal.NewService(journal.Config{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, recorder.Record(context.Background(), &journal.Entry{ID: "x"}))

	entries, err := recorder.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnabledJournalRequiresPath(t *testing.T) {
	_, err := journal.NewService(journal.Config{Enabled: true, DBPath: ""})
	assert.Error(t, err)
}
