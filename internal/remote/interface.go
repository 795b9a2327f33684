package remote

import (
	"context"

	"codeberg.org/veland/wearsyncd/internal/aggregate"
)

// Client talks to the wearable endpoints of the backend. Every call requires
// the bearer token; a missing token short-circuits locally without a network
// round trip.
type Client interface {
	// Upload pushes one batch of daily summaries and returns the number of
	// days the server accepted. The server upserts per date; the client never
	// retries individual days.
	Upload(ctx context.Context, summaries []aggregate.DailySummary) (int, error)

	// Status returns the connection state and the rolling week summary
	Status(ctx context.Context) (*Status, error)

	// Summary returns the rolling 7-day aggregate
	Summary(ctx context.Context) (*WeekSummary, error)

	// AutoSync asks the backend whether a sync is worth performing. Only the
	// backend knows the last successful sync timestamp.
	AutoSync(ctx context.Context) (*SyncCheck, error)

	// Disconnect invalidates the stored device linkage server-side
	Disconnect(ctx context.Context) error
}

// SyncCheck is the staleness gate's answer
type SyncCheck struct {
	SyncNeeded bool   `json:"syncNeeded"`
	Reason     string `json:"reason"`
}

// Status mirrors GET /apple-watch/status
type Status struct {
	Connected   bool         `json:"connected"`
	WeekSummary *WeekSummary `json:"weekSummary,omitempty"`
}

// WeekSummary is the backend's rolling 7-day aggregate
type WeekSummary struct {
	AvgSleep      float64 `json:"avgSleep"`
	AvgReadiness  float64 `json:"avgReadiness"`
	AvgHRV        float64 `json:"avgHRV"`
	AvgSteps      float64 `json:"avgSteps"`
	AvgRestingHR  float64 `json:"avgRestingHR"`
	DataAvailable bool    `json:"dataAvailable"`
}
