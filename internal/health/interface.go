package health

import (
	"context"
	"time"
)

// Provider is the on-device health store capability. One implementation per
// platform, selected at build time; Unsupported is the no-op fallback.
type Provider interface {
	// Supported reports whether this runtime can supply biometric data at all
	Supported() bool

	// RequestAuthorization performs the single up-front capability request
	// covering every read scope in Scopes. The result is granted/denied for
	// the whole scope set, never per metric.
	RequestAuthorization(ctx context.Context) (bool, error)

	// Samples reads all samples of one metric whose start time falls within
	// the half-open range [start, end). Zero samples is a valid result.
	Samples(ctx context.Context, metric MetricType, start, end time.Time) ([]Sample, error)

	Close() error
}

// MetricType identifies one biometric sample stream
type MetricType string

const (
	MetricSleepStage      MetricType = "sleep_stage"
	MetricHRV             MetricType = "hrv"
	MetricRestingHR       MetricType = "resting_heart_rate"
	MetricSteps           MetricType = "steps"
	MetricActiveEnergy    MetricType = "active_energy"
	MetricRespiratoryRate MetricType = "respiratory_rate"
)

// Scopes lists every read scope the engine negotiates, in a stable order
var Scopes = []MetricType{
	MetricSleepStage,
	MetricHRV,
	MetricRestingHR,
	MetricSteps,
	MetricActiveEnergy,
	MetricRespiratoryRate,
}

// SleepStage classifies a sleep sample
type SleepStage string

const (
	StageDeep  SleepStage = "deep"
	StageREM   SleepStage = "rem"
	StageCore  SleepStage = "core"
	StageAwake SleepStage = "awake"
	// StageAsleep is ungraded legacy data: counted toward total sleep only
	StageAsleep SleepStage = "asleep"
)

// Sample is one raw observation from the health store. Samples are immutable
// and transient: produced fresh per read, consumed once by the aggregator.
type Sample struct {
	Metric MetricType
	Start  time.Time
	End    time.Time
	Value  float64
	Stage  SleepStage // set for sleep samples only
}

// Duration returns the sample duration; zero for instantaneous metrics
func (s Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
