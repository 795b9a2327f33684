package aggregate

import (
	"math"

	"codeberg.org/veland/wearsyncd/internal/health"
)

// Aggregate folds the per-metric sample sets into one DailySummary per
// calendar day in the window, in ascending date order. A summary exists for
// every day even when every field is nil. Pure: no clock, no I/O, and
// idempotent over the same inputs.
func Aggregate(sets map[health.MetricType][]health.Sample, window Window) []DailySummary {
	sleep := foldSleep(sets[health.MetricSleepStage])
	hrv := reduceByDate(sets[health.MetricHRV], mean)
	restingHR := reduceByDate(sets[health.MetricRestingHR], mean)
	respiratory := reduceByDate(sets[health.MetricRespiratoryRate], mean)
	steps := reduceByDate(sets[health.MetricSteps], sum)
	energy := reduceByDate(sets[health.MetricActiveEnergy], sum)

	dates := window.Dates()
	summaries := make([]DailySummary, 0, len(dates))
	for _, date := range dates {
		s := DailySummary{Date: date}

		if day, ok := sleep[date]; ok {
			total := day.deep + day.rem + day.core + day.unstaged
			s.TotalSleepHours = floatPtr(total)
			if day.deep > 0 {
				s.DeepSleepHours = floatPtr(day.deep)
			}
			if day.rem > 0 {
				s.RemSleepHours = floatPtr(day.rem)
			}
			if day.core > 0 {
				s.CoreSleepHours = floatPtr(day.core)
			}
			if day.awakeMinutes > 0 {
				s.AwakeMinutes = floatPtr(day.awakeMinutes)
			}
		}

		if v, ok := hrv[date]; ok {
			s.AvgHRV = roundPtr(v)
		}
		if v, ok := restingHR[date]; ok {
			s.RestingHeartRate = roundPtr(v)
		}
		if v, ok := respiratory[date]; ok {
			s.RespiratoryRate = floatPtr(round1(v))
		}
		if v, ok := steps[date]; ok {
			s.Steps = roundPtr(v)
		}
		if v, ok := energy[date]; ok {
			s.ActiveCalories = roundPtr(v)
		}

		summaries = append(summaries, s)
	}

	return summaries
}

// reducer collapses all of one day's sample values into a single number
type reducer func(values []float64) float64

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}

	return total
}

func mean(values []float64) float64 {
	return sum(values) / float64(len(values))
}

// reduceByDate buckets samples by the calendar date of their start timestamp
// and applies the reducer per bucket. Dates without samples are absent from
// the result, which is what keeps nil distinct from zero downstream.
func reduceByDate(samples []health.Sample, reduce reducer) map[string]float64 {
	buckets := make(map[string][]float64)
	for _, s := range samples {
		date := s.Start.Format(DateLayout)
		buckets[date] = append(buckets[date], s.Value)
	}

	out := make(map[string]float64, len(buckets))
	for date, values := range buckets {
		out[date] = reduce(values)
	}

	return out
}

// sleepDay is the categorical-sum bucket for one date's sleep samples
type sleepDay struct {
	deep         float64
	rem          float64
	core         float64
	unstaged     float64
	awakeMinutes float64
}

// foldSleep classifies sleep samples by stage, keyed by the calendar date of
// the sample's start time. A session that crosses midnight is attributed
// entirely to the evening the user went to bed.
func foldSleep(samples []health.Sample) map[string]sleepDay {
	days := make(map[string]sleepDay)
	for _, s := range samples {
		date := s.Start.Format(DateLayout)
		hours := s.End.Sub(s.Start).Hours()

		day := days[date]
		switch s.Stage {
		case health.StageDeep:
			day.deep += hours
		case health.StageREM:
			day.rem += hours
		case health.StageCore:
			day.core += hours
		case health.StageAwake:
			// awake time never counts toward total sleep
			day.awakeMinutes += hours * 60
		default:
			day.unstaged += hours
		}
		days[date] = day
	}

	return days
}

func floatPtr(v float64) *float64 {
	return &v
}

func roundPtr(v float64) *int {
	i := int(math.Round(v))
	return &i
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
