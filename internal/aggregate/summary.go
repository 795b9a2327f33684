package aggregate

// DailySummary is the per-calendar-date record synced to the backend. Nil
// means "no data observed" for that metric on that date, never zero.
type DailySummary struct {
	Date             string   `json:"date"`
	TotalSleepHours  *float64 `json:"totalSleepHours"`
	DeepSleepHours   *float64 `json:"deepSleepHours"`
	RemSleepHours    *float64 `json:"remSleepHours"`
	CoreSleepHours   *float64 `json:"coreSleepHours"`
	AwakeMinutes     *float64 `json:"awakeMinutes"`
	RestingHeartRate *int     `json:"restingHeartRate"`
	AvgHRV           *int     `json:"avgHRV"`
	RespiratoryRate  *float64 `json:"respiratoryRate"`
	Steps            *int     `json:"steps"`
	ActiveCalories   *int     `json:"activeCalories"`
}
