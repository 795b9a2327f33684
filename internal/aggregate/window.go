package aggregate

import "time"

// DateLayout is the calendar-day key used for bucketing and for the wire format
const DateLayout = "2006-01-02"

// Window is an explicit calendar-day range ending at End (inclusive). It is
// passed into every function that needs "today" so aggregation stays pure.
type Window struct {
	End  time.Time
	Days int
}

// NewWindow anchors a window of days calendar days ending on the day of now
func NewWindow(now time.Time, days int) Window {
	return Window{End: startOfDay(now), Days: days}
}

// Start returns midnight of the first day in the window
func (w Window) Start() time.Time {
	return w.End.AddDate(0, 0, -(w.Days - 1))
}

// Range returns the half-open sample fetch range covering the whole window
func (w Window) Range() (start, end time.Time) {
	return w.Start(), w.End.AddDate(0, 0, 1)
}

// Dates returns every calendar-day key in the window in ascending order
func (w Window) Dates() []string {
	dates := make([]string, 0, w.Days)
	for d := w.Start(); !d.After(w.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}

	return dates
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
