package infeed

import (
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// AlignCalendar shifts every measured bucket by whole days so that the
// first measured record falls on the same calendar day as the first
// forecast record. The sample data drops use different nominal dates for
// measurements and forecasts; without this shift the join would be empty.
//
// Known limitation: the offset is anchored on the first record of each
// side only, so inputs spanning multiple days are shifted uniformly by
// a single offset. Returns the applied offset in days.
func AlignCalendar(measured []model.MeasuredInterval, forecasts []model.ForecastRecord, loc *time.Location) ([]model.MeasuredInterval, int) {
	if len(measured) == 0 || len(forecasts) == 0 {
		return measured, 0
	}

	target := civilDate(forecasts[0].DeliveryStart, loc)
	current := civilDate(measured[0].DeliveryStart, loc)
	days := int(target.Sub(current).Hours() / 24)
	if days == 0 {
		return measured, 0
	}

	shifted := make([]model.MeasuredInterval, len(measured))
	for i, m := range measured {
		m.DeliveryStart = m.DeliveryStart.In(loc).AddDate(0, 0, days)
		shifted[i] = m
	}
	return shifted, days
}

// civilDate returns t's local calendar date, pinned to UTC so that
// subtracting two dates yields whole days. Pinning to loc instead would
// make the difference come up an hour short across a DST transition and
// truncate to one day too few.
func civilDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
