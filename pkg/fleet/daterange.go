package fleet

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// DateRange is a pair of civil dates driving trip, eco-event and position
// history queries. Only the year/month/day of each bound is significant.
type DateRange struct {
	From time.Time `groups:"basic"`
	To   time.Time `groups:"basic"`
}

// DefaultDateRange covers the seven days up to and including today.
func DefaultDateRange() DateRange {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return DateRange{
		From: today.AddDate(0, 0, -7),
		To:   today,
	}
}

// QueryWindow converts the civil date pair into the inclusive timestamp
// window sent to the telemetry provider, running from 00:00 on the first
// day to 23:59 on the last.
func (dateRange *DateRange) QueryWindow() (time.Time, time.Time) {
	windowStart := time.Date(
		dateRange.From.Year(), dateRange.From.Month(), dateRange.From.Day(), 0, 0, 0, 0, dateRange.From.Location(),
	)

	// Shift the end date by 1 day, truncate to midnight, then step back a minute to land on 23:59
	nextDayDuration, _ := iso8601.ParseISO8601("P1D")
	dayAfterEnd := nextDayDuration.Shift(dateRange.To)
	dayAfterEnd = time.Date(
		dayAfterEnd.Year(), dayAfterEnd.Month(), dayAfterEnd.Day(), 0, 0, 0, 0, dayAfterEnd.Location(),
	)
	windowEnd := dayAfterEnd.Add(-1 * time.Minute)

	return windowStart, windowEnd
}
