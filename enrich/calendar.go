package enrich

import (
	"fmt"
	"time"

	"echo-analytics/etl"
	"echo-analytics/models"
)

// DeriveCalendarFields expands a canonical publish timestamp into its
// calendar parts. Only fails on a timestamp that is not in the canonical
// layout.
func DeriveCalendarFields(publishDateTime string) (models.CalendarFields, error) {
	ts, err := time.Parse(etl.CanonicalTimeLayout, publishDateTime)
	if err != nil {
		return models.CalendarFields{}, fmt.Errorf("derive calendar fields: %w", err)
	}

	dateType := "Weekday"
	if ts.Weekday() == time.Saturday || ts.Weekday() == time.Sunday {
		dateType = "Weekend"
	}

	return models.CalendarFields{
		FormattedDate: ts.Format("02-01-2006"),
		FormattedTime: ts.Format("15:04:05"),
		DayOfMonth:    ts.Day(),
		Month:         int(ts.Month()),
		Year:          ts.Year(),
		DayOfWeek:     ts.Format("Mon"),
		WeekNumber:    fmt.Sprintf("%02d", weekNumber(ts)),
		DateType:      dateType,
		Hour24Format:  ts.Format("15"),
		Hour12Format:  ts.Format("03"),
		Minute:        ts.Format("04"),
		AMPM:          ts.Format("PM"),
	}, nil
}

// weekNumber counts Sunday-first weeks of the year, with the days before the
// first Sunday in week 0 (strftime %U).
func weekNumber(ts time.Time) int {
	return (ts.YearDay() + 6 - int(ts.Weekday())) / 7
}
