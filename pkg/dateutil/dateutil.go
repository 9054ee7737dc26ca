// Package dateutil handles the calendar-date and ISO-week arithmetic shared
// by the weight tracking domains. Dates are timezone-naive: every value is
// normalized to midnight UTC so that two entries logged for the same
// calendar day always compare equal.
package dateutil

import "time"

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Date truncates t to its calendar date at midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the ISO-8601 week number and week-based year of t. Weeks
// run Monday to Sunday and week 1 is the week containing January 4th, so
// the week-based year can differ from the calendar year around new year.
func WeekOf(t time.Time) (week, year int) {
	year, week = t.ISOWeek()
	return week, year
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = Date(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// EndOfWeek returns the Sunday of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}
