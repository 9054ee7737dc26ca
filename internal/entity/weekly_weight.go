package entity

import "time"

// WeeklyWeight is a derived row: the average of a user's daily weights over
// one ISO week (Monday..Sunday). It is maintained exclusively by the
// aggregator and never written by request handlers directly. One row exists
// per (user, week number, week-based year) with at least one daily entry;
// the row is deleted when its week empties.
type WeeklyWeight struct {
	Base
	UserID string `gorm:"not null;uniqueIndex:idx_weekly_weights_user_week"`
	User   User   `gorm:"foreignKey:UserID"`

	WeekNumber    int       `gorm:"not null;uniqueIndex:idx_weekly_weights_user_week"`
	Year          int       `gorm:"not null;uniqueIndex:idx_weekly_weights_user_week"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	AverageWeight float64   `gorm:"not null"`
}

// ContainsDate reports whether d falls inside [StartDate, EndDate].
func (w WeeklyWeight) ContainsDate(d time.Time) bool {
	return !d.Before(w.StartDate) && !d.After(w.EndDate)
}
