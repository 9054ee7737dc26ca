package entity

import "time"

// DailyWeight is the authoritative record of one weight measurement. There
// is at most one row per (user, date); logging twice on the same date
// updates the existing row. Every mutation must be followed by a weekly
// recomputation, which is the daily-weight domain's responsibility.
type DailyWeight struct {
	Base
	UserID string `gorm:"not null;uniqueIndex:idx_daily_weights_user_date"`
	User   User   `gorm:"foreignKey:UserID"`

	Date   time.Time `gorm:"not null;uniqueIndex:idx_daily_weights_user_date"`
	Weight float64   `gorm:"not null"`
}
