package entity

import "time"

// ExerciseTrackPoint records one tracked session of an exercise. Ownership
// is indirect: a track point belongs to whoever owns its exercise.
type ExerciseTrackPoint struct {
	Base
	ExerciseID string   `gorm:"not null;index"`
	Exercise   Exercise `gorm:"foreignKey:ExerciseID"`

	Date        time.Time `gorm:"not null"`
	SetsCount   int       `gorm:"not null"`
	RepsCount   int       `gorm:"not null"`
	Description string
}
