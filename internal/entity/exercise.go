package entity

type Exercise struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name        string `gorm:"not null"`
	Description string
	CategoryID  string           `gorm:"not null;index"`
	Category    ExerciseCategory `gorm:"foreignKey:CategoryID"`

	TrackPoints []ExerciseTrackPoint `gorm:"foreignKey:ExerciseID"`
}
