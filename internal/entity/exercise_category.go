package entity

type ExerciseCategory struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name        string `gorm:"not null"`
	Description string
}
