package entity

type Diet struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Meals       []Meal `gorm:"foreignKey:DietID"`
}
