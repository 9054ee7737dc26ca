package entity

type Dish struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name        string `gorm:"not null"`
	Description string
	Calories    float64
	Carbs       float64
	Fat         float64
	Protein     float64
}
