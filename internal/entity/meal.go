package entity

import (
	"database/sql"

	"github.com/tamaliftics/backend/pkg/enum"
)

type MealType string

var (
	MealBreakfast = enum.New(MealType("breakfast"))
	MealLunch     = enum.New(MealType("lunch"))
	MealDinner    = enum.New(MealType("dinner"))
	MealSnacks    = enum.New(MealType("snacks"))
)

type Meal struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Type   MealType       `gorm:"not null"`
	DietID sql.NullString `gorm:"index"`
	Dishes []Dish         `gorm:"many2many:meal_dishes"`
}
