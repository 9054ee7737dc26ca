package entity

import "github.com/tamaliftics/backend/pkg/enum"

type WorkoutPlanType string

var (
	PlanPushAndPull1 = enum.New(WorkoutPlanType("push_and_pull_1"))
	PlanPushAndPull2 = enum.New(WorkoutPlanType("push_and_pull_2"))
	PlanLegs1        = enum.New(WorkoutPlanType("legs_1"))
	PlanLegs2        = enum.New(WorkoutPlanType("legs_2"))
	PlanAbs          = enum.New(WorkoutPlanType("abs"))
)

type DayOfWeek string

var (
	Monday    = enum.New(DayOfWeek("monday"))
	Tuesday   = enum.New(DayOfWeek("tuesday"))
	Wednesday = enum.New(DayOfWeek("wednesday"))
	Thursday  = enum.New(DayOfWeek("thursday"))
	Friday    = enum.New(DayOfWeek("friday"))
	Saturday  = enum.New(DayOfWeek("saturday"))
	Sunday    = enum.New(DayOfWeek("sunday"))
)

type WorkoutPlan struct {
	Base
	UserID string `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	Type        WorkoutPlanType `gorm:"not null"`
	Day         DayOfWeek       `gorm:"not null"`
	Description string
	Exercises   []Exercise `gorm:"many2many:workout_plan_exercises"`
}
