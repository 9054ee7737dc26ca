package migration

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

// Migrate brings the database schema up to date with the entity definitions.
func Migrate(ctx context.Context) error {
	err := xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.DailyWeight{},
		&entity.WeeklyWeight{},
		&entity.Dish{},
		&entity.Meal{},
		&entity.Diet{},
		&entity.ExerciseCategory{},
		&entity.Exercise{},
		&entity.ExerciseTrackPoint{},
		&entity.WorkoutPlan{},
	)
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Database migration completed")
	return nil
}
