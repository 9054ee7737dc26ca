package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	GetByID(ctx context.Context, id string) (*entity.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.WorkoutPlan, error)
	GetByType(ctx context.Context, userID string, planType entity.WorkoutPlanType) (*entity.WorkoutPlan, error)
	UpdateByID(ctx context.Context, id string, plan *entity.WorkoutPlan) error
	ReplaceExercises(ctx context.Context, plan *entity.WorkoutPlan, exercises []entity.Exercise) error
	DeleteByID(ctx context.Context, id string) error
}

type workoutPlanRepository struct{}

func NewWorkoutPlanRepository() *workoutPlanRepository {
	return &workoutPlanRepository{}
}

func (r *workoutPlanRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	return xcontext.DB(ctx).Create(plan).Error
}

func (r *workoutPlanRepository) GetByID(ctx context.Context, id string) (*entity.WorkoutPlan, error) {
	var result entity.WorkoutPlan
	if err := xcontext.DB(ctx).
		Preload("Exercises").
		Preload("Exercises.Category").
		Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *workoutPlanRepository) GetByUserID(ctx context.Context, userID string) ([]entity.WorkoutPlan, error) {
	var result []entity.WorkoutPlan
	if err := xcontext.DB(ctx).
		Preload("Exercises").
		Preload("Exercises.Category").
		Where("user_id=?", userID).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *workoutPlanRepository) GetByType(
	ctx context.Context, userID string, planType entity.WorkoutPlanType,
) (*entity.WorkoutPlan, error) {
	var result entity.WorkoutPlan
	if err := xcontext.DB(ctx).
		Preload("Exercises").
		Preload("Exercises.Category").
		Take(&result, "user_id=? AND type=?", userID, planType).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *workoutPlanRepository) UpdateByID(
	ctx context.Context, id string, plan *entity.WorkoutPlan,
) error {
	return xcontext.DB(ctx).Model(&entity.WorkoutPlan{}).
		Where("id=?", id).
		Updates(plan).Error
}

func (r *workoutPlanRepository) ReplaceExercises(
	ctx context.Context, plan *entity.WorkoutPlan, exercises []entity.Exercise,
) error {
	return xcontext.DB(ctx).Model(plan).Association("Exercises").Replace(exercises)
}

func (r *workoutPlanRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.WorkoutPlan{}, "id=?", id).Error
}
