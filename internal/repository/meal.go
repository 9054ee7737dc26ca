package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type MealRepository interface {
	Create(ctx context.Context, meal *entity.Meal) error
	GetByID(ctx context.Context, id string) (*entity.Meal, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Meal, error)
	GetByDietID(ctx context.Context, dietID string) ([]entity.Meal, error)
	UpdateByID(ctx context.Context, id string, meal *entity.Meal) error
	ReplaceDishes(ctx context.Context, meal *entity.Meal, dishes []entity.Dish) error
	AssignDiet(ctx context.Context, mealIDs []string, dietID string) error
	ClearDiet(ctx context.Context, dietID string) error
	DeleteByID(ctx context.Context, id string) error
}

type mealRepository struct{}

func NewMealRepository() *mealRepository {
	return &mealRepository{}
}

func (r *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	return xcontext.DB(ctx).Create(meal).Error
}

func (r *mealRepository) GetByID(ctx context.Context, id string) (*entity.Meal, error) {
	var result entity.Meal
	if err := xcontext.DB(ctx).
		Preload("Dishes").
		Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mealRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Meal, error) {
	var result []entity.Meal
	if err := xcontext.DB(ctx).
		Preload("Dishes").
		Where("user_id=?", userID).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *mealRepository) GetByDietID(ctx context.Context, dietID string) ([]entity.Meal, error) {
	var result []entity.Meal
	if err := xcontext.DB(ctx).
		Preload("Dishes").
		Where("diet_id=?", dietID).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *mealRepository) UpdateByID(ctx context.Context, id string, meal *entity.Meal) error {
	return xcontext.DB(ctx).Model(&entity.Meal{}).
		Where("id=?", id).
		Updates(meal).Error
}

func (r *mealRepository) ReplaceDishes(
	ctx context.Context, meal *entity.Meal, dishes []entity.Dish,
) error {
	return xcontext.DB(ctx).Model(meal).Association("Dishes").Replace(dishes)
}

func (r *mealRepository) AssignDiet(ctx context.Context, mealIDs []string, dietID string) error {
	if len(mealIDs) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Meal{}).
		Where("id IN (?)", mealIDs).
		Update("diet_id", dietID).Error
}

func (r *mealRepository) ClearDiet(ctx context.Context, dietID string) error {
	return xcontext.DB(ctx).Model(&entity.Meal{}).
		Where("diet_id=?", dietID).
		Update("diet_id", nil).Error
}

func (r *mealRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Meal{}, "id=?", id).Error
}
