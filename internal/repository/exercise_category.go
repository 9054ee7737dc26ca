package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type ExerciseCategoryRepository interface {
	Create(ctx context.Context, category *entity.ExerciseCategory) error
	GetByID(ctx context.Context, id string) (*entity.ExerciseCategory, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.ExerciseCategory, error)
	UpdateByID(ctx context.Context, id string, category *entity.ExerciseCategory) error
	DeleteByID(ctx context.Context, id string) error
}

type exerciseCategoryRepository struct{}

func NewExerciseCategoryRepository() *exerciseCategoryRepository {
	return &exerciseCategoryRepository{}
}

func (r *exerciseCategoryRepository) Create(ctx context.Context, category *entity.ExerciseCategory) error {
	return xcontext.DB(ctx).Create(category).Error
}

func (r *exerciseCategoryRepository) GetByID(ctx context.Context, id string) (*entity.ExerciseCategory, error) {
	var result entity.ExerciseCategory
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *exerciseCategoryRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.ExerciseCategory, error) {
	var result []entity.ExerciseCategory
	if err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseCategoryRepository) UpdateByID(
	ctx context.Context, id string, category *entity.ExerciseCategory,
) error {
	return xcontext.DB(ctx).Model(&entity.ExerciseCategory{}).
		Where("id=?", id).
		Updates(category).Error
}

func (r *exerciseCategoryRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.ExerciseCategory{}, "id=?", id).Error
}
