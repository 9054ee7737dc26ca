package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.Exercise) error
	GetByID(ctx context.Context, id string) (*entity.Exercise, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Exercise, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]entity.Exercise, error)
	SearchByName(ctx context.Context, userID, query string) ([]entity.Exercise, error)
	UpdateByID(ctx context.Context, id string, exercise *entity.Exercise) error
	DeleteByID(ctx context.Context, id string) error
}

type exerciseRepository struct{}

func NewExerciseRepository() *exerciseRepository {
	return &exerciseRepository{}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *entity.Exercise) error {
	return xcontext.DB(ctx).Create(exercise).Error
}

func (r *exerciseRepository) GetByID(ctx context.Context, id string) (*entity.Exercise, error) {
	var result entity.Exercise
	if err := xcontext.DB(ctx).
		Preload("Category").
		Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *exerciseRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Exercise, error) {
	var result []entity.Exercise
	if err := xcontext.DB(ctx).
		Preload("Category").
		Where("user_id=?", userID).
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseRepository) GetByCategoryID(
	ctx context.Context, categoryID string,
) ([]entity.Exercise, error) {
	var result []entity.Exercise
	if err := xcontext.DB(ctx).
		Preload("Category").
		Where("category_id=?", categoryID).
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseRepository) SearchByName(
	ctx context.Context, userID, query string,
) ([]entity.Exercise, error) {
	var result []entity.Exercise
	if err := xcontext.DB(ctx).
		Preload("Category").
		Where("user_id=? AND name LIKE ?", userID, "%"+query+"%").
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseRepository) UpdateByID(
	ctx context.Context, id string, exercise *entity.Exercise,
) error {
	return xcontext.DB(ctx).Model(&entity.Exercise{}).
		Where("id=?", id).
		Updates(exercise).Error
}

func (r *exerciseRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Exercise{}, "id=?", id).Error
}
