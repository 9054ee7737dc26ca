package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DietRepository interface {
	Create(ctx context.Context, diet *entity.Diet) error
	GetByID(ctx context.Context, id string) (*entity.Diet, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Diet, error)
	SearchByName(ctx context.Context, userID, query string) ([]entity.Diet, error)
	UpdateByID(ctx context.Context, id string, diet *entity.Diet) error
	DeleteByID(ctx context.Context, id string) error
}

type dietRepository struct{}

func NewDietRepository() *dietRepository {
	return &dietRepository{}
}

func (r *dietRepository) Create(ctx context.Context, diet *entity.Diet) error {
	return xcontext.DB(ctx).Create(diet).Error
}

func (r *dietRepository) GetByID(ctx context.Context, id string) (*entity.Diet, error) {
	var result entity.Diet
	if err := xcontext.DB(ctx).
		Preload("Meals.Dishes").
		Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dietRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Diet, error) {
	var result []entity.Diet
	if err := xcontext.DB(ctx).
		Preload("Meals.Dishes").
		Where("user_id=?", userID).
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dietRepository) SearchByName(ctx context.Context, userID, query string) ([]entity.Diet, error) {
	var result []entity.Diet
	if err := xcontext.DB(ctx).
		Preload("Meals.Dishes").
		Where("user_id=? AND name LIKE ?", userID, "%"+query+"%").
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dietRepository) UpdateByID(ctx context.Context, id string, diet *entity.Diet) error {
	return xcontext.DB(ctx).Model(&entity.Diet{}).
		Where("id=?", id).
		Updates(diet).Error
}

func (r *dietRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Diet{}, "id=?", id).Error
}
