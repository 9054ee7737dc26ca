package repository

import (
	"context"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	GetByID(ctx context.Context, id string) (*entity.Dish, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Dish, error)
	SearchByName(ctx context.Context, userID, query string) ([]entity.Dish, error)
	UpdateByID(ctx context.Context, id string, dish *entity.Dish) error
	DeleteByID(ctx context.Context, id string) error
}

type dishRepository struct{}

func NewDishRepository() *dishRepository {
	return &dishRepository{}
}

func (r *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	return xcontext.DB(ctx).Create(dish).Error
}

func (r *dishRepository) GetByID(ctx context.Context, id string) (*entity.Dish, error) {
	var result entity.Dish
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dishRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Dish, error) {
	var result []entity.Dish
	if err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dishRepository) SearchByName(ctx context.Context, userID, query string) ([]entity.Dish, error) {
	var result []entity.Dish
	if err := xcontext.DB(ctx).
		Where("user_id=? AND name LIKE ?", userID, "%"+query+"%").
		Order("name ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dishRepository) UpdateByID(ctx context.Context, id string, dish *entity.Dish) error {
	return xcontext.DB(ctx).Model(&entity.Dish{}).
		Where("id=?", id).
		Updates(dish).Error
}

func (r *dishRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Dish{}, "id=?", id).Error
}
