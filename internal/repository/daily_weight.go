package repository

import (
	"context"
	"time"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DailyWeightRepository interface {
	Create(ctx context.Context, weight *entity.DailyWeight) error
	GetByID(ctx context.Context, id string) (*entity.DailyWeight, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.DailyWeight, error)
	GetByDateAndUser(ctx context.Context, userID string, date time.Time) (*entity.DailyWeight, error)
	GetBetweenDates(ctx context.Context, userID string, start, end time.Time) ([]entity.DailyWeight, error)
	UpdateByID(ctx context.Context, id string, weight *entity.DailyWeight) error
	DeleteByID(ctx context.Context, id string) error
}

type dailyWeightRepository struct{}

func NewDailyWeightRepository() *dailyWeightRepository {
	return &dailyWeightRepository{}
}

func (r *dailyWeightRepository) Create(ctx context.Context, weight *entity.DailyWeight) error {
	return xcontext.DB(ctx).Create(weight).Error
}

func (r *dailyWeightRepository) GetByID(ctx context.Context, id string) (*entity.DailyWeight, error) {
	var result entity.DailyWeight
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyWeightRepository) GetByUserID(ctx context.Context, userID string) ([]entity.DailyWeight, error) {
	var result []entity.DailyWeight
	if err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyWeightRepository) GetByDateAndUser(
	ctx context.Context, userID string, date time.Time,
) (*entity.DailyWeight, error) {
	var result entity.DailyWeight
	if err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND date=?", userID, date).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// GetBetweenDates returns entries whose date falls in [start, end], both ends
// inclusive, ordered by date.
func (r *dailyWeightRepository) GetBetweenDates(
	ctx context.Context, userID string, start, end time.Time,
) ([]entity.DailyWeight, error) {
	var result []entity.DailyWeight
	if err := xcontext.DB(ctx).
		Where("user_id=? AND date>=? AND date<=?", userID, start, end).
		Order("date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyWeightRepository) UpdateByID(
	ctx context.Context, id string, weight *entity.DailyWeight,
) error {
	return xcontext.DB(ctx).Model(&entity.DailyWeight{}).
		Where("id=?", id).
		Updates(weight).Error
}

// DeleteByID removes the row for real. A soft-deleted row would keep its
// slot in the (user, date) unique index and block re-logging that date.
func (r *dailyWeightRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Unscoped().Delete(&entity.DailyWeight{}, "id=?", id).Error
}
