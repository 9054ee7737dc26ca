package repository

import (
	"context"
	"time"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type WeeklyWeightRepository interface {
	Create(ctx context.Context, weight *entity.WeeklyWeight) error
	GetByID(ctx context.Context, id string) (*entity.WeeklyWeight, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.WeeklyWeight, error)
	GetByWeekAndYear(ctx context.Context, userID string, week, year int) (*entity.WeeklyWeight, error)
	GetByYear(ctx context.Context, userID string, year int) ([]entity.WeeklyWeight, error)
	GetBetweenDates(ctx context.Context, userID string, start, end time.Time) ([]entity.WeeklyWeight, error)
	GetContainingDate(ctx context.Context, userID string, date time.Time) (*entity.WeeklyWeight, error)
	UpdateAverageByID(ctx context.Context, id string, average float64) error
	DeleteByID(ctx context.Context, id string) error
}

type weeklyWeightRepository struct{}

func NewWeeklyWeightRepository() *weeklyWeightRepository {
	return &weeklyWeightRepository{}
}

func (r *weeklyWeightRepository) Create(ctx context.Context, weight *entity.WeeklyWeight) error {
	return xcontext.DB(ctx).Create(weight).Error
}

func (r *weeklyWeightRepository) GetByID(ctx context.Context, id string) (*entity.WeeklyWeight, error) {
	var result entity.WeeklyWeight
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyWeightRepository) GetByUserID(ctx context.Context, userID string) ([]entity.WeeklyWeight, error) {
	var result []entity.WeeklyWeight
	if err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("start_date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *weeklyWeightRepository) GetByWeekAndYear(
	ctx context.Context, userID string, week, year int,
) (*entity.WeeklyWeight, error) {
	var result entity.WeeklyWeight
	if err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND week_number=? AND year=?", userID, week, year).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyWeightRepository) GetByYear(
	ctx context.Context, userID string, year int,
) ([]entity.WeeklyWeight, error) {
	var result []entity.WeeklyWeight
	if err := xcontext.DB(ctx).
		Where("user_id=? AND year=?", userID, year).
		Order("week_number ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetBetweenDates returns aggregates whose whole week lies inside
// [start, end].
func (r *weeklyWeightRepository) GetBetweenDates(
	ctx context.Context, userID string, start, end time.Time,
) ([]entity.WeeklyWeight, error) {
	var result []entity.WeeklyWeight
	if err := xcontext.DB(ctx).
		Where("user_id=? AND start_date>=? AND end_date<=?", userID, start, end).
		Order("start_date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *weeklyWeightRepository) GetContainingDate(
	ctx context.Context, userID string, date time.Time,
) (*entity.WeeklyWeight, error) {
	var result entity.WeeklyWeight
	if err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND start_date<=? AND end_date>=?", userID, date, date).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *weeklyWeightRepository) UpdateAverageByID(
	ctx context.Context, id string, average float64,
) error {
	return xcontext.DB(ctx).Model(&entity.WeeklyWeight{}).
		Where("id=?", id).
		Update("average_weight", average).Error
}

// DeleteByID removes the row for real, so a week that empties and fills
// again can get a fresh aggregate under the (user, week, year) unique index.
func (r *weeklyWeightRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Unscoped().Delete(&entity.WeeklyWeight{}, "id=?", id).Error
}
