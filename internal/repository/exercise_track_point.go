package repository

import (
	"context"
	"time"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type ExerciseTrackPointRepository interface {
	Create(ctx context.Context, point *entity.ExerciseTrackPoint) error
	GetByID(ctx context.Context, id string) (*entity.ExerciseTrackPoint, error)
	GetByExerciseID(ctx context.Context, exerciseID string) ([]entity.ExerciseTrackPoint, error)
	GetBetweenDates(ctx context.Context, exerciseID string, start, end time.Time) ([]entity.ExerciseTrackPoint, error)
	UpdateByID(ctx context.Context, id string, point *entity.ExerciseTrackPoint) error
	DeleteByID(ctx context.Context, id string) error
}

type exerciseTrackPointRepository struct{}

func NewExerciseTrackPointRepository() *exerciseTrackPointRepository {
	return &exerciseTrackPointRepository{}
}

func (r *exerciseTrackPointRepository) Create(ctx context.Context, point *entity.ExerciseTrackPoint) error {
	return xcontext.DB(ctx).Create(point).Error
}

func (r *exerciseTrackPointRepository) GetByID(
	ctx context.Context, id string,
) (*entity.ExerciseTrackPoint, error) {
	var result entity.ExerciseTrackPoint
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *exerciseTrackPointRepository) GetByExerciseID(
	ctx context.Context, exerciseID string,
) ([]entity.ExerciseTrackPoint, error) {
	var result []entity.ExerciseTrackPoint
	if err := xcontext.DB(ctx).
		Where("exercise_id=?", exerciseID).
		Order("date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseTrackPointRepository) GetBetweenDates(
	ctx context.Context, exerciseID string, start, end time.Time,
) ([]entity.ExerciseTrackPoint, error) {
	var result []entity.ExerciseTrackPoint
	if err := xcontext.DB(ctx).
		Where("exercise_id=? AND date>=? AND date<=?", exerciseID, start, end).
		Order("date ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *exerciseTrackPointRepository) UpdateByID(
	ctx context.Context, id string, point *entity.ExerciseTrackPoint,
) error {
	return xcontext.DB(ctx).Model(&entity.ExerciseTrackPoint{}).
		Where("id=?", id).
		Updates(point).Error
}

func (r *exerciseTrackPointRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.ExerciseTrackPoint{}, "id=?", id).Error
}
