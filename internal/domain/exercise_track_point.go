package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tamaliftics/backend/internal/common"
	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/dateutil"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type ExerciseTrackPointDomain interface {
	Create(ctx context.Context, req *model.CreateTrackPointRequest) (*model.CreateTrackPointResponse, error)
	Update(ctx context.Context, req *model.UpdateTrackPointRequest) (*model.UpdateTrackPointResponse, error)
	Delete(ctx context.Context, req *model.DeleteTrackPointRequest) (*model.DeleteTrackPointResponse, error)
	Get(ctx context.Context, req *model.GetTrackPointRequest) (*model.GetTrackPointResponse, error)
	GetByExercise(ctx context.Context, req *model.GetTrackPointsByExerciseRequest) (*model.GetTrackPointsByExerciseResponse, error)
}

type exerciseTrackPointDomain struct {
	trackPointRepo repository.ExerciseTrackPointRepository
	exerciseRepo   repository.ExerciseRepository
}

func NewExerciseTrackPointDomain(
	trackPointRepo repository.ExerciseTrackPointRepository,
	exerciseRepo repository.ExerciseRepository,
) *exerciseTrackPointDomain {
	return &exerciseTrackPointDomain{
		trackPointRepo: trackPointRepo,
		exerciseRepo:   exerciseRepo,
	}
}

func (d *exerciseTrackPointDomain) Create(
	ctx context.Context, req *model.CreateTrackPointRequest,
) (*model.CreateTrackPointResponse, error) {
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date")
	}

	if req.SetsCount <= 0 || req.RepsCount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require positive sets and reps counts")
	}

	if _, err := d.ownedExercise(ctx, req.ExerciseID); err != nil {
		return nil, err
	}

	point := &entity.ExerciseTrackPoint{
		Base:        entity.Base{ID: uuid.NewString()},
		ExerciseID:  req.ExerciseID,
		Date:        date,
		SetsCount:   req.SetsCount,
		RepsCount:   req.RepsCount,
		Description: req.Description,
	}

	if err := d.trackPointRepo.Create(ctx, point); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create track point: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateTrackPointResponse{
		TrackPoint: model.ConvertTrackPoint(point),
	}, nil
}

func (d *exerciseTrackPointDomain) Update(
	ctx context.Context, req *model.UpdateTrackPointRequest,
) (*model.UpdateTrackPointResponse, error) {
	point, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := dateutil.ParseDate(*req.Date)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date")
		}

		point.Date = date
	}
	if req.SetsCount != nil {
		if *req.SetsCount <= 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a positive sets count")
		}

		point.SetsCount = *req.SetsCount
	}
	if req.RepsCount != nil {
		if *req.RepsCount <= 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a positive reps count")
		}

		point.RepsCount = *req.RepsCount
	}
	if req.Description != nil {
		point.Description = *req.Description
	}

	if err := d.trackPointRepo.UpdateByID(ctx, point.ID, point); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update track point: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateTrackPointResponse{
		TrackPoint: model.ConvertTrackPoint(point),
	}, nil
}

func (d *exerciseTrackPointDomain) Delete(
	ctx context.Context, req *model.DeleteTrackPointRequest,
) (*model.DeleteTrackPointResponse, error) {
	point, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.trackPointRepo.DeleteByID(ctx, point.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete track point: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteTrackPointResponse{}, nil
}

func (d *exerciseTrackPointDomain) Get(
	ctx context.Context, req *model.GetTrackPointRequest,
) (*model.GetTrackPointResponse, error) {
	point, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetTrackPointResponse{
		TrackPoint: model.ConvertTrackPoint(point),
	}, nil
}

func (d *exerciseTrackPointDomain) GetByExercise(
	ctx context.Context, req *model.GetTrackPointsByExerciseRequest,
) (*model.GetTrackPointsByExerciseResponse, error) {
	if _, err := d.ownedExercise(ctx, req.ExerciseID); err != nil {
		return nil, err
	}

	points, err := d.trackPointRepo.GetByExerciseID(ctx, req.ExerciseID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get track points: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetTrackPointsByExerciseResponse{
		TrackPoints: model.ConvertTrackPoints(points),
	}, nil
}

// getOwned resolves the owner through the parent exercise.
func (d *exerciseTrackPointDomain) getOwned(
	ctx context.Context, id string,
) (*entity.ExerciseTrackPoint, error) {
	point, err := d.trackPointRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found track point")
		}

		xcontext.Logger(ctx).Errorf("Cannot get track point: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.ownedExercise(ctx, point.ExerciseID); err != nil {
		return nil, err
	}

	return point, nil
}

func (d *exerciseTrackPointDomain) ownedExercise(
	ctx context.Context, id string,
) (*entity.Exercise, error) {
	exercise, err := d.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found exercise")
		}

		xcontext.Logger(ctx).Errorf("Cannot get exercise: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, exercise.UserID); err != nil {
		return nil, err
	}

	return exercise, nil
}
