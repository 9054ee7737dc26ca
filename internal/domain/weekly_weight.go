package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tamaliftics/backend/internal/common"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/dateutil"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

// WeeklyWeightDomain is a read-only surface. Weekly rows are written by the
// aggregator alone.
type WeeklyWeightDomain interface {
	Get(ctx context.Context, req *model.GetWeeklyWeightRequest) (*model.GetWeeklyWeightResponse, error)
	GetAll(ctx context.Context, req *model.GetWeeklyWeightsRequest) (*model.GetWeeklyWeightsResponse, error)
	GetByYear(ctx context.Context, req *model.GetWeeklyWeightsByYearRequest) (*model.GetWeeklyWeightsByYearResponse, error)
	GetInRange(ctx context.Context, req *model.GetWeeklyWeightsInRangeRequest) (*model.GetWeeklyWeightsInRangeResponse, error)
	GetForDate(ctx context.Context, req *model.GetWeeklyWeightForDateRequest) (*model.GetWeeklyWeightForDateResponse, error)
}

type weeklyWeightDomain struct {
	weeklyWeightRepo repository.WeeklyWeightRepository
}

func NewWeeklyWeightDomain(weeklyWeightRepo repository.WeeklyWeightRepository) *weeklyWeightDomain {
	return &weeklyWeightDomain{weeklyWeightRepo: weeklyWeightRepo}
}

func (d *weeklyWeightDomain) Get(
	ctx context.Context, req *model.GetWeeklyWeightRequest,
) (*model.GetWeeklyWeightResponse, error) {
	weight, err := d.weeklyWeightRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found weekly weight")
		}

		xcontext.Logger(ctx).Errorf("Cannot get weekly weight: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, weight.UserID); err != nil {
		return nil, err
	}

	return &model.GetWeeklyWeightResponse{
		WeeklyWeight: model.ConvertWeeklyWeight(weight),
	}, nil
}

func (d *weeklyWeightDomain) GetAll(
	ctx context.Context, req *model.GetWeeklyWeightsRequest,
) (*model.GetWeeklyWeightsResponse, error) {
	weights, err := d.weeklyWeightRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get weekly weights: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetWeeklyWeightsResponse{
		WeeklyWeights: model.ConvertWeeklyWeights(weights),
	}, nil
}

func (d *weeklyWeightDomain) GetByYear(
	ctx context.Context, req *model.GetWeeklyWeightsByYearRequest,
) (*model.GetWeeklyWeightsByYearResponse, error) {
	weights, err := d.weeklyWeightRepo.GetByYear(ctx, xcontext.RequestUserID(ctx), req.Year)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get weekly weights: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetWeeklyWeightsByYearResponse{
		WeeklyWeights: model.ConvertWeeklyWeights(weights),
	}, nil
}

func (d *weeklyWeightDomain) GetInRange(
	ctx context.Context, req *model.GetWeeklyWeightsInRangeRequest,
) (*model.GetWeeklyWeightsInRangeResponse, error) {
	start, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid start date")
	}

	end, err := dateutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid end date")
	}

	if end.Before(start) {
		return nil, errorx.New(errorx.BadRequest, "The end date is before the start date")
	}

	weights, err := d.weeklyWeightRepo.GetBetweenDates(
		ctx, xcontext.RequestUserID(ctx), start, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get weekly weights: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetWeeklyWeightsInRangeResponse{
		WeeklyWeights: model.ConvertWeeklyWeights(weights),
	}, nil
}

func (d *weeklyWeightDomain) GetForDate(
	ctx context.Context, req *model.GetWeeklyWeightForDateRequest,
) (*model.GetWeeklyWeightForDateResponse, error) {
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date")
	}

	weight, err := d.weeklyWeightRepo.GetContainingDate(ctx, xcontext.RequestUserID(ctx), date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "No weekly weight contains this date")
		}

		xcontext.Logger(ctx).Errorf("Cannot get weekly weight: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetWeeklyWeightForDateResponse{
		WeeklyWeight: model.ConvertWeeklyWeight(weight),
	}, nil
}
