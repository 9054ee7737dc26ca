package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tamaliftics/backend/internal/common"
	"github.com/tamaliftics/backend/internal/domain/aggregate"
	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/dateutil"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DailyWeightDomain interface {
	Create(ctx context.Context, req *model.CreateDailyWeightRequest) (*model.CreateDailyWeightResponse, error)
	Update(ctx context.Context, req *model.UpdateDailyWeightRequest) (*model.UpdateDailyWeightResponse, error)
	Delete(ctx context.Context, req *model.DeleteDailyWeightRequest) (*model.DeleteDailyWeightResponse, error)
	Get(ctx context.Context, req *model.GetDailyWeightRequest) (*model.GetDailyWeightResponse, error)
	GetAll(ctx context.Context, req *model.GetDailyWeightsRequest) (*model.GetDailyWeightsResponse, error)
	GetInRange(ctx context.Context, req *model.GetDailyWeightsInRangeRequest) (*model.GetDailyWeightsInRangeResponse, error)
}

type dailyWeightDomain struct {
	dailyWeightRepo repository.DailyWeightRepository
	aggregator      *aggregate.Aggregator
}

func NewDailyWeightDomain(
	dailyWeightRepo repository.DailyWeightRepository,
	aggregator *aggregate.Aggregator,
) *dailyWeightDomain {
	return &dailyWeightDomain{
		dailyWeightRepo: dailyWeightRepo,
		aggregator:      aggregator,
	}
}

// Create records a weight for a date. A second entry for the same date
// overwrites the first one instead of creating a duplicate.
func (d *dailyWeightDomain) Create(
	ctx context.Context, req *model.CreateDailyWeightRequest,
) (*model.CreateDailyWeightResponse, error) {
	if req.Weight <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive weight")
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date")
	}

	userID := xcontext.RequestUserID(ctx)
	weight, err := d.dailyWeightRepo.GetByDateAndUser(ctx, userID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get daily weight: %v", err)
		return nil, errorx.Unknown
	}

	if weight != nil {
		if err := d.dailyWeightRepo.UpdateByID(ctx, weight.ID,
			&entity.DailyWeight{Weight: req.Weight}); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update daily weight: %v", err)
			return nil, errorx.Unknown
		}

		weight.Weight = req.Weight
	} else {
		weight = &entity.DailyWeight{
			Base:   entity.Base{ID: uuid.NewString()},
			UserID: userID,
			Date:   date,
			Weight: req.Weight,
		}

		if err := d.dailyWeightRepo.Create(ctx, weight); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create daily weight: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.aggregator.Recompute(ctx, userID, date); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot recompute weekly weight: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateDailyWeightResponse{
		DailyWeight: model.ConvertDailyWeight(weight),
	}, nil
}

func (d *dailyWeightDomain) Update(
	ctx context.Context, req *model.UpdateDailyWeightRequest,
) (*model.UpdateDailyWeightResponse, error) {
	weight, err := d.dailyWeightRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found daily weight")
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily weight: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, weight.UserID); err != nil {
		return nil, err
	}

	oldDate := weight.Date
	update := entity.DailyWeight{}

	if req.Weight != nil {
		if *req.Weight <= 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a positive weight")
		}

		update.Weight = *req.Weight
		weight.Weight = *req.Weight
	}

	if req.Date != nil {
		newDate, err := dateutil.ParseDate(*req.Date)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date")
		}

		update.Date = newDate
		weight.Date = newDate
	}

	// The entry and both touched aggregates move in one transaction, so a
	// failed recompute never leaves the weekly rows behind the daily ones.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.dailyWeightRepo.UpdateByID(ctx, weight.ID, &update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update daily weight: %v", err)
		return nil, errorx.Unknown
	}

	// The old week first, so a date moved across a week boundary leaves no
	// stale aggregate behind.
	if err := d.aggregator.Recompute(ctx, weight.UserID, oldDate); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot recompute weekly weight: %v", err)
		return nil, errorx.Unknown
	}

	if !weight.Date.Equal(oldDate) {
		if err := d.aggregator.Recompute(ctx, weight.UserID, weight.Date); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot recompute weekly weight: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.UpdateDailyWeightResponse{
		DailyWeight: model.ConvertDailyWeight(weight),
	}, nil
}

// Delete removes an entry and refreshes its week.
func (d *dailyWeightDomain) Delete(
	ctx context.Context, req *model.DeleteDailyWeightRequest,
) (*model.DeleteDailyWeightResponse, error) {
	weight, err := d.dailyWeightRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found daily weight")
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily weight: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, weight.UserID); err != nil {
		return nil, err
	}

	if err := d.dailyWeightRepo.DeleteByID(ctx, weight.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete daily weight: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.aggregator.Recompute(ctx, weight.UserID, weight.Date); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot recompute weekly weight: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteDailyWeightResponse{}, nil
}

func (d *dailyWeightDomain) Get(
	ctx context.Context, req *model.GetDailyWeightRequest,
) (*model.GetDailyWeightResponse, error) {
	weight, err := d.dailyWeightRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found daily weight")
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily weight: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, weight.UserID); err != nil {
		return nil, err
	}

	return &model.GetDailyWeightResponse{
		DailyWeight: model.ConvertDailyWeight(weight),
	}, nil
}

func (d *dailyWeightDomain) GetAll(
	ctx context.Context, req *model.GetDailyWeightsRequest,
) (*model.GetDailyWeightsResponse, error) {
	weights, err := d.dailyWeightRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get daily weights: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDailyWeightsResponse{
		DailyWeights: model.ConvertDailyWeights(weights),
	}, nil
}

func (d *dailyWeightDomain) GetInRange(
	ctx context.Context, req *model.GetDailyWeightsInRangeRequest,
) (*model.GetDailyWeightsInRangeResponse, error) {
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

	weights, err := d.dailyWeightRepo.GetBetweenDates(
		ctx, xcontext.RequestUserID(ctx), start, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get daily weights: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDailyWeightsInRangeResponse{
		DailyWeights: model.ConvertDailyWeights(weights),
	}, nil
}
