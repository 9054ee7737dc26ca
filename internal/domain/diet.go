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
	"github.com/tamaliftics/backend/pkg/enum"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DietDomain interface {
	Create(ctx context.Context, req *model.CreateDietRequest) (*model.CreateDietResponse, error)
	Update(ctx context.Context, req *model.UpdateDietRequest) (*model.UpdateDietResponse, error)
	Delete(ctx context.Context, req *model.DeleteDietRequest) (*model.DeleteDietResponse, error)
	Get(ctx context.Context, req *model.GetDietRequest) (*model.GetDietResponse, error)
	GetAll(ctx context.Context, req *model.GetDietsRequest) (*model.GetDietsResponse, error)
	Search(ctx context.Context, req *model.SearchDietsRequest) (*model.SearchDietsResponse, error)
	GetMeal(ctx context.Context, req *model.GetDietMealRequest) (*model.GetDietMealResponse, error)
}

type dietDomain struct {
	dietRepo repository.DietRepository
	mealRepo repository.MealRepository
}

func NewDietDomain(
	dietRepo repository.DietRepository,
	mealRepo repository.MealRepository,
) *dietDomain {
	return &dietDomain{dietRepo: dietRepo, mealRepo: mealRepo}
}

func (d *dietDomain) Create(
	ctx context.Context, req *model.CreateDietRequest,
) (*model.CreateDietResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a name")
	}

	if err := d.assertOwnedMeals(ctx, req.MealIDs); err != nil {
		return nil, err
	}

	diet := &entity.Diet{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Name:        req.Name,
		Description: req.Description,
	}

	// The diet row and its meal assignments land atomically.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.dietRepo.Create(ctx, diet); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create diet: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.mealRepo.AssignDiet(ctx, req.MealIDs, diet.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot assign meals to diet: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return d.respondCreate(ctx, diet.ID)
}

func (d *dietDomain) Update(
	ctx context.Context, req *model.UpdateDietRequest,
) (*model.UpdateDietResponse, error) {
	diet, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	update := entity.Diet{}
	if req.Name != nil {
		update.Name = *req.Name
	}
	if req.Description != nil {
		update.Description = *req.Description
	}

	if req.Name != nil || req.Description != nil {
		if err := d.dietRepo.UpdateByID(ctx, diet.ID, &update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update diet: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.MealIDs != nil {
		if err := d.assertOwnedMeals(ctx, *req.MealIDs); err != nil {
			return nil, err
		}

		if err := d.mealRepo.ClearDiet(ctx, diet.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot clear diet meals: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.mealRepo.AssignDiet(ctx, *req.MealIDs, diet.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot assign meals to diet: %v", err)
			return nil, errorx.Unknown
		}
	}

	reloaded, err := d.getOwned(ctx, diet.ID)
	if err != nil {
		return nil, err
	}

	return &model.UpdateDietResponse{Diet: model.ConvertDiet(reloaded)}, nil
}

func (d *dietDomain) Delete(
	ctx context.Context, req *model.DeleteDietRequest,
) (*model.DeleteDietResponse, error) {
	diet, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Meals outlive their diet, they just become unassigned.
	if err := d.mealRepo.ClearDiet(ctx, diet.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear diet meals: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.dietRepo.DeleteByID(ctx, diet.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete diet: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteDietResponse{}, nil
}

func (d *dietDomain) Get(
	ctx context.Context, req *model.GetDietRequest,
) (*model.GetDietResponse, error) {
	diet, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetDietResponse{Diet: model.ConvertDiet(diet)}, nil
}

func (d *dietDomain) GetAll(
	ctx context.Context, req *model.GetDietsRequest,
) (*model.GetDietsResponse, error) {
	diets, err := d.dietRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get diets: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDietsResponse{Diets: model.ConvertDiets(diets)}, nil
}

func (d *dietDomain) Search(
	ctx context.Context, req *model.SearchDietsRequest,
) (*model.SearchDietsResponse, error) {
	diets, err := d.dietRepo.SearchByName(ctx, xcontext.RequestUserID(ctx), req.Query)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search diets: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SearchDietsResponse{Diets: model.ConvertDiets(diets)}, nil
}

// GetMeal returns the meal of the given type inside a diet, e.g. the
// breakfast of a cutting diet.
func (d *dietDomain) GetMeal(
	ctx context.Context, req *model.GetDietMealRequest,
) (*model.GetDietMealResponse, error) {
	mealType, err := enum.ToEnum[entity.MealType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid meal type %s", req.Type)
	}

	diet, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	for i := range diet.Meals {
		if diet.Meals[i].Type == mealType {
			return &model.GetDietMealResponse{
				Meal: model.ConvertMeal(&diet.Meals[i]),
			}, nil
		}
	}

	return nil, errorx.New(errorx.NotFound, "The diet has no %s meal", req.Type)
}

func (d *dietDomain) respondCreate(ctx context.Context, id string) (*model.CreateDietResponse, error) {
	diet, err := d.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.CreateDietResponse{Diet: model.ConvertDiet(diet)}, nil
}

func (d *dietDomain) getOwned(ctx context.Context, id string) (*entity.Diet, error) {
	diet, err := d.dietRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found diet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get diet: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, diet.UserID); err != nil {
		return nil, err
	}

	return diet, nil
}

func (d *dietDomain) assertOwnedMeals(ctx context.Context, ids []string) error {
	for _, id := range ids {
		meal, err := d.mealRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.New(errorx.NotFound, "Not found meal %s", id)
			}

			xcontext.Logger(ctx).Errorf("Cannot get meal: %v", err)
			return errorx.Unknown
		}

		if err := common.AssertOwned(ctx, meal.UserID); err != nil {
			return err
		}
	}

	return nil
}
