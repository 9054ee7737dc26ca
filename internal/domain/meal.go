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

type MealDomain interface {
	Create(ctx context.Context, req *model.CreateMealRequest) (*model.CreateMealResponse, error)
	Update(ctx context.Context, req *model.UpdateMealRequest) (*model.UpdateMealResponse, error)
	Delete(ctx context.Context, req *model.DeleteMealRequest) (*model.DeleteMealResponse, error)
	Get(ctx context.Context, req *model.GetMealRequest) (*model.GetMealResponse, error)
	GetAll(ctx context.Context, req *model.GetMealsRequest) (*model.GetMealsResponse, error)
}

type mealDomain struct {
	mealRepo repository.MealRepository
	dishRepo repository.DishRepository
}

func NewMealDomain(
	mealRepo repository.MealRepository,
	dishRepo repository.DishRepository,
) *mealDomain {
	return &mealDomain{mealRepo: mealRepo, dishRepo: dishRepo}
}

func (d *mealDomain) Create(
	ctx context.Context, req *model.CreateMealRequest,
) (*model.CreateMealResponse, error) {
	mealType, err := enum.ToEnum[entity.MealType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid meal type %s", req.Type)
	}

	dishes, err := d.ownedDishes(ctx, req.DishIDs)
	if err != nil {
		return nil, err
	}

	meal := &entity.Meal{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: xcontext.RequestUserID(ctx),
		Type:   mealType,
		Dishes: dishes,
	}

	if err := d.mealRepo.Create(ctx, meal); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create meal: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateMealResponse{Meal: model.ConvertMeal(meal)}, nil
}

func (d *mealDomain) Update(
	ctx context.Context, req *model.UpdateMealRequest,
) (*model.UpdateMealResponse, error) {
	meal, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		mealType, err := enum.ToEnum[entity.MealType](*req.Type)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid meal type %s", *req.Type)
		}

		meal.Type = mealType
		if err := d.mealRepo.UpdateByID(ctx, meal.ID,
			&entity.Meal{Type: mealType}); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update meal: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.DishIDs != nil {
		dishes, err := d.ownedDishes(ctx, *req.DishIDs)
		if err != nil {
			return nil, err
		}

		if err := d.mealRepo.ReplaceDishes(ctx, meal, dishes); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot replace meal dishes: %v", err)
			return nil, errorx.Unknown
		}

		meal.Dishes = dishes
	}

	return &model.UpdateMealResponse{Meal: model.ConvertMeal(meal)}, nil
}

func (d *mealDomain) Delete(
	ctx context.Context, req *model.DeleteMealRequest,
) (*model.DeleteMealResponse, error) {
	meal, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.mealRepo.DeleteByID(ctx, meal.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete meal: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteMealResponse{}, nil
}

func (d *mealDomain) Get(
	ctx context.Context, req *model.GetMealRequest,
) (*model.GetMealResponse, error) {
	meal, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetMealResponse{Meal: model.ConvertMeal(meal)}, nil
}

func (d *mealDomain) GetAll(
	ctx context.Context, req *model.GetMealsRequest,
) (*model.GetMealsResponse, error) {
	meals, err := d.mealRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get meals: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMealsResponse{Meals: model.ConvertMeals(meals)}, nil
}

func (d *mealDomain) getOwned(ctx context.Context, id string) (*entity.Meal, error) {
	meal, err := d.mealRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found meal")
		}

		xcontext.Logger(ctx).Errorf("Cannot get meal: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, meal.UserID); err != nil {
		return nil, err
	}

	return meal, nil
}

func (d *mealDomain) ownedDishes(ctx context.Context, ids []string) ([]entity.Dish, error) {
	dishes := make([]entity.Dish, 0, len(ids))
	for _, id := range ids {
		dish, err := d.dishRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found dish %s", id)
			}

			xcontext.Logger(ctx).Errorf("Cannot get dish: %v", err)
			return nil, errorx.Unknown
		}

		if err := common.AssertOwned(ctx, dish.UserID); err != nil {
			return nil, err
		}

		dishes = append(dishes, *dish)
	}

	return dishes, nil
}
