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
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

type DishDomain interface {
	Create(ctx context.Context, req *model.CreateDishRequest) (*model.CreateDishResponse, error)
	Update(ctx context.Context, req *model.UpdateDishRequest) (*model.UpdateDishResponse, error)
	Delete(ctx context.Context, req *model.DeleteDishRequest) (*model.DeleteDishResponse, error)
	Get(ctx context.Context, req *model.GetDishRequest) (*model.GetDishResponse, error)
	GetAll(ctx context.Context, req *model.GetDishesRequest) (*model.GetDishesResponse, error)
	Search(ctx context.Context, req *model.SearchDishesRequest) (*model.SearchDishesResponse, error)
}

type dishDomain struct {
	dishRepo repository.DishRepository
}

func NewDishDomain(dishRepo repository.DishRepository) *dishDomain {
	return &dishDomain{dishRepo: dishRepo}
}

func (d *dishDomain) Create(
	ctx context.Context, req *model.CreateDishRequest,
) (*model.CreateDishResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a name")
	}

	dish := &entity.Dish{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Name:        req.Name,
		Description: req.Description,
		Calories:    req.Calories,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Protein:     req.Protein,
	}

	if err := d.dishRepo.Create(ctx, dish); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create dish: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateDishResponse{Dish: model.ConvertDish(dish)}, nil
}

func (d *dishDomain) Update(
	ctx context.Context, req *model.UpdateDishRequest,
) (*model.UpdateDishResponse, error) {
	dish, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Calories != nil {
		dish.Calories = *req.Calories
	}
	if req.Carbs != nil {
		dish.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		dish.Fat = *req.Fat
	}
	if req.Protein != nil {
		dish.Protein = *req.Protein
	}

	if err := d.dishRepo.UpdateByID(ctx, dish.ID, dish); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update dish: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateDishResponse{Dish: model.ConvertDish(dish)}, nil
}

func (d *dishDomain) Delete(
	ctx context.Context, req *model.DeleteDishRequest,
) (*model.DeleteDishResponse, error) {
	dish, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.dishRepo.DeleteByID(ctx, dish.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete dish: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteDishResponse{}, nil
}

func (d *dishDomain) Get(
	ctx context.Context, req *model.GetDishRequest,
) (*model.GetDishResponse, error) {
	dish, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetDishResponse{Dish: model.ConvertDish(dish)}, nil
}

func (d *dishDomain) GetAll(
	ctx context.Context, req *model.GetDishesRequest,
) (*model.GetDishesResponse, error) {
	dishes, err := d.dishRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get dishes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDishesResponse{Dishes: model.ConvertDishes(dishes)}, nil
}

func (d *dishDomain) Search(
	ctx context.Context, req *model.SearchDishesRequest,
) (*model.SearchDishesResponse, error) {
	dishes, err := d.dishRepo.SearchByName(ctx, xcontext.RequestUserID(ctx), req.Query)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search dishes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SearchDishesResponse{Dishes: model.ConvertDishes(dishes)}, nil
}

func (d *dishDomain) getOwned(ctx context.Context, id string) (*entity.Dish, error) {
	dish, err := d.dishRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found dish")
		}

		xcontext.Logger(ctx).Errorf("Cannot get dish: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, dish.UserID); err != nil {
		return nil, err
	}

	return dish, nil
}
