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

type ExerciseCategoryDomain interface {
	Create(ctx context.Context, req *model.CreateExerciseCategoryRequest) (*model.CreateExerciseCategoryResponse, error)
	Update(ctx context.Context, req *model.UpdateExerciseCategoryRequest) (*model.UpdateExerciseCategoryResponse, error)
	Delete(ctx context.Context, req *model.DeleteExerciseCategoryRequest) (*model.DeleteExerciseCategoryResponse, error)
	Get(ctx context.Context, req *model.GetExerciseCategoryRequest) (*model.GetExerciseCategoryResponse, error)
	GetAll(ctx context.Context, req *model.GetExerciseCategoriesRequest) (*model.GetExerciseCategoriesResponse, error)
}

type exerciseCategoryDomain struct {
	categoryRepo repository.ExerciseCategoryRepository
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseCategoryDomain(
	categoryRepo repository.ExerciseCategoryRepository,
	exerciseRepo repository.ExerciseRepository,
) *exerciseCategoryDomain {
	return &exerciseCategoryDomain{
		categoryRepo: categoryRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (d *exerciseCategoryDomain) Create(
	ctx context.Context, req *model.CreateExerciseCategoryRequest,
) (*model.CreateExerciseCategoryResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a name")
	}

	category := &entity.ExerciseCategory{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := d.categoryRepo.Create(ctx, category); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create exercise category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateExerciseCategoryResponse{
		Category: model.ConvertExerciseCategory(category),
	}, nil
}

func (d *exerciseCategoryDomain) Update(
	ctx context.Context, req *model.UpdateExerciseCategoryRequest,
) (*model.UpdateExerciseCategoryResponse, error) {
	category, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := d.categoryRepo.UpdateByID(ctx, category.ID, category); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update exercise category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateExerciseCategoryResponse{
		Category: model.ConvertExerciseCategory(category),
	}, nil
}

func (d *exerciseCategoryDomain) Delete(
	ctx context.Context, req *model.DeleteExerciseCategoryRequest,
) (*model.DeleteExerciseCategoryResponse, error) {
	category, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	exercises, err := d.exerciseRepo.GetByCategoryID(ctx, category.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get exercises of category: %v", err)
		return nil, errorx.Unknown
	}

	if len(exercises) > 0 {
		return nil, errorx.New(errorx.BadRequest, "The category still has exercises")
	}

	if err := d.categoryRepo.DeleteByID(ctx, category.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete exercise category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteExerciseCategoryResponse{}, nil
}

func (d *exerciseCategoryDomain) Get(
	ctx context.Context, req *model.GetExerciseCategoryRequest,
) (*model.GetExerciseCategoryResponse, error) {
	category, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetExerciseCategoryResponse{
		Category: model.ConvertExerciseCategory(category),
	}, nil
}

func (d *exerciseCategoryDomain) GetAll(
	ctx context.Context, req *model.GetExerciseCategoriesRequest,
) (*model.GetExerciseCategoriesResponse, error) {
	categories, err := d.categoryRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get exercise categories: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetExerciseCategoriesResponse{
		Categories: model.ConvertExerciseCategories(categories),
	}, nil
}

func (d *exerciseCategoryDomain) getOwned(
	ctx context.Context, id string,
) (*entity.ExerciseCategory, error) {
	category, err := d.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found exercise category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get exercise category: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, category.UserID); err != nil {
		return nil, err
	}

	return category, nil
}
