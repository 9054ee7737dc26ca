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

type ExerciseDomain interface {
	Create(ctx context.Context, req *model.CreateExerciseRequest) (*model.CreateExerciseResponse, error)
	Update(ctx context.Context, req *model.UpdateExerciseRequest) (*model.UpdateExerciseResponse, error)
	Delete(ctx context.Context, req *model.DeleteExerciseRequest) (*model.DeleteExerciseResponse, error)
	Get(ctx context.Context, req *model.GetExerciseRequest) (*model.GetExerciseResponse, error)
	GetAll(ctx context.Context, req *model.GetExercisesRequest) (*model.GetExercisesResponse, error)
	Search(ctx context.Context, req *model.SearchExercisesRequest) (*model.SearchExercisesResponse, error)
	GetByCategory(ctx context.Context, req *model.GetExercisesByCategoryRequest) (*model.GetExercisesByCategoryResponse, error)
}

type exerciseDomain struct {
	exerciseRepo repository.ExerciseRepository
	categoryRepo repository.ExerciseCategoryRepository
}

func NewExerciseDomain(
	exerciseRepo repository.ExerciseRepository,
	categoryRepo repository.ExerciseCategoryRepository,
) *exerciseDomain {
	return &exerciseDomain{
		exerciseRepo: exerciseRepo,
		categoryRepo: categoryRepo,
	}
}

func (d *exerciseDomain) Create(
	ctx context.Context, req *model.CreateExerciseRequest,
) (*model.CreateExerciseResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a name")
	}

	category, err := d.ownedCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	exercise := &entity.Exercise{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  category.ID,
		Category:    *category,
	}

	if err := d.exerciseRepo.Create(ctx, exercise); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create exercise: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateExerciseResponse{
		Exercise: model.ConvertExercise(exercise),
	}, nil
}

func (d *exerciseDomain) Update(
	ctx context.Context, req *model.UpdateExerciseRequest,
) (*model.UpdateExerciseResponse, error) {
	exercise, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.Description != nil {
		exercise.Description = *req.Description
	}
	if req.CategoryID != nil {
		category, err := d.ownedCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}

		exercise.CategoryID = category.ID
		exercise.Category = *category
	}

	if err := d.exerciseRepo.UpdateByID(ctx, exercise.ID, &entity.Exercise{
		Name:        exercise.Name,
		Description: exercise.Description,
		CategoryID:  exercise.CategoryID,
	}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update exercise: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateExerciseResponse{
		Exercise: model.ConvertExercise(exercise),
	}, nil
}

func (d *exerciseDomain) Delete(
	ctx context.Context, req *model.DeleteExerciseRequest,
) (*model.DeleteExerciseResponse, error) {
	exercise, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.exerciseRepo.DeleteByID(ctx, exercise.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete exercise: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteExerciseResponse{}, nil
}

func (d *exerciseDomain) Get(
	ctx context.Context, req *model.GetExerciseRequest,
) (*model.GetExerciseResponse, error) {
	exercise, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetExerciseResponse{
		Exercise: model.ConvertExercise(exercise),
	}, nil
}

func (d *exerciseDomain) GetAll(
	ctx context.Context, req *model.GetExercisesRequest,
) (*model.GetExercisesResponse, error) {
	exercises, err := d.exerciseRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get exercises: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetExercisesResponse{
		Exercises: model.ConvertExercises(exercises),
	}, nil
}

func (d *exerciseDomain) Search(
	ctx context.Context, req *model.SearchExercisesRequest,
) (*model.SearchExercisesResponse, error) {
	exercises, err := d.exerciseRepo.SearchByName(ctx, xcontext.RequestUserID(ctx), req.Query)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search exercises: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SearchExercisesResponse{
		Exercises: model.ConvertExercises(exercises),
	}, nil
}

func (d *exerciseDomain) GetByCategory(
	ctx context.Context, req *model.GetExercisesByCategoryRequest,
) (*model.GetExercisesByCategoryResponse, error) {
	if _, err := d.ownedCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	exercises, err := d.exerciseRepo.GetByCategoryID(ctx, req.CategoryID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get exercises: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetExercisesByCategoryResponse{
		Exercises: model.ConvertExercises(exercises),
	}, nil
}

func (d *exerciseDomain) getOwned(ctx context.Context, id string) (*entity.Exercise, error) {
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

func (d *exerciseDomain) ownedCategory(
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
