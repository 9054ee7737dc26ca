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

type WorkoutPlanDomain interface {
	Create(ctx context.Context, req *model.CreateWorkoutPlanRequest) (*model.CreateWorkoutPlanResponse, error)
	Update(ctx context.Context, req *model.UpdateWorkoutPlanRequest) (*model.UpdateWorkoutPlanResponse, error)
	Delete(ctx context.Context, req *model.DeleteWorkoutPlanRequest) (*model.DeleteWorkoutPlanResponse, error)
	Get(ctx context.Context, req *model.GetWorkoutPlanRequest) (*model.GetWorkoutPlanResponse, error)
	GetAll(ctx context.Context, req *model.GetWorkoutPlansRequest) (*model.GetWorkoutPlansResponse, error)
}

type workoutPlanDomain struct {
	planRepo     repository.WorkoutPlanRepository
	exerciseRepo repository.ExerciseRepository
}

func NewWorkoutPlanDomain(
	planRepo repository.WorkoutPlanRepository,
	exerciseRepo repository.ExerciseRepository,
) *workoutPlanDomain {
	return &workoutPlanDomain{
		planRepo:     planRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (d *workoutPlanDomain) Create(
	ctx context.Context, req *model.CreateWorkoutPlanRequest,
) (*model.CreateWorkoutPlanResponse, error) {
	planType, err := enum.ToEnum[entity.WorkoutPlanType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid workout plan type %s", req.Type)
	}

	day, err := enum.ToEnum[entity.DayOfWeek](req.Day)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid day %s", req.Day)
	}

	exercises, err := d.ownedExercises(ctx, req.ExerciseIDs)
	if err != nil {
		return nil, err
	}

	plan := &entity.WorkoutPlan{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Type:        planType,
		Day:         day,
		Description: req.Description,
		Exercises:   exercises,
	}

	if err := d.planRepo.Create(ctx, plan); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create workout plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateWorkoutPlanResponse{
		Plan: model.ConvertWorkoutPlan(plan),
	}, nil
}

func (d *workoutPlanDomain) Update(
	ctx context.Context, req *model.UpdateWorkoutPlanRequest,
) (*model.UpdateWorkoutPlanResponse, error) {
	plan, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	update := entity.WorkoutPlan{}
	if req.Type != nil {
		planType, err := enum.ToEnum[entity.WorkoutPlanType](*req.Type)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid workout plan type %s", *req.Type)
		}

		update.Type = planType
		plan.Type = planType
	}
	if req.Day != nil {
		day, err := enum.ToEnum[entity.DayOfWeek](*req.Day)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid day %s", *req.Day)
		}

		update.Day = day
		plan.Day = day
	}
	if req.Description != nil {
		update.Description = *req.Description
		plan.Description = *req.Description
	}

	if req.Type != nil || req.Day != nil || req.Description != nil {
		if err := d.planRepo.UpdateByID(ctx, plan.ID, &update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update workout plan: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.ExerciseIDs != nil {
		exercises, err := d.ownedExercises(ctx, *req.ExerciseIDs)
		if err != nil {
			return nil, err
		}

		if err := d.planRepo.ReplaceExercises(ctx, plan, exercises); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot replace workout plan exercises: %v", err)
			return nil, errorx.Unknown
		}

		plan.Exercises = exercises
	}

	return &model.UpdateWorkoutPlanResponse{
		Plan: model.ConvertWorkoutPlan(plan),
	}, nil
}

func (d *workoutPlanDomain) Delete(
	ctx context.Context, req *model.DeleteWorkoutPlanRequest,
) (*model.DeleteWorkoutPlanResponse, error) {
	plan, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.planRepo.DeleteByID(ctx, plan.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete workout plan: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteWorkoutPlanResponse{}, nil
}

func (d *workoutPlanDomain) Get(
	ctx context.Context, req *model.GetWorkoutPlanRequest,
) (*model.GetWorkoutPlanResponse, error) {
	plan, err := d.getOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetWorkoutPlanResponse{
		Plan: model.ConvertWorkoutPlan(plan),
	}, nil
}

func (d *workoutPlanDomain) GetAll(
	ctx context.Context, req *model.GetWorkoutPlansRequest,
) (*model.GetWorkoutPlansResponse, error) {
	plans, err := d.planRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get workout plans: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetWorkoutPlansResponse{
		Plans: model.ConvertWorkoutPlans(plans),
	}, nil
}

func (d *workoutPlanDomain) getOwned(ctx context.Context, id string) (*entity.WorkoutPlan, error) {
	plan, err := d.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found workout plan")
		}

		xcontext.Logger(ctx).Errorf("Cannot get workout plan: %v", err)
		return nil, errorx.Unknown
	}

	if err := common.AssertOwned(ctx, plan.UserID); err != nil {
		return nil, err
	}

	return plan, nil
}

func (d *workoutPlanDomain) ownedExercises(
	ctx context.Context, ids []string,
) ([]entity.Exercise, error) {
	exercises := make([]entity.Exercise, 0, len(ids))
	for _, id := range ids {
		exercise, err := d.exerciseRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found exercise %s", id)
			}

			xcontext.Logger(ctx).Errorf("Cannot get exercise: %v", err)
			return nil, errorx.Unknown
		}

		if err := common.AssertOwned(ctx, exercise.UserID); err != nil {
			return nil, err
		}

		exercises = append(exercises, *exercise)
	}

	return exercises, nil
}
