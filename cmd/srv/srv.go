package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tamaliftics/backend/config"
	"github.com/tamaliftics/backend/internal/domain"
	"github.com/tamaliftics/backend/internal/domain/aggregate"
	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/authenticator"
	"github.com/tamaliftics/backend/pkg/logger"
	"github.com/tamaliftics/backend/pkg/router"
	"github.com/tamaliftics/backend/pkg/xcontext"
	"github.com/tamaliftics/backend/pkg/xredis"
)

type srv struct {
	ctx context.Context

	userRepo         repository.UserRepository
	dailyWeightRepo  repository.DailyWeightRepository
	weeklyWeightRepo repository.WeeklyWeightRepository
	dishRepo         repository.DishRepository
	mealRepo         repository.MealRepository
	dietRepo         repository.DietRepository
	categoryRepo     repository.ExerciseCategoryRepository
	exerciseRepo     repository.ExerciseRepository
	trackPointRepo   repository.ExerciseTrackPointRepository
	workoutPlanRepo  repository.WorkoutPlanRepository

	authDomain         domain.AuthDomain
	userDomain         domain.UserDomain
	dishDomain         domain.DishDomain
	mealDomain         domain.MealDomain
	dietDomain         domain.DietDomain
	categoryDomain     domain.ExerciseCategoryDomain
	exerciseDomain     domain.ExerciseDomain
	trackPointDomain   domain.ExerciseTrackPointDomain
	workoutPlanDomain  domain.WorkoutPlanDomain
	dailyWeightDomain  domain.DailyWeightDomain
	weeklyWeightDomain domain.WeeklyWeightDomain

	router *router.Router
}

func (s *srv) loadConfig(cliCtx *cli.Context) error {
	configs, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(context.Background(), configs)
	return nil
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() error {
	db, err := gorm.Open(
		mysql.Open(xcontext.Configs(s.ctx).Database.ConnectionString()),
		&gorm.Config{},
	)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

func (s *srv) loadAuthenticator() {
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(s.ctx).Auth.AccessToken))
}

func (s *srv) loadRepos() error {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		return err
	}

	s.userRepo = repository.NewUserRepository(redisClient)
	s.dailyWeightRepo = repository.NewDailyWeightRepository()
	s.weeklyWeightRepo = repository.NewWeeklyWeightRepository()
	s.dishRepo = repository.NewDishRepository()
	s.mealRepo = repository.NewMealRepository()
	s.dietRepo = repository.NewDietRepository()
	s.categoryRepo = repository.NewExerciseCategoryRepository()
	s.exerciseRepo = repository.NewExerciseRepository()
	s.trackPointRepo = repository.NewExerciseTrackPointRepository()
	s.workoutPlanRepo = repository.NewWorkoutPlanRepository()
	return nil
}

func (s *srv) loadDomains() {
	aggregator := aggregate.NewAggregator(s.dailyWeightRepo, s.weeklyWeightRepo)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.dishDomain = domain.NewDishDomain(s.dishRepo)
	s.mealDomain = domain.NewMealDomain(s.mealRepo, s.dishRepo)
	s.dietDomain = domain.NewDietDomain(s.dietRepo, s.mealRepo)
	s.categoryDomain = domain.NewExerciseCategoryDomain(s.categoryRepo, s.exerciseRepo)
	s.exerciseDomain = domain.NewExerciseDomain(s.exerciseRepo, s.categoryRepo)
	s.trackPointDomain = domain.NewExerciseTrackPointDomain(s.trackPointRepo, s.exerciseRepo)
	s.workoutPlanDomain = domain.NewWorkoutPlanDomain(s.workoutPlanRepo, s.exerciseRepo)
	s.dailyWeightDomain = domain.NewDailyWeightDomain(s.dailyWeightRepo, aggregator)
	s.weeklyWeightDomain = domain.NewWeeklyWeightDomain(s.weeklyWeightRepo)
}
