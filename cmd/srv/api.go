package main

import (
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/tamaliftics/backend/internal/middleware"
	"github.com/tamaliftics/backend/pkg/router"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

func (s *srv) startApi(cliCtx *cli.Context) error {
	if err := s.loadConfig(cliCtx); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}
	s.loadAuthenticator()
	if err := s.loadRepos(); err != nil {
		return err
	}
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	xcontext.Logger(s.ctx).Infof("Starting API server on %s", cfg.ApiServer.Address())

	server := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	return server.ListenAndServe()
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.After(middleware.Logger())

	// Public routes.
	publicRouter := s.router.Branch()
	router.POST(publicRouter, "/auth/signup", s.authDomain.Signup)
	router.POST(publicRouter, "/auth/login", s.authDomain.Login)
	router.GET(publicRouter, "/auth/ping", s.authDomain.Ping)

	// Every other route needs an authenticated user.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())

	router.GET(authRouter, "/getUser", s.userDomain.GetMe)

	router.POST(authRouter, "/createDish", s.dishDomain.Create)
	router.POST(authRouter, "/updateDish", s.dishDomain.Update)
	router.POST(authRouter, "/deleteDish", s.dishDomain.Delete)
	router.GET(authRouter, "/getDish", s.dishDomain.Get)
	router.GET(authRouter, "/getDishes", s.dishDomain.GetAll)
	router.GET(authRouter, "/searchDishes", s.dishDomain.Search)

	router.POST(authRouter, "/createMeal", s.mealDomain.Create)
	router.POST(authRouter, "/updateMeal", s.mealDomain.Update)
	router.POST(authRouter, "/deleteMeal", s.mealDomain.Delete)
	router.GET(authRouter, "/getMeal", s.mealDomain.Get)
	router.GET(authRouter, "/getMeals", s.mealDomain.GetAll)

	router.POST(authRouter, "/createDiet", s.dietDomain.Create)
	router.POST(authRouter, "/updateDiet", s.dietDomain.Update)
	router.POST(authRouter, "/deleteDiet", s.dietDomain.Delete)
	router.GET(authRouter, "/getDiet", s.dietDomain.Get)
	router.GET(authRouter, "/getDiets", s.dietDomain.GetAll)
	router.GET(authRouter, "/searchDiets", s.dietDomain.Search)
	router.GET(authRouter, "/getDietMeal", s.dietDomain.GetMeal)

	router.POST(authRouter, "/createExerciseCategory", s.categoryDomain.Create)
	router.POST(authRouter, "/updateExerciseCategory", s.categoryDomain.Update)
	router.POST(authRouter, "/deleteExerciseCategory", s.categoryDomain.Delete)
	router.GET(authRouter, "/getExerciseCategory", s.categoryDomain.Get)
	router.GET(authRouter, "/getExerciseCategories", s.categoryDomain.GetAll)

	router.POST(authRouter, "/createExercise", s.exerciseDomain.Create)
	router.POST(authRouter, "/updateExercise", s.exerciseDomain.Update)
	router.POST(authRouter, "/deleteExercise", s.exerciseDomain.Delete)
	router.GET(authRouter, "/getExercise", s.exerciseDomain.Get)
	router.GET(authRouter, "/getExercises", s.exerciseDomain.GetAll)
	router.GET(authRouter, "/searchExercises", s.exerciseDomain.Search)
	router.GET(authRouter, "/getExercisesByCategory", s.exerciseDomain.GetByCategory)

	router.POST(authRouter, "/createTrackPoint", s.trackPointDomain.Create)
	router.POST(authRouter, "/updateTrackPoint", s.trackPointDomain.Update)
	router.POST(authRouter, "/deleteTrackPoint", s.trackPointDomain.Delete)
	router.GET(authRouter, "/getTrackPoint", s.trackPointDomain.Get)
	router.GET(authRouter, "/getTrackPointsByExercise", s.trackPointDomain.GetByExercise)

	router.POST(authRouter, "/createWorkoutPlan", s.workoutPlanDomain.Create)
	router.POST(authRouter, "/updateWorkoutPlan", s.workoutPlanDomain.Update)
	router.POST(authRouter, "/deleteWorkoutPlan", s.workoutPlanDomain.Delete)
	router.GET(authRouter, "/getWorkoutPlan", s.workoutPlanDomain.Get)
	router.GET(authRouter, "/getWorkoutPlans", s.workoutPlanDomain.GetAll)

	router.POST(authRouter, "/createDailyWeight", s.dailyWeightDomain.Create)
	router.POST(authRouter, "/updateDailyWeight", s.dailyWeightDomain.Update)
	router.POST(authRouter, "/deleteDailyWeight", s.dailyWeightDomain.Delete)
	router.GET(authRouter, "/getDailyWeight", s.dailyWeightDomain.Get)
	router.GET(authRouter, "/getDailyWeights", s.dailyWeightDomain.GetAll)
	router.GET(authRouter, "/getDailyWeightsInRange", s.dailyWeightDomain.GetInRange)

	router.GET(authRouter, "/getWeeklyWeight", s.weeklyWeightDomain.Get)
	router.GET(authRouter, "/getWeeklyWeights", s.weeklyWeightDomain.GetAll)
	router.GET(authRouter, "/getWeeklyWeightsByYear", s.weeklyWeightDomain.GetByYear)
	router.GET(authRouter, "/getWeeklyWeightsInRange", s.weeklyWeightDomain.GetInRange)
	router.GET(authRouter, "/getWeeklyWeightForDate", s.weeklyWeightDomain.GetForDate)
}
