package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/testutil"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

func Test_exerciseDomain_CRUD(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	categoryDomain := NewExerciseCategoryDomain(
		repository.NewExerciseCategoryRepository(), repository.NewExerciseRepository())
	exerciseDomain := NewExerciseDomain(
		repository.NewExerciseRepository(), repository.NewExerciseCategoryRepository())

	category, err := categoryDomain.Create(ctx, &model.CreateExerciseCategoryRequest{
		Name: "Chest",
	})
	require.NoError(t, err)

	exercise, err := exerciseDomain.Create(ctx, &model.CreateExerciseRequest{
		Name:       "Bench press",
		CategoryID: category.Category.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Chest", exercise.Exercise.Category.Name)

	byCategory, err := exerciseDomain.GetByCategory(ctx, &model.GetExercisesByCategoryRequest{
		CategoryID: category.Category.ID,
	})
	require.NoError(t, err)
	require.Len(t, byCategory.Exercises, 1)

	found, err := exerciseDomain.Search(ctx, &model.SearchExercisesRequest{Query: "bench"})
	require.NoError(t, err)
	require.Len(t, found.Exercises, 1)

	// A category with exercises cannot be removed.
	_, err = categoryDomain.Delete(ctx, &model.DeleteExerciseCategoryRequest{
		ID: category.Category.ID,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "The category still has exercises"), err)

	_, err = exerciseDomain.Delete(ctx, &model.DeleteExerciseRequest{ID: exercise.Exercise.ID})
	require.NoError(t, err)

	_, err = categoryDomain.Delete(ctx, &model.DeleteExerciseCategoryRequest{
		ID: category.Category.ID,
	})
	require.NoError(t, err)
}

func Test_exerciseTrackPointDomain(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	categoryDomain := NewExerciseCategoryDomain(
		repository.NewExerciseCategoryRepository(), repository.NewExerciseRepository())
	exerciseDomain := NewExerciseDomain(
		repository.NewExerciseRepository(), repository.NewExerciseCategoryRepository())
	trackPointDomain := NewExerciseTrackPointDomain(
		repository.NewExerciseTrackPointRepository(), repository.NewExerciseRepository())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	category, err := categoryDomain.Create(ctx1, &model.CreateExerciseCategoryRequest{Name: "Legs"})
	require.NoError(t, err)

	exercise, err := exerciseDomain.Create(ctx1, &model.CreateExerciseRequest{
		Name: "Squat", CategoryID: category.Category.ID,
	})
	require.NoError(t, err)

	point, err := trackPointDomain.Create(ctx1, &model.CreateTrackPointRequest{
		ExerciseID: exercise.Exercise.ID,
		Date:       "2024-04-01",
		SetsCount:  5,
		RepsCount:  5,
	})
	require.NoError(t, err)
	require.Equal(t, "2024-04-01", point.TrackPoint.Date)

	points, err := trackPointDomain.GetByExercise(ctx1, &model.GetTrackPointsByExerciseRequest{
		ExerciseID: exercise.Exercise.ID,
	})
	require.NoError(t, err)
	require.Len(t, points.TrackPoints, 1)

	// Ownership of a track point follows its exercise.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = trackPointDomain.Get(ctx2, &model.GetTrackPointRequest{ID: point.TrackPoint.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)

	_, err = trackPointDomain.Create(ctx1, &model.CreateTrackPointRequest{
		ExerciseID: exercise.Exercise.ID, Date: "2024-04-02", SetsCount: 0, RepsCount: 5,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Require positive sets and reps counts"), err)
}

func Test_workoutPlanDomain(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	categoryDomain := NewExerciseCategoryDomain(
		repository.NewExerciseCategoryRepository(), repository.NewExerciseRepository())
	exerciseDomain := NewExerciseDomain(
		repository.NewExerciseRepository(), repository.NewExerciseCategoryRepository())
	planDomain := NewWorkoutPlanDomain(
		repository.NewWorkoutPlanRepository(), repository.NewExerciseRepository())

	category, err := categoryDomain.Create(ctx, &model.CreateExerciseCategoryRequest{Name: "Back"})
	require.NoError(t, err)

	pullUp, err := exerciseDomain.Create(ctx, &model.CreateExerciseRequest{
		Name: "Pull up", CategoryID: category.Category.ID,
	})
	require.NoError(t, err)

	plan, err := planDomain.Create(ctx, &model.CreateWorkoutPlanRequest{
		Type:        "push_and_pull_1",
		Day:         "monday",
		ExerciseIDs: []string{pullUp.Exercise.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "push_and_pull_1", plan.Plan.Type)
	require.Equal(t, "monday", plan.Plan.Day)
	require.Len(t, plan.Plan.Exercises, 1)

	newDay := "friday"
	updated, err := planDomain.Update(ctx, &model.UpdateWorkoutPlanRequest{
		ID: plan.Plan.ID, Day: &newDay,
	})
	require.NoError(t, err)
	require.Equal(t, "friday", updated.Plan.Day)

	_, err = planDomain.Create(ctx, &model.CreateWorkoutPlanRequest{
		Type: "cardio", Day: "monday",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid workout plan type cardio"), err)
}
