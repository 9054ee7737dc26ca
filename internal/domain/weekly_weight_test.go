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

func Test_weeklyWeightDomain_Queries(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	dailyDomain, weeklyRepo := newDailyWeightDomain()
	weeklyDomain := NewWeeklyWeightDomain(weeklyRepo)

	for _, req := range []*model.CreateDailyWeightRequest{
		{Date: "2024-01-01", Weight: 80},
		{Date: "2024-01-07", Weight: 82},
		{Date: "2024-01-08", Weight: 84},
	} {
		_, err := dailyDomain.Create(ctx, req)
		require.NoError(t, err)
	}

	all, err := weeklyDomain.GetAll(ctx, &model.GetWeeklyWeightsRequest{})
	require.NoError(t, err)
	require.Len(t, all.WeeklyWeights, 2)
	require.Equal(t, 1, all.WeeklyWeights[0].WeekNumber)
	require.InDelta(t, 81.0, all.WeeklyWeights[0].AverageWeight, 1e-9)
	require.Equal(t, 2, all.WeeklyWeights[1].WeekNumber)
	require.InDelta(t, 84.0, all.WeeklyWeights[1].AverageWeight, 1e-9)

	byYear, err := weeklyDomain.GetByYear(ctx, &model.GetWeeklyWeightsByYearRequest{Year: 2024})
	require.NoError(t, err)
	require.Len(t, byYear.WeeklyWeights, 2)

	inRange, err := weeklyDomain.GetInRange(ctx, &model.GetWeeklyWeightsInRangeRequest{
		StartDate: "2024-01-01", EndDate: "2024-01-07",
	})
	require.NoError(t, err)
	require.Len(t, inRange.WeeklyWeights, 1)
	require.Equal(t, 1, inRange.WeeklyWeights[0].WeekNumber)

	forDate, err := weeklyDomain.GetForDate(ctx, &model.GetWeeklyWeightForDateRequest{
		Date: "2024-01-03",
	})
	require.NoError(t, err)
	require.Equal(t, 1, forDate.WeeklyWeight.WeekNumber)
	require.Equal(t, "2024-01-01", forDate.WeeklyWeight.StartDate)
	require.Equal(t, "2024-01-07", forDate.WeeklyWeight.EndDate)

	byID, err := weeklyDomain.Get(ctx, &model.GetWeeklyWeightRequest{
		ID: all.WeeklyWeights[0].ID,
	})
	require.NoError(t, err)
	require.InDelta(t, 81.0, byID.WeeklyWeight.AverageWeight, 1e-9)
}

func Test_weeklyWeightDomain_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	weeklyDomain := NewWeeklyWeightDomain(repository.NewWeeklyWeightRepository())

	_, err := weeklyDomain.Get(ctx, &model.GetWeeklyWeightRequest{ID: "no-such-id"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found weekly weight"), err)

	_, err = weeklyDomain.GetForDate(ctx, &model.GetWeeklyWeightForDateRequest{Date: "2024-06-01"})
	require.Equal(t, errorx.New(errorx.NotFound, "No weekly weight contains this date"), err)
}

func Test_weeklyWeightDomain_OwnershipIsolation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyDomain, weeklyRepo := newDailyWeightDomain()
	weeklyDomain := NewWeeklyWeightDomain(weeklyRepo)

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := dailyDomain.Create(ctx1, &model.CreateDailyWeightRequest{
		Date: "2024-01-01", Weight: 80,
	})
	require.NoError(t, err)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	all, err := weeklyDomain.GetAll(ctx2, &model.GetWeeklyWeightsRequest{})
	require.NoError(t, err)
	require.Empty(t, all.WeeklyWeights)

	user1Weeks, err := weeklyDomain.GetAll(ctx1, &model.GetWeeklyWeightsRequest{})
	require.NoError(t, err)
	require.Len(t, user1Weeks.WeeklyWeights, 1)

	_, err = weeklyDomain.Get(ctx2, &model.GetWeeklyWeightRequest{
		ID: user1Weeks.WeeklyWeights[0].ID,
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)
}
