package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/dateutil"
	"github.com/tamaliftics/backend/pkg/testutil"
)

func mustDate(t *testing.T, s string) time.Time {
	d, err := dateutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func createEntry(
	t *testing.T, ctx context.Context,
	repo repository.DailyWeightRepository,
	userID, date string, weight float64,
) *entity.DailyWeight {
	entry := &entity.DailyWeight{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Date:   mustDate(t, date),
		Weight: weight,
	}
	require.NoError(t, repo.Create(ctx, entry))
	return entry
}

func Test_Aggregator_Recompute(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyRepo := repository.NewDailyWeightRepository()
	weeklyRepo := repository.NewWeeklyWeightRepository()
	aggregator := NewAggregator(dailyRepo, weeklyRepo)

	createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-01-01", 80)
	createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-01-03", 81)
	createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-01-07", 82)

	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, mustDate(t, "2024-01-03")))

	weekly, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 1, 2024)
	require.NoError(t, err)
	require.InDelta(t, 81.0, weekly.AverageWeight, 1e-9)
	require.Equal(t, mustDate(t, "2024-01-01"), weekly.StartDate)
	require.Equal(t, mustDate(t, "2024-01-07"), weekly.EndDate)
}

func Test_Aggregator_Recompute_Idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyRepo := repository.NewDailyWeightRepository()
	weeklyRepo := repository.NewWeeklyWeightRepository()
	aggregator := NewAggregator(dailyRepo, weeklyRepo)

	createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-02-05", 79.5)

	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, mustDate(t, "2024-02-05")))
	first, err := weeklyRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Recomputing again must not create a second row or change the average.
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, mustDate(t, "2024-02-08")))
	second, err := weeklyRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.InDelta(t, first[0].AverageWeight, second[0].AverageWeight, 1e-9)
}

func Test_Aggregator_Recompute_DeletesEmptiedWeek(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyRepo := repository.NewDailyWeightRepository()
	weeklyRepo := repository.NewWeeklyWeightRepository()
	aggregator := NewAggregator(dailyRepo, weeklyRepo)

	entry := createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-03-06", 78)
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, entry.Date))

	require.NoError(t, dailyRepo.DeleteByID(ctx, entry.ID))
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, entry.Date))

	_, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 10, 2024)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Refilling the emptied week creates a fresh aggregate.
	refill := createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-03-07", 79)
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, refill.Date))

	weekly, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 10, 2024)
	require.NoError(t, err)
	require.InDelta(t, 79.0, weekly.AverageWeight, 1e-9)
}

func Test_Aggregator_Recompute_EmptyWeekIsNoop(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	aggregator := NewAggregator(
		repository.NewDailyWeightRepository(), repository.NewWeeklyWeightRepository())

	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, mustDate(t, "2024-05-15")))

	weeklies, err := repository.NewWeeklyWeightRepository().GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Empty(t, weeklies)
}

func Test_Aggregator_Recompute_EntryMovedAcrossWeekBoundary(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyRepo := repository.NewDailyWeightRepository()
	weeklyRepo := repository.NewWeeklyWeightRepository()
	aggregator := NewAggregator(dailyRepo, weeklyRepo)

	// Sunday of week 1, moved to Monday of week 2.
	entry := createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-01-07", 77)
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, entry.Date))

	oldDate := entry.Date
	newDate := mustDate(t, "2024-01-08")
	require.NoError(t, dailyRepo.UpdateByID(ctx, entry.ID, &entity.DailyWeight{Date: newDate}))
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, oldDate))
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, newDate))

	_, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 1, 2024)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	moved, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 2, 2024)
	require.NoError(t, err)
	require.InDelta(t, 77.0, moved.AverageWeight, 1e-9)
	require.Equal(t, mustDate(t, "2024-01-08"), moved.StartDate)
	require.Equal(t, mustDate(t, "2024-01-14"), moved.EndDate)
}

func Test_Aggregator_Recompute_YearStraddlingWeek(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyRepo := repository.NewDailyWeightRepository()
	weeklyRepo := repository.NewWeeklyWeightRepository()
	aggregator := NewAggregator(dailyRepo, weeklyRepo)

	// 2024-12-31 belongs to week 1 of week-based year 2025.
	createEntry(t, ctx, dailyRepo, testutil.User1.ID, "2024-12-31", 85)
	require.NoError(t, aggregator.Recompute(ctx, testutil.User1.ID, mustDate(t, "2024-12-31")))

	weekly, err := weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 1, 2025)
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2024-12-30"), weekly.StartDate)
	require.Equal(t, mustDate(t, "2025-01-05"), weekly.EndDate)
	require.InDelta(t, 85.0, weekly.AverageWeight, 1e-9)

	// An entry of a different user must not leak into this aggregate.
	createEntry(t, ctx, dailyRepo, testutil.User2.ID, "2024-12-31", 60)
	require.NoError(t, aggregator.Recompute(ctx, testutil.User2.ID, mustDate(t, "2024-12-31")))

	weekly, err = weeklyRepo.GetByWeekAndYear(ctx, testutil.User1.ID, 1, 2025)
	require.NoError(t, err)
	require.InDelta(t, 85.0, weekly.AverageWeight, 1e-9)
}
