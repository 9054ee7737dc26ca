package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/pkg/dateutil"
	"github.com/tamaliftics/backend/pkg/testutil"
)

func date(t *testing.T, s string) time.Time {
	d, err := dateutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func Test_dailyWeightRepository_GetBetweenDates_Inclusive(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewDailyWeightRepository()
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-07", "2024-01-08"} {
		require.NoError(t, repo.Create(ctx, &entity.DailyWeight{
			Base:   entity.Base{ID: uuid.NewString()},
			UserID: testutil.User1.ID,
			Date:   date(t, day),
			Weight: 80,
		}))
	}

	// Both boundary dates are part of the range.
	result, err := repo.GetBetweenDates(ctx, testutil.User1.ID,
		date(t, "2024-01-01"), date(t, "2024-01-07"))
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, date(t, "2024-01-01"), result[0].Date)
	require.Equal(t, date(t, "2024-01-07"), result[2].Date)

	other, err := repo.GetBetweenDates(ctx, testutil.User2.ID,
		date(t, "2024-01-01"), date(t, "2024-01-07"))
	require.NoError(t, err)
	require.Empty(t, other)
}

func Test_dailyWeightRepository_UniquePerUserAndDate(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewDailyWeightRepository()
	first := &entity.DailyWeight{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User1.ID,
		Date:   date(t, "2024-01-02"),
		Weight: 80,
	}
	require.NoError(t, repo.Create(ctx, first))

	// A second row for the same (user, date) is rejected by the store.
	require.Error(t, repo.Create(ctx, &entity.DailyWeight{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User1.ID,
		Date:   date(t, "2024-01-02"),
		Weight: 82,
	}))

	// Another user may log the same date.
	require.NoError(t, repo.Create(ctx, &entity.DailyWeight{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User2.ID,
		Date:   date(t, "2024-01-02"),
		Weight: 90,
	}))

	// Deleting frees the slot for that date again.
	require.NoError(t, repo.DeleteByID(ctx, first.ID))
	require.NoError(t, repo.Create(ctx, &entity.DailyWeight{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User1.ID,
		Date:   date(t, "2024-01-02"),
		Weight: 81,
	}))
}

func Test_weeklyWeightRepository_UniquePerUserAndWeek(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewWeeklyWeightRepository()
	first := &entity.WeeklyWeight{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        testutil.User1.ID,
		WeekNumber:    1,
		Year:          2024,
		StartDate:     date(t, "2024-01-01"),
		EndDate:       date(t, "2024-01-07"),
		AverageWeight: 80,
	}
	require.NoError(t, repo.Create(ctx, first))

	require.Error(t, repo.Create(ctx, &entity.WeeklyWeight{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        testutil.User1.ID,
		WeekNumber:    1,
		Year:          2024,
		StartDate:     date(t, "2024-01-01"),
		EndDate:       date(t, "2024-01-07"),
		AverageWeight: 81,
	}))

	// An emptied week is removed for real, so a refilled one starts fresh.
	require.NoError(t, repo.DeleteByID(ctx, first.ID))
	require.NoError(t, repo.Create(ctx, &entity.WeeklyWeight{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        testutil.User1.ID,
		WeekNumber:    1,
		Year:          2024,
		StartDate:     date(t, "2024-01-01"),
		EndDate:       date(t, "2024-01-07"),
		AverageWeight: 81,
	}))
}

func Test_weeklyWeightRepository_DateQueries(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewWeeklyWeightRepository()
	require.NoError(t, repo.Create(ctx, &entity.WeeklyWeight{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        testutil.User1.ID,
		WeekNumber:    1,
		Year:          2024,
		StartDate:     date(t, "2024-01-01"),
		EndDate:       date(t, "2024-01-07"),
		AverageWeight: 80,
	}))

	// GetBetweenDates only returns weeks fully inside the range.
	full, err := repo.GetBetweenDates(ctx, testutil.User1.ID,
		date(t, "2024-01-01"), date(t, "2024-01-07"))
	require.NoError(t, err)
	require.Len(t, full, 1)

	partial, err := repo.GetBetweenDates(ctx, testutil.User1.ID,
		date(t, "2024-01-02"), date(t, "2024-01-07"))
	require.NoError(t, err)
	require.Empty(t, partial)

	containing, err := repo.GetContainingDate(ctx, testutil.User1.ID, date(t, "2024-01-03"))
	require.NoError(t, err)
	require.Equal(t, 1, containing.WeekNumber)
	require.True(t, containing.ContainsDate(date(t, "2024-01-03")))
	require.False(t, containing.ContainsDate(date(t, "2024-01-08")))

	require.NoError(t, repo.UpdateAverageByID(ctx, containing.ID, 81.5))
	reloaded, err := repo.GetByID(ctx, containing.ID)
	require.NoError(t, err)
	require.InDelta(t, 81.5, reloaded.AverageWeight, 1e-9)
}
