package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
	"gorm.io/gorm"

	"github.com/tamaliftics/backend/internal/entity"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/dateutil"
)

// Aggregator keeps the weekly average rows consistent with the daily weight
// entries. Recompute must be called after every daily weight mutation, for
// each week the mutation touched.
type Aggregator struct {
	dailyWeightRepo  repository.DailyWeightRepository
	weeklyWeightRepo repository.WeeklyWeightRepository

	// One mutex per (user, week, year). Recomputations of different weeks
	// proceed in parallel, recomputations of the same week serialize.
	weekLocks *xsync.MapOf[string, *sync.Mutex]
}

func NewAggregator(
	dailyWeightRepo repository.DailyWeightRepository,
	weeklyWeightRepo repository.WeeklyWeightRepository,
) *Aggregator {
	return &Aggregator{
		dailyWeightRepo:  dailyWeightRepo,
		weeklyWeightRepo: weeklyWeightRepo,
		weekLocks:        xsync.NewMapOf[*sync.Mutex](),
	}
}

// Recompute recalculates the weekly aggregate of the ISO week containing
// date for the given user. It averages all entries of that week, deletes the
// aggregate when the week has no entries left, and is idempotent.
func (a *Aggregator) Recompute(ctx context.Context, userID string, date time.Time) error {
	week, year := dateutil.WeekOf(date)

	lockKey := fmt.Sprintf("%s/%d/%d", userID, week, year)
	lock, _ := a.weekLocks.LoadOrStore(lockKey, &sync.Mutex{})
	lock.Lock()
	defer lock.Unlock()

	start := dateutil.StartOfWeek(date)
	end := dateutil.EndOfWeek(date)

	entries, err := a.dailyWeightRepo.GetBetweenDates(ctx, userID, start, end)
	if err != nil {
		return err
	}

	current, err := a.weeklyWeightRepo.GetByWeekAndYear(ctx, userID, week, year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if len(entries) == 0 {
		if current == nil {
			return nil
		}

		return a.weeklyWeightRepo.DeleteByID(ctx, current.ID)
	}

	var sum float64
	for _, entry := range entries {
		sum += entry.Weight
	}
	average := sum / float64(len(entries))

	if current != nil {
		return a.weeklyWeightRepo.UpdateAverageByID(ctx, current.ID, average)
	}

	return a.weeklyWeightRepo.Create(ctx, &entity.WeeklyWeight{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        userID,
		WeekNumber:    week,
		Year:          year,
		StartDate:     start,
		EndDate:       end,
		AverageWeight: average,
	})
}
