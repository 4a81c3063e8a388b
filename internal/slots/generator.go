package slots

import (
	"fmt"
	"iter"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

const DefaultIntervalMinutes = 60

// Generate returns every slot of item for each calendar date in [from, to].
// Slot times start at item.StartTime and step by intervalMinutes while
// time+interval <= item.EndTime. The sequence is pure and may be iterated repeatedly.
func Generate(item *domain.BookableItem, from, to time.Time, intervalMinutes int) (iter.Seq[domain.Slot], error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot interval must be positive, got %d", domain.ErrInvalidConfiguration, intervalMinutes)
	}

	times := dayTimes(item.StartTime, item.EndTime, domain.TimeOfDay(intervalMinutes))
	first, last := domain.DateOnly(from), domain.DateOnly(to)

	return func(yield func(domain.Slot) bool) {
		if len(times) == 0 {
			return
		}
		for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
			for _, t := range times {
				if !yield(domain.Slot{Date: date, Time: t}) {
					return
				}
			}
		}
	}, nil
}

func dayTimes(start, end, step domain.TimeOfDay) []domain.TimeOfDay {
	var res []domain.TimeOfDay
	for t := start; t+step <= end; t += step {
		res = append(res, t)
	}
	return res
}

// Entries builds fresh ledger entries for every generated slot, with
// remaining = total_capacity = item.Capacity.
func Entries(item *domain.BookableItem, seq iter.Seq[domain.Slot], now time.Time) []domain.LedgerEntry {
	var res []domain.LedgerEntry
	for s := range seq {
		res = append(res, domain.LedgerEntry{
			ItemID:        item.ID,
			Date:          s.Date,
			Time:          s.Time,
			TotalCapacity: item.Capacity,
			Remaining:     item.Capacity,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return res
}
