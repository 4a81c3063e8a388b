package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Reservation, error)
}

type Scheduler struct {
	holds    holdExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	holds holdExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		holds:    holds,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.holds.ExpireStale(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to expire stale holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range expired {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "hold expired",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.UserID),
			logger.String("item_id", r.ItemID),
			logger.String("slot", r.Date.Format(time.DateOnly)+" "+r.Time.String()),
			logger.Int("quantity", r.Quantity),
		)
	}
}
