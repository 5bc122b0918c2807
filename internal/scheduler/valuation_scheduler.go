package scheduler

import (
	"context"
	"time"

	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ValuationScheduler recomputes the inventory valuation snapshot nightly so
// the summary endpoint stays cheap during the day.
type ValuationScheduler struct {
	cron         *cron.Cron
	valuationSvc service.ValuationService
}

func NewValuationScheduler(valuationSvc service.ValuationService) *ValuationScheduler {
	return &ValuationScheduler{
		cron:         cron.New(),
		valuationSvc: valuationSvc,
	}
}

// Start registers the nightly job (02:00 server time).
func (s *ValuationScheduler) Start() error {
	_, err := s.cron.AddFunc("0 2 * * *", func() {
		logger.Info("Starting scheduled inventory valuation", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if _, err := s.valuationSvc.Snapshot(ctx); err != nil {
			logger.Error("Scheduled inventory valuation failed", err)
			return
		}
		logger.Info("Scheduled inventory valuation completed", nil)
	})
	if err != nil {
		logger.Error("Failed to register valuation cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Inventory valuation scheduler started (daily at 02:00)", nil)
	return nil
}

func (s *ValuationScheduler) Stop() {
	logger.Info("Stopping inventory valuation scheduler...", nil)
	s.cron.Stop()
}
