package scheduler

import (
	"time"

	"github.com/corgigo/corgigo-backend/internal/app/service"
	"github.com/corgigo/corgigo-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// staleAfter is how long a profile may wait in PENDING before it is
// reported as stale
const staleAfter = 3 * 24 * time.Hour

// PendingReviewScheduler periodically reports profiles stuck in the
// review queue so administrators notice backlogs
type PendingReviewScheduler struct {
	cron         *cron.Cron
	adminService service.AdminService
}

func NewPendingReviewScheduler(adminService service.AdminService) *PendingReviewScheduler {
	return &PendingReviewScheduler{
		cron:         cron.New(),
		adminService: adminService,
	}
}

// Start schedules the daily backlog report (09:00 server time)
func (s *PendingReviewScheduler) Start() error {
	_, err := s.cron.AddFunc("0 9 * * *", func() {
		count, err := s.adminService.CountStalePending(staleAfter)
		if err != nil {
			logger.Error("Failed to count stale pending profiles", err)
			return
		}

		if count == 0 {
			logger.Info("No stale pending restaurant profiles", nil)
			return
		}

		logger.Warn("Restaurant profiles waiting in review queue", map[string]interface{}{
			"stale_count": count,
			"stale_after": staleAfter.String(),
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for pending review report", err)
		return err
	}

	s.cron.Start()
	logger.Info("Pending review scheduler started (daily at 9:00 AM)", nil)
	return nil
}

// Stop stops the scheduler
func (s *PendingReviewScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Pending review scheduler stopped", nil)
}
