package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/app/services"
)

// notificationRetentionDays is how long an announcement stays visible
// before the nightly sweep retires it.
const notificationRetentionDays = 30

// Maintenance runs the scheduled housekeeping tasks: expiring stale
// notifications and logging challan issuance stats for the transport
// office's morning review.
type Maintenance struct {
	notificationRepo *repositories.NotificationRepository
	challanService   services.ChallanService
	cron             *cron.Cron
	logger           zerolog.Logger
}

// NewMaintenance creates a new Maintenance job runner
func NewMaintenance(
	notificationRepo *repositories.NotificationRepository,
	challanService services.ChallanService,
	logger zerolog.Logger,
) *Maintenance {
	return &Maintenance{
		notificationRepo: notificationRepo,
		challanService:   challanService,
		cron:             cron.New(),
		logger:           logger,
	}
}

// Start registers the nightly schedule and launches the cron runner
func (m *Maintenance) Start() error {
	// 00:30 local time, after the day's issuance has settled
	if _, err := m.cron.AddFunc("30 0 * * *", m.runNightly); err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Info().Msg("Maintenance jobs scheduled")
	return nil
}

// Stop halts the cron runner, waiting for a running job to finish
func (m *Maintenance) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info().Msg("Maintenance jobs stopped")
}

func (m *Maintenance) runNightly() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m.expireNotifications(ctx)
	m.logIssuanceStats(ctx)
}

func (m *Maintenance) expireNotifications(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -notificationRetentionDays)
	expired, err := m.notificationRepo.DeactivateOlderThan(ctx, cutoff)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to expire stale notifications")
		return
	}
	if expired > 0 {
		m.logger.Info().Int64("expired", expired).Msg("Stale notifications retired")
	}
}

func (m *Maintenance) logIssuanceStats(ctx context.Context) {
	total, byRoute, err := m.challanService.IssuanceStats(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to collect challan issuance stats")
		return
	}
	m.logger.Info().
		Int("totalChallans", total).
		Interface("byRoute", byRoute).
		Msg("Challan issuance summary")
}
