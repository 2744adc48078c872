package services

import (
	"context"
	"time"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/logger"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"
)

// CleanupService expires subscriptions that ran past their end date and
// discards pending PIX payments whose codes expired.
type CleanupService interface {
	Start(ctx context.Context)
	Sweep(ctx context.Context) error
}

type cleanupService struct {
	subscriptions repositories.SubscriptionRepository
	payments      repositories.PaymentRepository
	now           func() time.Time
}

func NewCleanupService(
	subscriptions repositories.SubscriptionRepository,
	payments repositories.PaymentRepository,
) CleanupService {
	return &cleanupService{
		subscriptions: subscriptions,
		payments:      payments,
		now:           time.Now,
	}
}

// Start runs periodic sweeps until ctx is canceled.
func (s *cleanupService) Start(ctx context.Context) {
	interval := time.Duration(config.AppConfig.Billing.SweepInterval) * time.Second
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Sweep(ctx); err != nil {
					logger.Warnf("billing sweep: %v", err)
				}
			}
		}
	}()
}

func (s *cleanupService) Sweep(ctx context.Context) error {
	now := s.now()

	ended, err := s.subscriptions.ListActiveEndedBefore(ctx, nil, now)
	if err != nil {
		return err
	}
	for _, sub := range ended {
		updates := map[string]interface{}{"status": models.SubscriptionStatusExpired}
		if err := s.subscriptions.UpdateByID(ctx, nil, sub.ID, updates); err != nil {
			return err
		}
		logger.Infof("subscription %d expired for user %d", sub.ID, sub.UserID)
	}

	removed, err := s.payments.DeleteExpiredPending(ctx, nil, now)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Infof("removed %d expired pending payments", removed)
	}
	return nil
}
