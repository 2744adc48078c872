package services

import (
	"context"
	"testing"
	"time"

	"github.com/nickksoares/drivetube/models"
)

func TestCleanupSweepExpiresEndedSubscriptions(t *testing.T) {
	testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	subs := newFakeSubscriptionRepo()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)
	subs.subs[1] = models.Subscription{ID: 1, UserID: 1, Status: models.SubscriptionStatusActive, EndDate: &past}
	subs.subs[2] = models.Subscription{ID: 2, UserID: 2, Status: models.SubscriptionStatusActive, EndDate: &future}
	subs.subs[3] = models.Subscription{ID: 3, UserID: 3, Status: models.SubscriptionStatusActive}
	subs.subs[4] = models.Subscription{ID: 4, UserID: 4, Status: models.SubscriptionStatusCanceled, EndDate: &past}

	svc := NewCleanupService(subs, newFakePaymentRepo()).(*cleanupService)
	svc.now = func() time.Time { return now }

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if subs.subs[1].Status != models.SubscriptionStatusExpired {
		t.Fatalf("expected subscription 1 to expire, got %q", subs.subs[1].Status)
	}
	if subs.subs[2].Status != models.SubscriptionStatusActive {
		t.Fatalf("subscription 2 has a future end date and must stay active")
	}
	if subs.subs[3].Status != models.SubscriptionStatusActive {
		t.Fatalf("subscription 3 has no end date and must stay active")
	}
	if subs.subs[4].Status != models.SubscriptionStatusCanceled {
		t.Fatalf("canceled subscriptions are left alone")
	}
}

func TestCleanupSweepRemovesExpiredPendingPayments(t *testing.T) {
	testConfig()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	payments := newFakePaymentRepo()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	payments.payments[1] = models.Payment{ID: 1, Status: models.PaymentStatusPending, PixExpiresAt: &past}
	payments.payments[2] = models.Payment{ID: 2, Status: models.PaymentStatusPending, PixExpiresAt: &future}
	payments.payments[3] = models.Payment{ID: 3, Status: models.PaymentStatusCompleted, PixExpiresAt: &past}

	svc := NewCleanupService(newFakeSubscriptionRepo(), payments).(*cleanupService)
	svc.now = func() time.Time { return now }

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, ok := payments.payments[1]; ok {
		t.Fatalf("expected expired pending payment to be removed")
	}
	if _, ok := payments.payments[2]; !ok {
		t.Fatalf("payment inside its expiry window must stay")
	}
	if _, ok := payments.payments[3]; !ok {
		t.Fatalf("completed payments must stay")
	}
}
