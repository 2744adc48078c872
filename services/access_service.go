package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

// AccessService decides whether a user may reach subscriber-only resources.
// Access is granted to admins, users with an approved waitlist entry, or users
// with an active subscription whose end date has not passed.
type AccessService interface {
	HasAccess(ctx context.Context, userID uint) (bool, error)
}

type accessService struct {
	users         repositories.UserRepository
	waitlist      repositories.WaitlistRepository
	subscriptions repositories.SubscriptionRepository
	now           func() time.Time
}

func NewAccessService(
	users repositories.UserRepository,
	waitlist repositories.WaitlistRepository,
	subscriptions repositories.SubscriptionRepository,
) AccessService {
	return &accessService{
		users:         users,
		waitlist:      waitlist,
		subscriptions: subscriptions,
		now:           time.Now,
	}
}

func subscriptionGrantsAccess(sub models.Subscription, now time.Time) bool {
	if sub.Status != models.SubscriptionStatusActive {
		return false
	}
	// No end date means the subscription runs indefinitely.
	if sub.EndDate == nil {
		return true
	}
	return sub.EndDate.After(now)
}

func (s *accessService) HasAccess(ctx context.Context, userID uint) (bool, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, newAppError(http.StatusNotFound, "Usuário não encontrado", nil)
		}
		return false, newAppError(http.StatusInternalServerError, "Erro ao verificar acesso", err)
	}
	if user.IsAdmin {
		return true, nil
	}

	approved, err := s.waitlist.CountApprovedByUser(ctx, nil, userID)
	if err != nil {
		return false, newAppError(http.StatusInternalServerError, "Erro ao verificar acesso", err)
	}
	if approved > 0 {
		return true, nil
	}

	sub, err := s.subscriptions.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, newAppError(http.StatusInternalServerError, "Erro ao verificar acesso", err)
	}
	return subscriptionGrantsAccess(sub, s.now()), nil
}
