package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateSubscriptionInput struct {
	PlanID    uint
	StartDate time.Time
}

type CreateSubscriptionOutput struct {
	Subscription models.Subscription `json:"subscription"`
	Payment      models.Payment      `json:"payment"`
}

type SubscriptionService interface {
	Create(ctx context.Context, userID uint, in CreateSubscriptionInput) (CreateSubscriptionOutput, error)
	Mine(ctx context.Context, userID uint) (models.Subscription, error)
	ChangePlan(ctx context.Context, userID uint, planID uint) (models.Subscription, error)
	Cancel(ctx context.Context, userID uint) error
	ProcessPayment(ctx context.Context, userID uint, paymentID uint) error
	CheckAccess(ctx context.Context, userID uint) (bool, error)
}

type subscriptionService struct {
	txManager     TxManager
	plans         repositories.PlanRepository
	subscriptions repositories.SubscriptionRepository
	payments      repositories.PaymentRepository
	now           func() time.Time
}

func NewSubscriptionService(
	txManager TxManager,
	plans repositories.PlanRepository,
	subscriptions repositories.SubscriptionRepository,
	payments repositories.PaymentRepository,
) SubscriptionService {
	return &subscriptionService{
		txManager:     txManager,
		plans:         plans,
		subscriptions: subscriptions,
		payments:      payments,
		now:           time.Now,
	}
}

// newPixCode builds a simulated PIX charge code. There is no real payment
// processor behind it.
func newPixCode() string {
	return "PIX" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func endDateFor(plan models.Plan, start time.Time) time.Time {
	if plan.Interval == models.PlanIntervalYear {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

func (s *subscriptionService) Create(ctx context.Context, userID uint, in CreateSubscriptionInput) (CreateSubscriptionOutput, error) {
	plan, err := s.plans.GetByID(ctx, nil, in.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CreateSubscriptionOutput{}, newAppError(http.StatusNotFound, "Plano não encontrado ou inativo", nil)
		}
		return CreateSubscriptionOutput{}, newAppError(http.StatusInternalServerError, "Erro ao criar assinatura", err)
	}
	if !plan.IsActive {
		return CreateSubscriptionOutput{}, newAppError(http.StatusNotFound, "Plano não encontrado ou inativo", nil)
	}

	if _, err := s.subscriptions.GetByUserID(ctx, nil, userID); err == nil {
		return CreateSubscriptionOutput{}, newAppError(http.StatusBadRequest, "Usuário já possui uma assinatura", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return CreateSubscriptionOutput{}, newAppError(http.StatusInternalServerError, "Erro ao criar assinatura", err)
	}

	start := in.StartDate
	if start.IsZero() {
		start = s.now()
	}
	end := endDateFor(plan, start)

	subscription := models.Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    models.SubscriptionStatusPending,
		StartDate: start,
		EndDate:   &end,
	}
	pixExpires := s.now().Add(time.Duration(config.AppConfig.Billing.PixExpireHours) * time.Hour)
	payment := models.Payment{
		Amount:       plan.Price,
		Method:       "pix",
		Status:       models.PaymentStatusPending,
		PixCode:      newPixCode(),
		PixExpiresAt: &pixExpires,
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.subscriptions.Create(ctx, tx, &subscription); err != nil {
			return err
		}
		payment.SubscriptionID = subscription.ID
		return s.payments.Create(ctx, tx, &payment)
	})
	if err != nil {
		return CreateSubscriptionOutput{}, newAppError(http.StatusInternalServerError, "Erro ao criar assinatura", err)
	}

	subscription.Plan = plan
	return CreateSubscriptionOutput{Subscription: subscription, Payment: payment}, nil
}

func (s *subscriptionService) Mine(ctx context.Context, userID uint) (models.Subscription, error) {
	sub, err := s.subscriptions.GetByUserIDWithDetails(ctx, nil, userID, 5)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subscription{}, newAppError(http.StatusNotFound, "Assinatura não encontrada", nil)
		}
		return models.Subscription{}, newAppError(http.StatusInternalServerError, "Erro ao buscar assinatura", err)
	}
	return sub, nil
}

func (s *subscriptionService) ChangePlan(ctx context.Context, userID uint, planID uint) (models.Subscription, error) {
	sub, err := s.subscriptions.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subscription{}, newAppError(http.StatusNotFound, "Assinatura não encontrada", nil)
		}
		return models.Subscription{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar assinatura", err)
	}

	plan, err := s.plans.GetByID(ctx, nil, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subscription{}, newAppError(http.StatusNotFound, "Plano não encontrado ou inativo", nil)
		}
		return models.Subscription{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar assinatura", err)
	}
	if !plan.IsActive {
		return models.Subscription{}, newAppError(http.StatusNotFound, "Plano não encontrado ou inativo", nil)
	}

	end := endDateFor(plan, sub.StartDate)
	updates := map[string]interface{}{"plan_id": plan.ID, "end_date": end}
	if err := s.subscriptions.UpdateByID(ctx, nil, sub.ID, updates); err != nil {
		return models.Subscription{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar assinatura", err)
	}

	sub.PlanID = plan.ID
	sub.Plan = plan
	sub.EndDate = &end
	return sub, nil
}

// Cancel flips the status; the end date stays, so paid-for access runs out
// naturally.
func (s *subscriptionService) Cancel(ctx context.Context, userID uint) error {
	sub, err := s.subscriptions.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Assinatura não encontrada", nil)
		}
		return newAppError(http.StatusInternalServerError, "Erro ao cancelar assinatura", err)
	}

	updates := map[string]interface{}{"status": models.SubscriptionStatusCanceled}
	if err := s.subscriptions.UpdateByID(ctx, nil, sub.ID, updates); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao cancelar assinatura", err)
	}
	return nil
}

// ProcessPayment simulates the PIX confirmation webhook: marks the payment
// completed and activates the subscription.
func (s *subscriptionService) ProcessPayment(ctx context.Context, userID uint, paymentID uint) error {
	payment, err := s.payments.GetByID(ctx, nil, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Pagamento não encontrado", nil)
		}
		return newAppError(http.StatusInternalServerError, "Erro ao processar pagamento", err)
	}

	sub, err := s.subscriptions.GetByID(ctx, nil, payment.SubscriptionID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao processar pagamento", err)
	}
	if sub.UserID != userID {
		return newAppError(http.StatusForbidden, "Acesso não autorizado", nil)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.payments.UpdateByID(ctx, tx, payment.ID, map[string]interface{}{
			"status": models.PaymentStatusCompleted,
		}); err != nil {
			return err
		}
		return s.subscriptions.UpdateByID(ctx, tx, sub.ID, map[string]interface{}{
			"status":          models.SubscriptionStatusActive,
			"last_payment_id": payment.ID,
		})
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao processar pagamento", err)
	}
	return nil
}

func (s *subscriptionService) CheckAccess(ctx context.Context, userID uint) (bool, error) {
	sub, err := s.subscriptions.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, newAppError(http.StatusInternalServerError, "Erro ao verificar acesso", err)
	}
	return subscriptionGrantsAccess(sub, s.now()), nil
}
