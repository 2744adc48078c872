package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

type PlanInput struct {
	Name        string
	Description string
	Price       int64
	Interval    string
	Features    string
	IsActive    *bool
}

type PlanService interface {
	List(ctx context.Context) ([]models.Plan, error)
	Get(ctx context.Context, planID uint) (models.Plan, error)
	Create(ctx context.Context, in PlanInput) (models.Plan, error)
	Update(ctx context.Context, planID uint, in PlanInput) (models.Plan, error)
	Deactivate(ctx context.Context, planID uint) error
}

type planService struct {
	plans repositories.PlanRepository
}

func NewPlanService(plans repositories.PlanRepository) PlanService {
	return &planService{plans: plans}
}

func (s *planService) List(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.plans.ListActive(ctx, nil)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao listar planos", err)
	}
	return plans, nil
}

func (s *planService) Get(ctx context.Context, planID uint) (models.Plan, error) {
	plan, err := s.plans.GetByID(ctx, nil, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Plan{}, newAppError(http.StatusNotFound, "Plano não encontrado", nil)
		}
		return models.Plan{}, newAppError(http.StatusInternalServerError, "Erro ao buscar plano", err)
	}
	return plan, nil
}

func (s *planService) Create(ctx context.Context, in PlanInput) (models.Plan, error) {
	if in.Interval != models.PlanIntervalMonth && in.Interval != models.PlanIntervalYear {
		return models.Plan{}, newAppError(http.StatusBadRequest, "Intervalo de plano inválido", nil)
	}

	count, err := s.plans.CountByName(ctx, nil, in.Name, 0)
	if err != nil {
		return models.Plan{}, newAppError(http.StatusInternalServerError, "Erro ao criar plano", err)
	}
	if count > 0 {
		return models.Plan{}, newAppError(http.StatusBadRequest, "Já existe um plano com este nome", nil)
	}

	plan := models.Plan{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Interval:    in.Interval,
		Features:    in.Features,
		IsActive:    true,
	}
	if in.IsActive != nil {
		plan.IsActive = *in.IsActive
	}
	if err := s.plans.Create(ctx, nil, &plan); err != nil {
		return models.Plan{}, newAppError(http.StatusInternalServerError, "Erro ao criar plano", err)
	}
	return plan, nil
}

func (s *planService) Update(ctx context.Context, planID uint, in PlanInput) (models.Plan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return models.Plan{}, err
	}

	updates := map[string]interface{}{}
	if in.Name != "" && in.Name != plan.Name {
		count, err := s.plans.CountByName(ctx, nil, in.Name, planID)
		if err != nil {
			return models.Plan{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar plano", err)
		}
		if count > 0 {
			return models.Plan{}, newAppError(http.StatusBadRequest, "Já existe um plano com este nome", nil)
		}
		updates["name"] = in.Name
		plan.Name = in.Name
	}
	if in.Description != "" {
		updates["description"] = in.Description
		plan.Description = in.Description
	}
	if in.Price > 0 {
		updates["price"] = in.Price
		plan.Price = in.Price
	}
	if in.Interval != "" {
		if in.Interval != models.PlanIntervalMonth && in.Interval != models.PlanIntervalYear {
			return models.Plan{}, newAppError(http.StatusBadRequest, "Intervalo de plano inválido", nil)
		}
		updates["interval"] = in.Interval
		plan.Interval = in.Interval
	}
	if in.Features != "" {
		updates["features"] = in.Features
		plan.Features = in.Features
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
		plan.IsActive = *in.IsActive
	}
	if len(updates) == 0 {
		return plan, nil
	}

	if err := s.plans.UpdateByID(ctx, nil, planID, updates); err != nil {
		return models.Plan{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar plano", err)
	}
	return plan, nil
}

// Deactivate soft-disables a plan; existing subscriptions keep their plan row.
func (s *planService) Deactivate(ctx context.Context, planID uint) error {
	if _, err := s.Get(ctx, planID); err != nil {
		return err
	}
	if err := s.plans.UpdateByID(ctx, nil, planID, map[string]interface{}{"is_active": false}); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao desativar plano", err)
	}
	return nil
}
