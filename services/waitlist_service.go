package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"
	"github.com/nickksoares/drivetube/utils"

	"gorm.io/gorm"
)

type JoinWaitlistInput struct {
	Name  string
	Email string
}

// WaitlistStatus is what /waitlist/status returns. Position is 1-based among
// pending entries ordered by creation; zero for approved/rejected entries.
type WaitlistStatus struct {
	Entry    models.WaitlistEntry `json:"entry"`
	Position int                  `json:"position"`
}

type WaitlistListOutput struct {
	Entries    []models.WaitlistEntry `json:"entries"`
	Pagination utils.PaginationData   `json:"pagination"`
}

type WaitlistService interface {
	Join(ctx context.Context, in JoinWaitlistInput) (WaitlistStatus, error)
	StatusByEmail(ctx context.Context, email string) (WaitlistStatus, error)
	List(ctx context.Context, page int, pageSize int) (WaitlistListOutput, error)
	Update(ctx context.Context, entryID uint, status string) (models.WaitlistEntry, error)
	Approve(ctx context.Context, entryID uint) (models.WaitlistEntry, error)
	Reject(ctx context.Context, entryID uint) (models.WaitlistEntry, error)
}

type waitlistService struct {
	waitlist repositories.WaitlistRepository
	users    repositories.UserRepository
}

func NewWaitlistService(waitlist repositories.WaitlistRepository, users repositories.UserRepository) WaitlistService {
	return &waitlistService{waitlist: waitlist, users: users}
}

func (s *waitlistService) positionOf(ctx context.Context, entry models.WaitlistEntry) (int, error) {
	if entry.Status != models.WaitlistStatusPending {
		return 0, nil
	}
	ids, err := s.waitlist.ListPendingIDs(ctx, nil)
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		if id == entry.ID {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (s *waitlistService) Join(ctx context.Context, in JoinWaitlistInput) (WaitlistStatus, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.waitlist.GetByEmail(ctx, nil, email); err == nil {
		return WaitlistStatus{}, newAppError(http.StatusBadRequest, "Este e-mail já está na lista de espera", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao entrar na lista de espera", err)
	}

	entry := models.WaitlistEntry{
		Name:   strings.TrimSpace(in.Name),
		Email:  email,
		Status: models.WaitlistStatusPending,
	}
	// Tie the entry to an account when one already exists for the email.
	if user, err := s.users.GetByEmail(ctx, nil, email); err == nil {
		entry.UserID = &user.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao entrar na lista de espera", err)
	}

	if err := s.waitlist.Create(ctx, nil, &entry); err != nil {
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao entrar na lista de espera", err)
	}

	position, err := s.positionOf(ctx, entry)
	if err != nil {
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao entrar na lista de espera", err)
	}
	return WaitlistStatus{Entry: entry, Position: position}, nil
}

func (s *waitlistService) StatusByEmail(ctx context.Context, email string) (WaitlistStatus, error) {
	entry, err := s.waitlist.GetByEmail(ctx, nil, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WaitlistStatus{}, newAppError(http.StatusNotFound, "E-mail não encontrado na lista de espera", nil)
		}
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao consultar lista de espera", err)
	}

	position, err := s.positionOf(ctx, entry)
	if err != nil {
		return WaitlistStatus{}, newAppError(http.StatusInternalServerError, "Erro ao consultar lista de espera", err)
	}
	return WaitlistStatus{Entry: entry, Position: position}, nil
}

func (s *waitlistService) List(ctx context.Context, page int, pageSize int) (WaitlistListOutput, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > config.AppConfig.Pagination.MaxPageSize {
		pageSize = config.AppConfig.Pagination.DefaultPageSize
	}

	total, err := s.waitlist.CountAll(ctx, nil)
	if err != nil {
		return WaitlistListOutput{}, newAppError(http.StatusInternalServerError, "Erro ao listar lista de espera", err)
	}

	entries, err := s.waitlist.ListAll(ctx, nil, (page-1)*pageSize, pageSize)
	if err != nil {
		return WaitlistListOutput{}, newAppError(http.StatusInternalServerError, "Erro ao listar lista de espera", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	return WaitlistListOutput{
		Entries: entries,
		Pagination: utils.PaginationData{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

func (s *waitlistService) Update(ctx context.Context, entryID uint, status string) (models.WaitlistEntry, error) {
	switch status {
	case models.WaitlistStatusPending, models.WaitlistStatusApproved, models.WaitlistStatusRejected:
	default:
		return models.WaitlistEntry{}, newAppError(http.StatusBadRequest, "Status inválido", nil)
	}

	entry, err := s.waitlist.GetByID(ctx, nil, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WaitlistEntry{}, newAppError(http.StatusNotFound, "Entrada não encontrada na lista de espera", nil)
		}
		return models.WaitlistEntry{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar lista de espera", err)
	}

	updates := map[string]interface{}{"status": status}
	// Approving links the entry to the account so the access gate can see it.
	if status == models.WaitlistStatusApproved && entry.UserID == nil {
		if user, err := s.users.GetByEmail(ctx, nil, entry.Email); err == nil {
			updates["user_id"] = user.ID
			entry.UserID = &user.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WaitlistEntry{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar lista de espera", err)
		}
	}

	if err := s.waitlist.UpdateByID(ctx, nil, entry.ID, updates); err != nil {
		return models.WaitlistEntry{}, newAppError(http.StatusInternalServerError, "Erro ao atualizar lista de espera", err)
	}
	entry.Status = status
	return entry, nil
}

func (s *waitlistService) Approve(ctx context.Context, entryID uint) (models.WaitlistEntry, error) {
	return s.Update(ctx, entryID, models.WaitlistStatusApproved)
}

func (s *waitlistService) Reject(ctx context.Context, entryID uint) (models.WaitlistEntry, error) {
	return s.Update(ctx, entryID, models.WaitlistStatusRejected)
}
