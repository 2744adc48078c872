package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"
	"github.com/nickksoares/drivetube/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL string
}

type LoginInput struct {
	Email    string
	Password string
}

type GoogleLoginInput struct {
	AccessToken string
	Name        string
	Email       string
	Picture     string
	// ExpiresIn is the remaining lifetime of the access token in seconds;
	// zero falls back to the configured default.
	ExpiresIn int
}

// UpdateProfileInput carries partial profile changes; empty fields keep the
// stored value.
type UpdateProfileInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL string
}

type AuthUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	IsAdmin   bool   `json:"is_admin"`
}

type LoginOutput struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (LoginOutput, error)
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
	GoogleLogin(ctx context.Context, in GoogleLoginInput) (LoginOutput, error)
	Me(ctx context.Context, userID uint) (AuthUser, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (AuthUser, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type authService struct {
	users  repositories.UserRepository
	tokens repositories.GoogleTokenRepository
}

func NewAuthService(users repositories.UserRepository, tokens repositories.GoogleTokenRepository) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (LoginOutput, error) {
	count, err := s.users.CountByEmail(ctx, in.Email, 0)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	if count > 0 {
		return LoginOutput{}, newAppError(http.StatusBadRequest, "Email já cadastrado", nil)
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}

	user := models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashedPassword,
		AvatarURL: in.AvatarURL,
	}
	if err := s.users.Create(ctx, nil, &user); err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}

	return s.loginOutput(user)
}

func (s *authService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, nil, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(http.StatusUnauthorized, "Credenciais inválidas", nil)
		}
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}

	if !utils.CheckPassword(in.Password, user.Password) {
		return LoginOutput{}, newAppError(http.StatusUnauthorized, "Credenciais inválidas", nil)
	}

	return s.loginOutput(user)
}

// GoogleLogin upserts the account by email and stashes the Google access
// token so the library endpoints can reach the user's Drive.
func (s *authService) GoogleLogin(ctx context.Context, in GoogleLoginInput) (LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, nil, in.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
		}

		// Google accounts get a throwaway password; they always sign in
		// through Google.
		hashedPassword, hashErr := utils.HashPassword(uuid.NewString())
		if hashErr != nil {
			return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", hashErr)
		}
		user = models.User{
			Name:      in.Name,
			Email:     in.Email,
			Password:  hashedPassword,
			AvatarURL: in.Picture,
		}
		if err := s.users.Create(ctx, nil, &user); err != nil {
			return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
		}
	}

	ttl := time.Duration(in.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = time.Duration(config.AppConfig.Drive.TokenTTL) * time.Second
	}
	if err := s.tokens.Save(ctx, user.ID, in.AccessToken, ttl); err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}

	return s.loginOutput(user)
}

func (s *authService) Me(ctx context.Context, userID uint) (AuthUser, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthUser{}, newAppError(http.StatusNotFound, "Usuário não encontrado", nil)
		}
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	return toAuthUser(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (AuthUser, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthUser{}, newAppError(http.StatusNotFound, "Usuário não encontrado", nil)
		}
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}

	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" && in.Email != user.Email {
		count, err := s.users.CountByEmail(ctx, in.Email, userID)
		if err != nil {
			return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
		}
		if count > 0 {
			return AuthUser{}, newAppError(http.StatusBadRequest, "E-mail já está em uso", nil)
		}
		updates["email"] = in.Email
	}
	if in.Password != "" {
		hashedPassword, err := utils.HashPassword(in.Password)
		if err != nil {
			return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
		}
		updates["password"] = hashedPassword
	}
	if in.AvatarURL != "" {
		updates["avatar_url"] = in.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.users.UpdateByID(ctx, nil, userID, updates); err != nil {
			return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
		}
	}

	user, err = s.users.GetByID(ctx, nil, userID)
	if err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	return toAuthUser(user), nil
}

// DeleteAccount soft-deletes the user and drops the stored Google session.
func (s *authService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.users.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Usuário não encontrado", nil)
		}
		return newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	if err := s.users.SoftDeleteByID(ctx, nil, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	if err := s.tokens.Delete(ctx, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	return nil
}

func (s *authService) loginOutput(user models.User) (LoginOutput, error) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Erro interno do servidor", err)
	}
	return LoginOutput{Token: token, User: toAuthUser(user)}, nil
}

func toAuthUser(user models.User) AuthUser {
	return AuthUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		IsAdmin:   user.IsAdmin,
	}
}
