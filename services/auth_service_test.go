package services

import (
	"context"
	"testing"

	"github.com/nickksoares/drivetube/utils"
)

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	out, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if out.User.ID == 0 {
		t.Fatalf("expected user id to be assigned")
	}
	if out.Token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := utils.ParseToken(out.Token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != out.User.ID || claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	login, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if login.User.ID != out.User.ID {
		t.Fatalf("login resolved a different user")
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Outra", Email: "ana@example.com", Password: "secret456"})
	if err == nil {
		t.Fatalf("expected duplicate email error")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 400 {
		t.Fatalf("expected HTTP 400, got %d", appErr.HTTPCode)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "correct"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrong"})
	if err == nil {
		t.Fatalf("expected unauthorized error")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 401 {
		t.Fatalf("expected HTTP 401, got %d", appErr.HTTPCode)
	}
}

func TestAuthServiceGoogleLoginUpsert(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	tokens := newFakeGoogleTokenRepo()
	svc := NewAuthService(users, tokens)

	in := GoogleLoginInput{
		AccessToken: "ya29.first",
		Name:        "Carla",
		Email:       "carla@example.com",
		Picture:     "https://example.com/p.png",
	}
	first, err := svc.GoogleLogin(context.Background(), in)
	if err != nil {
		t.Fatalf("first google login failed: %v", err)
	}

	in.AccessToken = "ya29.second"
	second, err := svc.GoogleLogin(context.Background(), in)
	if err != nil {
		t.Fatalf("second google login failed: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Fatalf("expected the same account on repeat login, got %d and %d", first.User.ID, second.User.ID)
	}
	if len(users.usersByID) != 1 {
		t.Fatalf("expected a single user, got %d", len(users.usersByID))
	}
	if tokens.tokens[first.User.ID] != "ya29.second" {
		t.Fatalf("expected the stored token to be refreshed, got %q", tokens.tokens[first.User.ID])
	}
}

func TestAuthServiceUpdateProfile(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	out, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.UpdateProfile(context.Background(), out.User.ID, UpdateProfileInput{
		Name:  "Ana Clara",
		Email: "ana.clara@example.com",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if user.Name != "Ana Clara" || user.Email != "ana.clara@example.com" {
		t.Fatalf("unexpected profile after update: %+v", user)
	}

	// Untouched fields keep their stored values.
	stored := users.usersByID[out.User.ID]
	if !utils.CheckPassword("secret123", stored.Password) {
		t.Fatalf("password changed on a name/email update")
	}

	// The old email is free again, the new one signs in.
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana.clara@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("login with updated email failed: %v", err)
	}
}

func TestAuthServiceUpdateProfilePassword(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	out, err := svc.Register(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "oldpass1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), out.User.ID, UpdateProfileInput{Password: "newpass1"}); err != nil {
		t.Fatalf("update profile failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "oldpass1"}); err == nil {
		t.Fatalf("old password still accepted")
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "newpass1"}); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestAuthServiceUpdateProfileEmailTaken(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeGoogleTokenRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	out, err := svc.Register(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), out.User.ID, UpdateProfileInput{Email: "ana@example.com"})
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 400 {
		t.Fatalf("expected HTTP 400 for taken email, got %v", err)
	}

	// Re-submitting the current email is not a conflict.
	if _, err := svc.UpdateProfile(context.Background(), out.User.ID, UpdateProfileInput{Email: "bob@example.com"}); err != nil {
		t.Fatalf("updating to own email failed: %v", err)
	}
}

func TestAuthServiceDeleteAccount(t *testing.T) {
	testConfig()

	users := newFakeUserRepo()
	tokens := newFakeGoogleTokenRepo()
	svc := NewAuthService(users, tokens)

	out, err := svc.GoogleLogin(context.Background(), GoogleLoginInput{
		AccessToken: "ya29.token",
		Name:        "Carla",
		Email:       "carla@example.com",
	})
	if err != nil {
		t.Fatalf("google login failed: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), out.User.ID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}
	if _, ok := users.usersByID[out.User.ID]; ok {
		t.Fatalf("expected user to be removed")
	}
	if _, ok := tokens.tokens[out.User.ID]; ok {
		t.Fatalf("expected stored Google token to be dropped")
	}

	err = svc.DeleteAccount(context.Background(), out.User.ID)
	appErr, ok := err.(*AppError)
	if !ok || appErr.HTTPCode != 404 {
		t.Fatalf("expected HTTP 404 on repeat delete, got %v", err)
	}
}
