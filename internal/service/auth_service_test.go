package service

import (
	"testing"
	"time"

	"chatserver/internal/auth"
	apperr "chatserver/pkg/errors"
)

func newAuthUnderTest() (AuthService, *mockUserRepo, *auth.TokenService) {
	users := newMockUserRepo()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(users, tokens, &MockLogger{}), users, tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, tokens := newAuthUnderTest()

	registerToken, err := svc.Register("alice", "pass1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if username, err := tokens.Validate(registerToken); err != nil || username != "alice" {
		t.Errorf("Register must yield a usable credential. GOT[%s, %v]", username, err)
	}

	loginToken, err := svc.Login("alice", "pass1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if username, err := tokens.Validate(loginToken); err != nil || username != "alice" {
		t.Errorf("Login must yield a usable credential. GOT[%s, %v]", username, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	_, err := svc.Register("a", "abc")
	app, ok := err.(*apperr.AppError)
	if !ok || app.Code != apperr.CodeInvalidArgument {
		t.Fatalf("Expected INVALID_ARGUMENT, got %v", err)
	}
	if len(app.Reasons) != 2 {
		t.Errorf("Expected one reason per rejected field, got %v", app.Reasons)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	if _, err := svc.Register("alice", "pass1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_, err := svc.Register("alice", "other")
	if !apperr.IsCode(err, apperr.CodeAlreadyExists) {
		t.Errorf("Expected ALREADY_EXISTS, got %v", err)
	}
	if err.Error() != "Username already exists" {
		t.Errorf("Wrong message. GOT[%s]", err.Error())
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	_, err := svc.Login("ghost", "pass1")
	if !apperr.IsCode(err, apperr.CodeUnauthenticated) {
		t.Errorf("Expected UNAUTHENTICATED, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Errorf("Wrong message. GOT[%s]", err.Error())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthUnderTest()
	svc.Register("alice", "pass1")

	_, err := svc.Login("alice", "wrong")
	if !apperr.IsCode(err, apperr.CodeUnauthenticated) {
		t.Errorf("Expected UNAUTHENTICATED, got %v", err)
	}
	if err.Error() != "Invalid password" {
		t.Errorf("Wrong message. GOT[%s]", err.Error())
	}
}

func TestPasswordIsStoredAsDigest(t *testing.T) {
	svc, users, _ := newAuthUnderTest()
	svc.Register("alice", "pass1")

	stored, _ := users.GetByUsername("alice")
	if stored.PasswordHash == "pass1" || stored.PasswordHash == "" {
		t.Errorf("Password must be stored as a digest, got [%s]", stored.PasswordHash)
	}
}

func TestLogout(t *testing.T) {
	svc, users, _ := newAuthUnderTest()
	svc.Register("alice", "pass1")
	users.SetOnline("alice", true, false)

	if err := svc.Logout("alice"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	stored, _ := users.GetByUsername("alice")
	if stored.Online {
		t.Errorf("Expected user to be offline after logout")
	}
}

func TestLogoutMissingUsername(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	err := svc.Logout("")
	if !apperr.IsCode(err, apperr.CodeInvalidArgument) {
		t.Errorf("Expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestLogoutUnknownUsername(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	if err := svc.Logout("ghost"); err != nil {
		t.Errorf("Logout of an unknown user must not fail, got %v", err)
	}
}

func TestDistinctUsersGetDistinctTokens(t *testing.T) {
	svc, _, _ := newAuthUnderTest()

	tokenAlice, err := svc.Register("alice", "pass1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	tokenBob, err := svc.Register("bob", "pass1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tokenAlice == tokenBob {
		t.Errorf("Expected distinct tokens")
	}
}
