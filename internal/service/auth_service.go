package service

import (
	"time"

	"github.com/google/uuid"

	"chatserver/internal/auth"
	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	"chatserver/internal/nlog"
	"chatserver/internal/repository"
	apperr "chatserver/pkg/errors"
)

type AuthService interface {
	// Register creates the account and logs the user straight in.
	Register(username, password string) (token string, err error)
	Login(username, password string) (token string, err error)
	Logout(username string) error
}

type localAuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	logger nlog.Logger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, logger nlog.Logger) AuthService {
	return &localAuthService{users: users, tokens: tokens, logger: logger}
}

func (a *localAuthService) Logf(format string, v ...any) {
	a.logger.Logf(format, v...)
}

func validateCredentials(username, password string) error {
	var reasons []string
	if len(username) < 2 {
		reasons = append(reasons, "Username must be at least 2 characters")
	}
	if len(password) < 4 {
		reasons = append(reasons, "Password must be at least 4 characters")
	}
	if len(reasons) > 0 {
		return apperr.Invalid(reasons...)
	}
	return nil
}

func (a *localAuthService) Register(username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	existing, err := a.users.GetByUsername(username)
	if err != nil {
		a.Logf("Could not check username {%v}", err)
		return "", err
	}
	if existing != nil {
		return "", apperr.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		a.Logf("Could not calculate hash {%v}", err)
		return "", apperr.Wrap(apperr.CodeInternal, "could not hash password", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Online:       false,
		LastActive:   keyspace.Timestamp(time.Now()),
	}
	// The check above and this insert are two separate steps; if a
	// concurrent registration slips in between, the store's key
	// constraint rejects this one and we report the duplicate.
	if err := a.users.Create(user); err != nil {
		return "", err
	}

	a.Logf("User registered {%s}", username)
	return a.tokens.Issue(username)
}

func (a *localAuthService) Login(username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	user, err := a.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.ErrUserNotFound
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", apperr.ErrInvalidPassword
	}

	a.Logf("User logged in {%s}", username)
	return a.tokens.Issue(username)
}

func (a *localAuthService) Logout(username string) error {
	if username == "" {
		return apperr.ErrUsernameRequired
	}

	// Best effort: an unknown username still logs out fine, the token
	// simply expires on its own.
	user, err := a.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if user != nil {
		if err := a.users.SetOnline(username, false, false); err != nil {
			return err
		}
	}

	a.Logf("User logged out {%s}", username)
	return nil
}
