package service

import (
	"chatserver/internal/entity"
	"chatserver/internal/nlog"
	"chatserver/internal/repository"
)

type UserService interface {
	// List returns usernames only; password digests never leave the
	// repository layer.
	List() ([]entity.PublicUser, error)
	SetStatus(username string, online bool) error
}

type localUserService struct {
	users  repository.UserRepository
	logger nlog.Logger
}

func NewUserService(users repository.UserRepository, logger nlog.Logger) UserService {
	return &localUserService{users: users, logger: logger}
}

func (u *localUserService) Logf(format string, v ...any) {
	u.logger.Logf(format, v...)
}

func (u *localUserService) List() ([]entity.PublicUser, error) {
	users, err := u.users.List()
	if err != nil {
		return nil, err
	}

	public := make([]entity.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, entity.PublicUser{Username: user.Username})
	}
	return public, nil
}

func (u *localUserService) SetStatus(username string, online bool) error {
	if err := u.users.SetOnline(username, online, true); err != nil {
		return err
	}
	u.Logf("Status updated {%s, online=%t}", username, online)
	return nil
}
