package repository

import (
	"encoding/json"
	"errors"

	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	apperr "chatserver/pkg/errors"
)

type UserRepository interface {
	// Create fails with the duplicate-username error when the name is
	// taken. The existence check upstream and this insert are not one
	// atomic step; the store's key constraint catches the race loser.
	Create(user *entity.User) error
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	SetOnline(username string, online, refreshLastActive bool) error
}

type KeyedUserRepository struct {
	store KeyedStore
}

func NewKeyedUserRepository(store KeyedStore) UserRepository {
	return &KeyedUserRepository{store}
}

func (r *KeyedUserRepository) Create(user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return apperr.ErrStore(err)
	}

	pk, sk := keyspace.UserKey(user.Username)
	if err := r.store.Insert(pk, sk, data); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return apperr.ErrUsernameTaken
		}
		return apperr.ErrStore(err)
	}
	return nil
}

func (r *KeyedUserRepository) GetByUsername(username string) (*entity.User, error) {
	pk, sk := keyspace.UserKey(username)
	record, err := r.store.Get(pk, sk)
	if err != nil {
		return nil, apperr.ErrStore(err)
	}
	if record == nil {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(record.Data, &user); err != nil {
		return nil, apperr.ErrStore(err)
	}
	return &user, nil
}

func (r *KeyedUserRepository) List() ([]*entity.User, error) {
	records, err := r.store.Query(keyspace.UserPartition)
	if err != nil {
		return nil, apperr.ErrStore(err)
	}

	users := make([]*entity.User, 0, len(records))
	for _, record := range records {
		var user entity.User
		if err := json.Unmarshal(record.Data, &user); err != nil {
			return nil, apperr.ErrStore(err)
		}
		users = append(users, &user)
	}
	return users, nil
}

func (r *KeyedUserRepository) SetOnline(username string, online, refreshLastActive bool) error {
	user, err := r.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrUserNotFound
	}

	user.Online = online
	if refreshLastActive {
		user.LastActive = keyspace.Timestamp(nowFunc())
	}

	data, err := json.Marshal(user)
	if err != nil {
		return apperr.ErrStore(err)
	}
	pk, sk := keyspace.UserKey(username)
	if err := r.store.Update(pk, sk, data); err != nil {
		return apperr.ErrStore(err)
	}
	return nil
}
