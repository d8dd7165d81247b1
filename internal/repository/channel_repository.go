package repository

import (
	"encoding/json"
	"errors"

	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	apperr "chatserver/pkg/errors"
)

type ChannelRepository interface {
	Create(channel *entity.Channel) error
	// GetByName returns (nil, nil) when no such channel exists.
	GetByName(name string) (*entity.Channel, error)
	List() ([]entity.Channel, error)
}

type KeyedChannelRepository struct {
	store KeyedStore
}

func NewKeyedChannelRepository(store KeyedStore) ChannelRepository {
	return &KeyedChannelRepository{store}
}

func (r *KeyedChannelRepository) Create(channel *entity.Channel) error {
	data, err := json.Marshal(channel)
	if err != nil {
		return apperr.ErrStore(err)
	}

	pk, sk := keyspace.ChannelKey(channel.Name)
	if err := r.store.Insert(pk, sk, data); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return apperr.AlreadyExists("Channel already exists")
		}
		return apperr.ErrStore(err)
	}
	return nil
}

func (r *KeyedChannelRepository) GetByName(name string) (*entity.Channel, error) {
	pk, sk := keyspace.ChannelKey(name)
	record, err := r.store.Get(pk, sk)
	if err != nil {
		return nil, apperr.ErrStore(err)
	}
	if record == nil {
		return nil, nil
	}

	var channel entity.Channel
	if err := json.Unmarshal(record.Data, &channel); err != nil {
		return nil, apperr.ErrStore(err)
	}
	return &channel, nil
}

func (r *KeyedChannelRepository) List() ([]entity.Channel, error) {
	records, err := r.store.Query(keyspace.ChannelPartition)
	if err != nil {
		return nil, apperr.ErrStore(err)
	}

	channels := make([]entity.Channel, 0, len(records))
	for _, record := range records {
		var channel entity.Channel
		if err := json.Unmarshal(record.Data, &channel); err != nil {
			return nil, apperr.ErrStore(err)
		}
		channels = append(channels, channel)
	}
	return channels, nil
}
