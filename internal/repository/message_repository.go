package repository

import (
	"encoding/json"

	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	apperr "chatserver/pkg/errors"
)

type MessageRepository interface {
	AppendChannelMessage(channelName string, message *entity.ChannelMessage) error
	// ListChannel returns a channel's posts oldest-first.
	ListChannel(channelName string) ([]*entity.ChannelMessage, error)
	// ListAllChannels returns every channel post, grouped by channel
	// partition and timestamp-ordered within each.
	ListAllChannels() ([]*entity.ChannelMessage, error)

	AppendDirectMessage(message *entity.DirectMessage) error
	// ListThread returns the DM thread between two users oldest-first;
	// the participant order does not matter.
	ListThread(userA, userB string) ([]*entity.DirectMessage, error)
}

type KeyedMessageRepository struct {
	store KeyedStore
}

func NewKeyedMessageRepository(store KeyedStore) MessageRepository {
	return &KeyedMessageRepository{store}
}

func (r *KeyedMessageRepository) AppendChannelMessage(channelName string, message *entity.ChannelMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return apperr.ErrStore(err)
	}

	// Overwriting put: two posts in the same millisecond share a sort
	// key and the last write wins, matching the source behavior.
	pk, sk := keyspace.ChannelMessageKey(channelName, message.CreatedAt)
	if err := r.store.Put(pk, sk, data); err != nil {
		return apperr.ErrStore(err)
	}
	return nil
}

func (r *KeyedMessageRepository) ListChannel(channelName string) ([]*entity.ChannelMessage, error) {
	records, err := r.store.Query(keyspace.ChannelMessagesPartition(channelName))
	if err != nil {
		return nil, apperr.ErrStore(err)
	}
	return decodeChannelMessages(records)
}

func (r *KeyedMessageRepository) ListAllChannels() ([]*entity.ChannelMessage, error) {
	records, err := r.store.QueryPrefix(keyspace.AllChannelMessagesPrefix())
	if err != nil {
		return nil, apperr.ErrStore(err)
	}
	return decodeChannelMessages(records)
}

func (r *KeyedMessageRepository) AppendDirectMessage(message *entity.DirectMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return apperr.ErrStore(err)
	}

	pk, sk := keyspace.DMMessageKey(message.From, message.To, message.CreatedAt)
	if err := r.store.Put(pk, sk, data); err != nil {
		return apperr.ErrStore(err)
	}
	return nil
}

func (r *KeyedMessageRepository) ListThread(userA, userB string) ([]*entity.DirectMessage, error) {
	records, err := r.store.Query(keyspace.DMPartition(userA, userB))
	if err != nil {
		return nil, apperr.ErrStore(err)
	}

	messages := make([]*entity.DirectMessage, 0, len(records))
	for _, record := range records {
		var message entity.DirectMessage
		if err := json.Unmarshal(record.Data, &message); err != nil {
			return nil, apperr.ErrStore(err)
		}
		messages = append(messages, &message)
	}
	return messages, nil
}

func decodeChannelMessages(records []Record) ([]*entity.ChannelMessage, error) {
	messages := make([]*entity.ChannelMessage, 0, len(records))
	for _, record := range records {
		var message entity.ChannelMessage
		if err := json.Unmarshal(record.Data, &message); err != nil {
			return nil, apperr.ErrStore(err)
		}
		messages = append(messages, &message)
	}
	return messages, nil
}
