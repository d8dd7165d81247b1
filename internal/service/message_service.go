package service

import (
	"time"

	"github.com/google/uuid"

	"chatserver/internal/auth"
	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	"chatserver/internal/nlog"
	"chatserver/internal/policy"
	"chatserver/internal/repository"
	apperr "chatserver/pkg/errors"
)

// GuestAuthor is recorded as the sender of anonymous posts.
const GuestAuthor = "Guest"

type MessageService interface {
	// ListChannel returns a channel's posts oldest-first, enforcing the
	// locked-channel read gate.
	ListChannel(id *auth.Identity, channelName string) ([]*entity.ChannelMessage, error)
	// Post appends a message; the author comes from the resolved
	// identity, or "Guest" for anonymous callers on open channels.
	Post(id *auth.Identity, channelName, content string) (*entity.ChannelMessage, error)
	// ListAll returns every channel post; mandatory auth upstream.
	ListAll() ([]*entity.ChannelMessage, error)
}

type localMessageService struct {
	channels repository.ChannelRepository
	messages repository.MessageRepository
	logger   nlog.Logger
}

func NewMessageService(channels repository.ChannelRepository, messages repository.MessageRepository, logger nlog.Logger) MessageService {
	return &localMessageService{channels: channels, messages: messages, logger: logger}
}

func (m *localMessageService) Logf(format string, v ...any) {
	m.logger.Logf(format, v...)
}

func (m *localMessageService) ListChannel(id *auth.Identity, channelName string) ([]*entity.ChannelMessage, error) {
	channel, err := m.channels.GetByName(channelName)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, apperr.ErrChannelNotFound
	}
	if err := policy.CanAccessChannel(id, channel, policy.OpRead); err != nil {
		return nil, err
	}
	return m.messages.ListChannel(channelName)
}

func (m *localMessageService) Post(id *auth.Identity, channelName, content string) (*entity.ChannelMessage, error) {
	// Validation precedes authorization.
	if content == "" {
		return nil, apperr.Invalid("Message content is required")
	}

	// Posting never 404s: a missing channel record simply means no
	// locked flag to enforce.
	channel, err := m.channels.GetByName(channelName)
	if err != nil {
		return nil, err
	}
	if channel != nil {
		if err := policy.CanAccessChannel(id, channel, policy.OpWrite); err != nil {
			return nil, err
		}
	}

	author := GuestAuthor
	if id != nil {
		author = id.Username
	}

	message := &entity.ChannelMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    author,
		From:      author,
		CreatedAt: keyspace.Timestamp(time.Now()),
	}
	if err := m.messages.AppendChannelMessage(channelName, message); err != nil {
		return nil, err
	}

	m.Logf("Message posted {%s -> %s}", author, channelName)
	return message, nil
}

func (m *localMessageService) ListAll() ([]*entity.ChannelMessage, error) {
	return m.messages.ListAllChannels()
}
