package service

import (
	"strings"
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

type DMService interface {
	// Send delivers a direct message. The sender is always the resolved
	// identity, never caller-supplied input.
	Send(id *auth.Identity, toUser, text string) (*entity.DirectMessage, error)
	// Thread returns the conversation with the other user oldest-first;
	// Thread(A, B) and Thread(B, A) read the same partition.
	Thread(id *auth.Identity, otherUsername string) ([]*entity.DirectMessage, error)
}

type localDMService struct {
	messages repository.MessageRepository
	logger   nlog.Logger
}

func NewDMService(messages repository.MessageRepository, logger nlog.Logger) DMService {
	return &localDMService{messages: messages, logger: logger}
}

func (d *localDMService) Logf(format string, v ...any) {
	d.logger.Logf(format, v...)
}

func (d *localDMService) Send(id *auth.Identity, toUser, text string) (*entity.DirectMessage, error) {
	if err := policy.CanAccessDM(id); err != nil {
		return nil, err
	}

	var reasons []string
	if toUser == "" {
		reasons = append(reasons, "Recipient username is required")
	}
	if text == "" {
		reasons = append(reasons, "Message text cannot be empty")
	}
	if len(reasons) > 0 {
		return nil, apperr.Invalid(reasons...)
	}

	message := &entity.DirectMessage{
		ID:        uuid.NewString(),
		From:      strings.ToLower(id.Username),
		To:        strings.ToLower(toUser),
		Text:      text,
		CreatedAt: keyspace.Timestamp(time.Now()),
	}
	if err := d.messages.AppendDirectMessage(message); err != nil {
		return nil, err
	}

	d.Logf("DM sent {%s -> %s}", message.From, message.To)
	return message, nil
}

func (d *localDMService) Thread(id *auth.Identity, otherUsername string) ([]*entity.DirectMessage, error) {
	if err := policy.CanAccessDM(id); err != nil {
		return nil, err
	}
	return d.messages.ListThread(id.Username, otherUsername)
}
