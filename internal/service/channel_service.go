package service

import (
	"github.com/google/uuid"

	"chatserver/internal/auth"
	"chatserver/internal/entity"
	"chatserver/internal/nlog"
	"chatserver/internal/policy"
	"chatserver/internal/repository"
	apperr "chatserver/pkg/errors"
)

type ChannelService interface {
	// Create registers a channel; the locked flag is fixed for good.
	Create(name string, locked bool) error
	// Visible lists the channels the caller may see: everything for an
	// identity, open channels only for a guest.
	Visible(id *auth.Identity) ([]entity.Channel, error)
	// All lists every channel; mandatory auth is enforced upstream.
	All() ([]entity.Channel, error)
}

type localChannelService struct {
	channels repository.ChannelRepository
	logger   nlog.Logger
}

func NewChannelService(channels repository.ChannelRepository, logger nlog.Logger) ChannelService {
	return &localChannelService{channels: channels, logger: logger}
}

func (c *localChannelService) Logf(format string, v ...any) {
	c.logger.Logf(format, v...)
}

func (c *localChannelService) Create(name string, locked bool) error {
	if len(name) < 2 {
		return apperr.Invalid("Channel name must be at least 2 characters")
	}

	channel := &entity.Channel{
		ID:     uuid.NewString(),
		Name:   name,
		Locked: locked,
	}
	if err := c.channels.Create(channel); err != nil {
		return err
	}

	c.Logf("Channel created {%s, locked=%t}", name, locked)
	return nil
}

func (c *localChannelService) Visible(id *auth.Identity) ([]entity.Channel, error) {
	channels, err := c.channels.List()
	if err != nil {
		return nil, err
	}
	return policy.FilterVisible(id, channels), nil
}

func (c *localChannelService) All() ([]entity.Channel, error) {
	return c.channels.List()
}
