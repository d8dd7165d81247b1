// Package policy decides, per request, whether a caller may read or
// write a channel or a DM thread. Pure; resolution of the caller and
// lookup of the channel happen upstream.
package policy

import (
	"chatserver/internal/auth"
	"chatserver/internal/entity"
	apperr "chatserver/pkg/errors"
)

type Operation int

const (
	OpRead Operation = iota
	OpWrite
)

// FilterVisible removes locked channels for a Guest caller. An
// authenticated identity sees every channel; there is no owner or
// admin distinction.
func FilterVisible(id *auth.Identity, channels []entity.Channel) []entity.Channel {
	if id != nil {
		return channels
	}
	visible := make([]entity.Channel, 0, len(channels))
	for _, ch := range channels {
		if !ch.Locked {
			visible = append(visible, ch)
		}
	}
	return visible
}

// CanAccessChannel gates both reads and writes: a locked channel is
// closed to Guests in either direction. Unknown channels are rejected
// with NotFound before this gate runs.
func CanAccessChannel(id *auth.Identity, channel *entity.Channel, op Operation) error {
	if !channel.Locked || id != nil {
		return nil
	}
	if op == OpWrite {
		return apperr.ErrLoginRequiredPost
	}
	return apperr.ErrLoginRequired
}

// CanAccessDM has no guest path: a resolved identity is required. The
// sender is always the identity itself, never caller-supplied input,
// so no further per-message check is needed.
func CanAccessDM(id *auth.Identity) error {
	if id == nil {
		return apperr.ErrMissingToken
	}
	return nil
}
