package handler

import (
	"net/http"

	"chatserver/internal/auth"
	"chatserver/internal/service"
)

type channelFields struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
}

type ChannelHandler struct {
	channelService service.ChannelService
}

func NewChannelHandler(channelService service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// List serves guests the open channels and identities everything.
func (h *ChannelHandler) List(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channelService.Visible(auth.IdentityFromContext(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, channels)
}

func (h *ChannelHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channelService.All()
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, channels)
}

func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request channelFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.channelService.Create(request.Name, request.Locked); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{"message": "Channel created successfully"})
}
