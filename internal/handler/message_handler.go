package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"chatserver/internal/auth"
	"chatserver/internal/service"
)

// The client sends the body under either "content" or "text".
type messageFields struct {
	Content string `json:"content"`
	Text    string `json:"text"`
}

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	channelName := mux.Vars(r)["channelName"]

	messages, err := h.messageService.ListChannel(auth.IdentityFromContext(r.Context()), channelName)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) PostChannel(w http.ResponseWriter, r *http.Request) {
	channelName := mux.Vars(r)["channelName"]

	var request messageFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}
	content := request.Content
	if content == "" {
		content = request.Text
	}

	message, err := h.messageService.Post(auth.IdentityFromContext(r.Context()), channelName, content)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message":     "Message sent successfully",
		"messageItem": message,
	})
}

func (h *MessageHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.ListAll()
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}
