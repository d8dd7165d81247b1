package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"chatserver/internal/auth"
	"chatserver/internal/service"
)

type dmFields struct {
	ToUser string `json:"toUser"`
	Text   string `json:"text"`
}

type DMHandler struct {
	dmService service.DMService
}

func NewDMHandler(dmService service.DMService) *DMHandler {
	return &DMHandler{dmService: dmService}
}

func (h *DMHandler) Thread(w http.ResponseWriter, r *http.Request) {
	otherUsername := mux.Vars(r)["username"]

	messages, err := h.dmService.Thread(auth.IdentityFromContext(r.Context()), otherUsername)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

func (h *DMHandler) Send(w http.ResponseWriter, r *http.Request) {
	var request dmFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	message, err := h.dmService.Send(auth.IdentityFromContext(r.Context()), request.ToUser, request.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, message)
}
