package handler

import (
	"net/http"

	"chatserver/internal/auth"
	"chatserver/internal/service"
)

type statusFields struct {
	Online bool `json:"online"`
}

type UserHandler struct {
	userService service.UserService
	authService service.AuthService
}

func NewUserHandler(userService service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List()
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	var request statusFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	identity := auth.IdentityFromContext(r.Context())
	if err := h.userService.SetStatus(identity.Username, request.Online); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"message": "Status updated"})
}

// Register is the legacy registration route kept next to
// /api/auth/register; it responds without a token.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request credentialsFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.authService.Register(request.Username, request.Password); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "User registered successfully",
		"username": request.Username,
	})
}
