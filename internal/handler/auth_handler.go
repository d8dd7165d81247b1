package handler

import (
	"net/http"

	"chatserver/internal/service"
)

type credentialsFields struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logoutFields struct {
	Username string `json:"username"`
}

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request credentialsFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	token, err := h.authService.Register(request.Username, request.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "User registered successfully",
		"token":    token,
		"username": request.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request credentialsFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	token, err := h.authService.Login(request.Username, request.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"token":    token,
		"username": request.Username,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var request logoutFields
	if err := decodeBody(r, &request); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.Logout(request.Username); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"message": "Logged out"})
}
