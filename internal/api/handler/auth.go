package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mhollis/gamewire/internal/api/middleware"
	"github.com/mhollis/gamewire/internal/api/request"
	"github.com/mhollis/gamewire/internal/api/response"
	"github.com/mhollis/gamewire/internal/services/auth"
)

// AuthHandler handles registration and identity endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponse{User: response.UserFromModel(user)})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.MeResponse{User: response.PublicUserFromModel(user)})
}
