package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vendapp/vendapp/internal/auth"
	"github.com/vendapp/vendapp/internal/handler/dto"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	store  auth.UserStore
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store auth.UserStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, logger: logger}
}

// Login handles POST /login. No token or session is issued; callers
// re-authenticate per request.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, h.logger, ErrMissingCredentials)
		return
	}

	user, err := auth.Authenticate(r.Context(), h.store, req.Email, req.Password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("login_succeeded", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login bem-sucedido",
		UserID:  user.ID,
		Name:    user.Name,
	})
}
