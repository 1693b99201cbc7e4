package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vendapp/vendapp/internal/auth"
	"github.com/vendapp/vendapp/internal/repository"
)

// ErrMissingCredentials is returned when login fields are absent.
var ErrMissingCredentials = errors.New("missing credentials")

// respondError is the single error-classification boundary. Every handler
// funnels failures through it:
//
//	missing required fields -> 400
//	bad credentials         -> 401 (uniform message; unknown email and
//	                           wrong password are indistinguishable)
//	no matching row         -> 404
//	anything else           -> 500 with the raw underlying message, which
//	                           is the contract callers already depend on
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios")
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Email ou senha inválidos")
	case errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "Usuário não encontrado")
	case errors.Is(err, repository.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "Cliente não encontrado")
	case errors.Is(err, repository.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Produto não encontrado")
	case errors.Is(err, repository.ErrSaleNotFound):
		writeError(w, http.StatusNotFound, "Venda não encontrada")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
