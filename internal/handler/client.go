package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vendapp/vendapp/internal/handler/dto"
	"github.com/vendapp/vendapp/internal/model"
)

// ClientStore is the persistence surface the client handlers need.
type ClientStore interface {
	ListClients(ctx context.Context) ([]model.Client, error)
	GetClientByID(ctx context.Context, id int) (*model.Client, error)
	CreateClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, id int, client *model.Client) (*model.Client, error)
	DeleteClient(ctx context.Context, id int) error
}

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	store  ClientStore
	logger *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(store ClientStore, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{store: store, logger: logger}
}

// List handles GET /clientes.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.ListClients(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, clients)
}

// Get handles GET /clientes/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	client, err := h.store.GetClientByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Create handles POST /clientes.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	client := model.Client{Name: req.Name, Email: req.Email}
	if err := h.store.CreateClient(r.Context(), &client); err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("client_created", "client_id", client.ID)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Cliente cadastrado com sucesso"})
}

// Update handles PUT /clientes/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	updated, err := h.store.UpdateClient(r.Context(), id, &model.Client{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /clientes/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.store.DeleteClient(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
