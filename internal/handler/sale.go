package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vendapp/vendapp/internal/handler/dto"
	"github.com/vendapp/vendapp/internal/model"
)

// SaleStore is the persistence surface the sale handlers need.
// CreateSale and DeleteSale are transactional: they either apply fully or
// leave the store untouched.
type SaleStore interface {
	CreateSale(ctx context.Context, clientID int, items []model.SaleItem) (int, error)
	ListSales(ctx context.Context) ([]model.SaleSummary, error)
	GetSaleByID(ctx context.Context, id int) (*model.SaleDetail, error)
	DeleteSale(ctx context.Context, id int) error
}

// SaleHandler handles HTTP requests for sale operations.
type SaleHandler struct {
	store  SaleStore
	logger *slog.Logger
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(store SaleStore, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{store: store, logger: logger}
}

// List handles GET /vendas. Sales come back newest first.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.store.ListSales(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, sales)
}

// Get handles GET /vendas/{id}.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	detail, err := h.store.GetSaleByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// Create handles POST /vendas. The header and every line item are written
// in one transaction; a failure anywhere leaves no rows behind.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	items := make([]model.SaleItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = model.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	saleID, err := h.store.CreateSale(r.Context(), req.ClientID, items)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("sale_created",
		"sale_id", saleID,
		"client_id", req.ClientID,
		"item_count", len(items),
	)

	writeJSON(w, http.StatusCreated, dto.CreateSaleResponse{
		Message: "Venda registrada com sucesso",
		SaleID:  saleID,
	})
}

// Delete handles DELETE /vendas/{id}. Line items and header go in one
// transaction, mirroring creation.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.store.DeleteSale(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("sale_deleted", "sale_id", id)

	w.WriteHeader(http.StatusNoContent)
}
