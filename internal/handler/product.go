package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vendapp/vendapp/internal/handler/dto"
	"github.com/vendapp/vendapp/internal/model"
)

// ProductStore is the persistence surface the product handlers need.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id int, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	store  ProductStore
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, logger: logger}
}

// List handles GET /produtos.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /produtos/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	product, err := h.store.GetProductByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /produtos.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	product := model.Product{Name: req.Name, Price: req.Price}
	if err := h.store.CreateProduct(r.Context(), &product); err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.logger.Info("product_created", "product_id", product.ID)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Produto cadastrado com sucesso"})
}

// Update handles PUT /produtos/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	updated, err := h.store.UpdateProduct(r.Context(), id, &model.Product{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /produtos/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
