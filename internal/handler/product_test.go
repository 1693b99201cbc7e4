package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/vendapp/internal/handler/dto"
	"github.com/vendapp/vendapp/internal/model"
)

func newProductRouter(store *fakeProductStore) *chi.Mux {
	h := NewProductHandler(store, discardLogger())
	r := chi.NewRouter()
	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestProductCreateAndGet(t *testing.T) {
	store := newFakeProductStore()
	router := newProductRouter(store)

	body, _ := json.Marshal(dto.ProductRequest{Name: "Café", Price: 19.9})
	created := doRequest(t, router, http.MethodPost, "/produtos", body)
	require.Equal(t, http.StatusCreated, created.Code)

	var ack dto.MessageResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &ack))
	assert.Equal(t, "Produto cadastrado com sucesso", ack.Message)

	rec := doRequest(t, router, http.MethodGet, "/produtos/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "Café", product.Name)
	assert.Equal(t, 19.9, product.Price)
}

func TestProductGet_NotFound(t *testing.T) {
	rec := doRequest(t, newProductRouter(newFakeProductStore()), http.MethodGet, "/produtos/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Produto não encontrado", resp.Error)
}

func TestProductUpdate(t *testing.T) {
	store := newFakeProductStore()
	require.NoError(t, store.CreateProduct(nil, &model.Product{Name: "Café", Price: 19.9}))
	router := newProductRouter(store)

	body, _ := json.Marshal(dto.ProductRequest{Name: "Café Torrado", Price: 24.5})
	rec := doRequest(t, router, http.MethodPut, "/produtos/1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "Café Torrado", product.Name)
	assert.Equal(t, 24.5, product.Price)
}

func TestProductDelete(t *testing.T) {
	store := newFakeProductStore()
	require.NoError(t, store.CreateProduct(nil, &model.Product{Name: "Café", Price: 19.9}))

	rec := doRequest(t, newProductRouter(store), http.MethodDelete, "/produtos/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
