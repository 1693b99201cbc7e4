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

func newSaleRouter(store *fakeSaleStore) *chi.Mux {
	h := NewSaleHandler(store, discardLogger())
	r := chi.NewRouter()
	r.Route("/vendas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestSaleCreate_Success(t *testing.T) {
	store := newFakeSaleStore()
	router := newSaleRouter(store)

	body, _ := json.Marshal(dto.CreateSaleRequest{
		ClientID: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: 5, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	})
	rec := doRequest(t, router, http.MethodPost, "/vendas", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CreateSaleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Venda registrada com sucesso", resp.Message)
	assert.Equal(t, 1, resp.SaleID)

	// Item order is preserved on the way to the store.
	require.Len(t, store.sales[1].items, 2)
	assert.Equal(t, model.SaleItem{ProductID: 5, Quantity: 2}, store.sales[1].items[0])
	assert.Equal(t, model.SaleItem{ProductID: 9, Quantity: 1}, store.sales[1].items[1])
}

func TestSaleCreate_EmptyItemsAccepted(t *testing.T) {
	store := newFakeSaleStore()
	router := newSaleRouter(store)

	body, _ := json.Marshal(dto.CreateSaleRequest{ClientID: 1})
	rec := doRequest(t, router, http.MethodPost, "/vendas", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, store.sales[1].items)
}

func TestSaleCreate_StoreFailure(t *testing.T) {
	store := newFakeSaleStore()
	store.createErr = assert.AnError
	router := newSaleRouter(store)

	body, _ := json.Marshal(dto.CreateSaleRequest{
		ClientID: 1,
		Items:    []dto.SaleItemRequest{{ProductID: 5, Quantity: 2}},
	})
	rec := doRequest(t, router, http.MethodPost, "/vendas", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, assert.AnError.Error(), resp.Error)

	// Nothing from the failed attempt is visible.
	assert.Empty(t, store.sales)
}

func TestSaleGet_NotFound(t *testing.T) {
	rec := doRequest(t, newSaleRouter(newFakeSaleStore()), http.MethodGet, "/vendas/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Venda não encontrada", resp.Error)
}

func TestSaleGet_Detail(t *testing.T) {
	store := newFakeSaleStore()
	id, err := store.CreateSale(nil, 1, []model.SaleItem{{ProductID: 5, Quantity: 2}})
	require.NoError(t, err)
	store.sales[id].detail = model.SaleDetail{
		Sale: model.SaleHeader{ClientName: "Ana"},
		Items: []model.SaleItemDetail{
			{ProductName: "Café", Price: 19.9, Quantity: 2},
		},
	}

	rec := doRequest(t, newSaleRouter(store), http.MethodGet, "/vendas/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail model.SaleDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 1, detail.Sale.ID)
	assert.Equal(t, "Ana", detail.Sale.ClientName)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Café", detail.Items[0].ProductName)
	assert.Equal(t, 19.9, detail.Items[0].Price)
	assert.Equal(t, 2, detail.Items[0].Quantity)
}

func TestSaleList_NewestFirst(t *testing.T) {
	store := newFakeSaleStore()
	for i := 0; i < 3; i++ {
		_, err := store.CreateSale(nil, 1, nil)
		require.NoError(t, err)
	}

	rec := doRequest(t, newSaleRouter(store), http.MethodGet, "/vendas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sales []model.SaleSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	require.Len(t, sales, 3)
	assert.Equal(t, 3, sales[0].ID)
	assert.Equal(t, 1, sales[2].ID)
}

func TestSaleDelete(t *testing.T) {
	store := newFakeSaleStore()
	_, err := store.CreateSale(nil, 1, []model.SaleItem{{ProductID: 5, Quantity: 2}})
	require.NoError(t, err)

	rec := doRequest(t, newSaleRouter(store), http.MethodDelete, "/vendas/1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.sales)
}

func TestSaleCreate_InvalidBody(t *testing.T) {
	rec := doRequest(t, newSaleRouter(newFakeSaleStore()), http.MethodPost, "/vendas", []byte("{broken"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
