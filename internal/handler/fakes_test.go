package handler

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vendapp/vendapp/internal/model"
	"github.com/vendapp/vendapp/internal/repository"
)

// In-memory fakes standing in for the repository. They reproduce the
// repository's observable contract: sentinel errors for missing rows,
// idempotent deletes, all-or-nothing sale creation.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// ----------------------------------------------------------------------------

type fakeUserStore struct {
	users  map[int]*model.User
	nextID int
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*model.User{}, nextID: 1}
}

func (f *fakeUserStore) ListUsers(context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *f.users[id])
	}
	return users, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, id int, user *model.User) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[id]; !ok {
		return nil, repository.ErrUserNotFound
	}
	updated := model.User{ID: id, Name: user.Name, Email: user.Email, Password: user.Password}
	f.users[id] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	return nil
}

// ----------------------------------------------------------------------------

type fakeClientStore struct {
	clients map[int]*model.Client
	nextID  int
	err     error
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[int]*model.Client{}, nextID: 1}
}

func (f *fakeClientStore) ListClients(context.Context) ([]model.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int, 0, len(f.clients))
	for id := range f.clients {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	clients := make([]model.Client, 0, len(ids))
	for _, id := range ids {
		clients = append(clients, *f.clients[id])
	}
	return clients, nil
}

func (f *fakeClientStore) GetClientByID(_ context.Context, id int) (*model.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeClientStore) CreateClient(_ context.Context, client *model.Client) error {
	if f.err != nil {
		return f.err
	}
	client.ID = f.nextID
	f.nextID++
	copied := *client
	f.clients[client.ID] = &copied
	return nil
}

func (f *fakeClientStore) UpdateClient(_ context.Context, id int, client *model.Client) (*model.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.clients[id]; !ok {
		return nil, repository.ErrClientNotFound
	}
	updated := model.Client{ID: id, Name: client.Name, Email: client.Email}
	f.clients[id] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeClientStore) DeleteClient(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.clients, id)
	return nil
}

// ----------------------------------------------------------------------------

type fakeProductStore struct {
	products map[int]*model.Product
	nextID   int
	err      error
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int]*model.Product{}, nextID: 1}
}

func (f *fakeProductStore) ListProducts(context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, *f.products[id])
	}
	return products, nil
}

func (f *fakeProductStore) GetProductByID(_ context.Context, id int) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductStore) CreateProduct(_ context.Context, product *model.Product) error {
	if f.err != nil {
		return f.err
	}
	product.ID = f.nextID
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductStore) UpdateProduct(_ context.Context, id int, product *model.Product) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.products[id]; !ok {
		return nil, repository.ErrProductNotFound
	}
	updated := model.Product{ID: id, Name: product.Name, Price: product.Price}
	f.products[id] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeProductStore) DeleteProduct(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.products, id)
	return nil
}

// ----------------------------------------------------------------------------

type fakeSale struct {
	summary model.SaleSummary
	detail  model.SaleDetail
	items   []model.SaleItem
}

type fakeSaleStore struct {
	sales  map[int]*fakeSale
	order  []int
	nextID int

	// createErr makes CreateSale fail without recording anything,
	// mirroring the rollback contract.
	createErr error
	err       error
}

func newFakeSaleStore() *fakeSaleStore {
	return &fakeSaleStore{sales: map[int]*fakeSale{}, nextID: 1}
}

func (f *fakeSaleStore) CreateSale(_ context.Context, clientID int, items []model.SaleItem) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.sales[id] = &fakeSale{items: items}
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeSaleStore) ListSales(context.Context) ([]model.SaleSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	sales := make([]model.SaleSummary, 0, len(f.order))
	// Newest first, like the real query.
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.sales[f.order[i]]
		summary := s.summary
		summary.ID = f.order[i]
		sales = append(sales, summary)
	}
	return sales, nil
}

func (f *fakeSaleStore) GetSaleByID(_ context.Context, id int) (*model.SaleDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sales[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	detail := s.detail
	detail.Sale.ID = id
	if detail.Items == nil {
		detail.Items = []model.SaleItemDetail{}
	}
	return &detail, nil
}

func (f *fakeSaleStore) DeleteSale(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.sales, id)
	for i, sid := range f.order {
		if sid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
