package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vendapp/vendapp/internal/model"
)

// ErrSaleNotFound is returned when no sale row matches the given id.
var ErrSaleNotFound = errors.New("sale not found")

// CreateSale inserts a sale header for the given client plus one line item
// per entry of items, all inside a single transaction. Items are inserted
// sequentially in input order. On any failure the transaction is rolled
// back and no rows from the attempt remain visible.
//
// An empty items slice is accepted and produces a sale with no line items.
// Returns the store-generated sale id.
func (r *Repository) CreateSale(ctx context.Context, clientID int, items []model.SaleItem) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op after a successful commit.
	defer tx.Rollback(ctx)

	var saleID int
	err = tx.QueryRow(ctx,
		`INSERT INTO vendas (cliente_id) VALUES ($1) RETURNING id`,
		clientID,
	).Scan(&saleID)
	if err != nil {
		return 0, fmt.Errorf("failed to create sale: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO itens_venda (venda_id, produto_id, quantidade) VALUES ($1, $2, $3)`,
			saleID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create sale item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit sale: %w", err)
	}

	return saleID, nil
}

// ListSales retrieves all sales joined to the client name, newest first.
// The date is formatted by the store as part of the listing contract.
func (r *Repository) ListSales(ctx context.Context) ([]model.SaleSummary, error) {
	query := `
		SELECT
			v.id,
			TO_CHAR(v.data, 'YYYY-MM-DD HH24:MI') AS data,
			c.nome AS cliente
		FROM vendas v
		JOIN clientes c ON v.cliente_id = c.id
		ORDER BY v.data DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]model.SaleSummary, 0)
	for rows.Next() {
		var s model.SaleSummary
		if err := rows.Scan(&s.ID, &s.Date, &s.ClientName); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// GetSaleByID retrieves a sale header and its line items as a two-query
// read. When the header does not exist it returns ErrSaleNotFound without
// running the line-item query.
func (r *Repository) GetSaleByID(ctx context.Context, id int) (*model.SaleDetail, error) {
	headerQuery := `
		SELECT v.id, v.data, c.nome AS cliente
		FROM vendas v
		JOIN clientes c ON v.cliente_id = c.id
		WHERE v.id = $1
	`

	var header model.SaleHeader
	err := r.pool.QueryRow(ctx, headerQuery, id).Scan(&header.ID, &header.Date, &header.ClientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}

	itemsQuery := `
		SELECT p.nome, p.preco, i.quantidade
		FROM itens_venda i
		JOIN produtos p ON i.produto_id = p.id
		WHERE i.venda_id = $1
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale items: %w", err)
	}
	defer rows.Close()

	items := make([]model.SaleItemDetail, 0)
	for rows.Next() {
		var it model.SaleItemDetail
		if err := rows.Scan(&it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return &model.SaleDetail{Sale: header, Items: items}, nil
}

// DeleteSale removes a sale's line items and then its header inside a
// single transaction. The explicit item delete is the cascade; the schema
// does not cascade for us. Deleting an absent id is not an error.
func (r *Repository) DeleteSale(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM itens_venda WHERE venda_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete sale items: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM vendas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale deletion: %w", err)
	}

	return nil
}
