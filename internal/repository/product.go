package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vendapp/vendapp/internal/model"
)

// ErrProductNotFound is returned when no product row matches the given id.
var ErrProductNotFound = errors.New("product not found")

// ListProducts retrieves all products. Ordering is implementation-defined.
func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, nome, preco
		FROM produtos
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetProductByID retrieves a product by its ID.
func (r *Repository) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT id, nome, preco
		FROM produtos
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return &p, nil
}

// CreateProduct inserts a new product.
func (r *Repository) CreateProduct(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO produtos (nome, preco)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, product.Name, product.Price).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// UpdateProduct overwrites all mutable fields of the product identified by
// id and returns the updated row. Returns ErrProductNotFound when no row
// matched.
func (r *Repository) UpdateProduct(ctx context.Context, id int, product *model.Product) (*model.Product, error) {
	query := `
		UPDATE produtos
		SET nome = $1, preco = $2
		WHERE id = $3
		RETURNING id, nome, preco
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, product.Name, product.Price, id).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// DeleteProduct removes the product identified by id. Deleting an absent
// id is not an error.
func (r *Repository) DeleteProduct(ctx context.Context, id int) error {
	query := `DELETE FROM produtos WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
