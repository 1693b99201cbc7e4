package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vendapp/vendapp/internal/model"
)

// ErrClientNotFound is returned when no client row matches the given id.
var ErrClientNotFound = errors.New("client not found")

// ListClients retrieves all clients. Ordering is implementation-defined.
func (r *Repository) ListClients(ctx context.Context) ([]model.Client, error) {
	query := `
		SELECT id, nome, email
		FROM clientes
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// GetClientByID retrieves a client by its ID.
func (r *Repository) GetClientByID(ctx context.Context, id int) (*model.Client, error) {
	query := `
		SELECT id, nome, email
		FROM clientes
		WHERE id = $1
	`

	var c model.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}

	return &c, nil
}

// CreateClient inserts a new client.
func (r *Repository) CreateClient(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clientes (nome, email)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, client.Name, client.Email).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// UpdateClient overwrites all mutable fields of the client identified by id
// and returns the updated row. Returns ErrClientNotFound when no row matched.
func (r *Repository) UpdateClient(ctx context.Context, id int, client *model.Client) (*model.Client, error) {
	query := `
		UPDATE clientes
		SET nome = $1, email = $2
		WHERE id = $3
		RETURNING id, nome, email
	`

	var c model.Client
	err := r.pool.QueryRow(ctx, query, client.Name, client.Email, id).
		Scan(&c.ID, &c.Name, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &c, nil
}

// DeleteClient removes the client identified by id. Deleting an absent id
// is not an error. Clients referenced by sales are guarded only by the
// store's foreign keys.
func (r *Repository) DeleteClient(ctx context.Context, id int) error {
	query := `DELETE FROM clientes WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
