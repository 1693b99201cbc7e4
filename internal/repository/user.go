package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vendapp/vendapp/internal/model"
)

// ErrUserNotFound is returned when no user row matches the given key.
var ErrUserNotFound = errors.New("user not found")

// ListUsers retrieves all users. Ordering is implementation-defined.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, nome, email, senha_hash
		FROM usuarios
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT id, nome, email, senha_hash
		FROM usuarios
		WHERE id = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

// GetUserByEmail retrieves a user by their email address.
// Used by the login check.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, nome, email, senha_hash
		FROM usuarios
		WHERE email = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

// CreateUser inserts a new user.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO usuarios (nome, email, senha_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.Password).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// UpdateUser overwrites all mutable fields of the user identified by id
// and returns the updated row. Returns ErrUserNotFound when no row matched.
func (r *Repository) UpdateUser(ctx context.Context, id int, user *model.User) (*model.User, error) {
	query := `
		UPDATE usuarios
		SET nome = $1, email = $2, senha_hash = $3
		WHERE id = $4
		RETURNING id, nome, email, senha_hash
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.Password, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &u, nil
}

// DeleteUser removes the user identified by id. Deleting an absent id is
// not an error.
func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	query := `DELETE FROM usuarios WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
