// Package dto provides Data Transfer Objects for API requests and responses.
// Field names are the wire contract and stay in Portuguese.
package dto

// LoginRequest represents the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string `json:"mensagem"`
	UserID  int    `json:"usuarioId"`
	Name    string `json:"nome"`
}

// MessageResponse is a minimal success acknowledgement.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserRequest represents the request body for creating or updating a user.
// The password travels under the column's historical name.
type UserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha_hash"`
}

// ClientRequest represents the request body for creating or updating a client.
type ClientRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}

// SaleItemRequest is one line item of a sale creation request.
type SaleItemRequest struct {
	ProductID int `json:"produto_id"`
	Quantity  int `json:"quantidade"`
}

// CreateSaleRequest represents the request body for POST /vendas.
type CreateSaleRequest struct {
	ClientID int               `json:"cliente_id"`
	Items    []SaleItemRequest `json:"itens"`
}

// CreateSaleResponse acknowledges a registered sale.
type CreateSaleResponse struct {
	Message string `json:"mensagem"`
	SaleID  int    `json:"venda_id"`
}
