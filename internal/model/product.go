package model

// Product represents an item that can appear on a sale.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"nome"`
	Price float64 `json:"preco"`
}
