package model

import "time"

// SaleItem is one line of a sale: a product reference and a quantity.
// Line items exist only nested under a sale and have no exposed identifier.
type SaleItem struct {
	ProductID int `json:"produto_id"`
	Quantity  int `json:"quantidade"`
}

// SaleSummary is one row of the sales listing. The date is pre-formatted
// by the store ("YYYY-MM-DD HH24:MI"), which is part of the wire contract.
type SaleSummary struct {
	ID         int    `json:"venda_id"`
	Date       string `json:"data"`
	ClientName string `json:"cliente"`
}

// SaleHeader is the parent record of a sale joined to its client's name.
type SaleHeader struct {
	ID         int       `json:"id"`
	Date       time.Time `json:"data"`
	ClientName string    `json:"cliente"`
}

// SaleItemDetail is a line item joined to its product's name and price.
type SaleItemDetail struct {
	ProductName string  `json:"nome"`
	Price       float64 `json:"preco"`
	Quantity    int     `json:"quantidade"`
}

// SaleDetail combines a sale header with its line items.
type SaleDetail struct {
	Sale  SaleHeader       `json:"venda"`
	Items []SaleItemDetail `json:"itens"`
}
