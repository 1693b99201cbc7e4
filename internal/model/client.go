package model

// Client represents a customer that sales are registered against.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}
