// ABOUTME: Persisted record types for accounts and stored portfolios
// ABOUTME: These wrap the document payload with identity and ownership
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Portfolio is a stored document with its ownership and variant kind.
type Portfolio struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"-"`
	Kind      string        `json:"kind"`
	Title     string        `json:"title"`
	Data      PortfolioData `json:"data"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
