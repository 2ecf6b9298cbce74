package models

import "time"

// ProductDB represents a product record in the database.
type ProductDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Product name
	Price     float64   `json:"price" db:"price"`           // Unit price
	Stock     int64     `json:"stock" db:"stock"`           // Units in stock
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
