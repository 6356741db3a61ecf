package models

import "time"

// Product represents a single catalog item. The numeric ID is internal;
// the slug is the identity clients address the product by.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(150)"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(255)"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"is_active"`
	CategoryID  uint      `json:"category_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Visible reports whether the product appears in listing endpoints.
// Direct slug lookup intentionally ignores this.
func (p *Product) Visible() bool {
	return p.IsActive && p.Stock > 0
}
