package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// "Visible" queries apply the listing rule (is_active AND stock > 0);
// GetBySlug deliberately does not, so deactivated and out-of-stock
// products stay reachable by direct lookup.
type ProductRepository interface {
	Create(product *models.Product) error
	GetBySlug(slug string) (*models.Product, error)
	GetAllVisible() ([]models.Product, error)
	GetVisibleByCategoryIDs(categoryIDs []uint) ([]models.Product, error)
	Update(product *models.Product) error
}
