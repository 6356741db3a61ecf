package repositories

import (
	"katalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
// Categories form a tree through ParentID; GetChildren returns the
// immediate children only.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetChildren(parentID uint) ([]models.Category, error)
}
