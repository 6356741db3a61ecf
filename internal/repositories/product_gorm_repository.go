package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetBySlug retrieves a single product by its slug, regardless of
// visibility state.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("slug %s: %w", slug, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by slug %s: %w", slug, err)
	}
	return &product, nil
}

// GetAllVisible retrieves every product that is active and in stock,
// ordered by id for stable output.
func (r *GORMProductRepository) GetAllVisible() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("is_active = ? AND stock > ?", true, 0).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visible products: %w", err)
	}
	return products, nil
}

// GetVisibleByCategoryIDs retrieves active, in-stock products whose
// category is in the given id set.
func (r *GORMProductRepository) GetVisibleByCategoryIDs(categoryIDs []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("category_id IN ? AND is_active = ? AND stock > ?", categoryIDs, true, 0).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products by categories: %w", err)
	}
	return products, nil
}

// Update persists all fields of an existing product, including zero
// values.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound when the row is gone,
		// so check RowsAffected instead.
		return fmt.Errorf("slug %s: %w", product.Slug, ErrProductNotFound)
	}
	return nil
}
