package services

import (
	"encoding/json"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/slug"
)

// Catalog event types published after successful mutations.
const (
	EventProductCreated     = "product.created"
	EventProductUpdated     = "product.updated"
	EventProductDeactivated = "product.deactivated"
)

// EventPublisher publishes catalog mutation events. Satisfied by
// *rabbitmq.Client; nil is allowed and disables publishing.
type EventPublisher interface {
	PublishCatalogEvent(eventType string, body []byte) error
}

// CreateProductInput is the payload for creating a product. The
// category foreign key arrives under the "category" JSON key on create
// (and "category_id" on update) — both shapes are part of the public
// contract.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=255"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"category" validate:"required"`
}

// UpdateProductInput is the payload for updating a product. ImageURL is
// deliberately absent: updates overwrite exactly name, description,
// price, stock and category, nothing else.
type UpdateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// CatalogService implements the product lifecycle and catalog query
// rules: what counts as a visible product, how category filtering
// expands the tree, and slug-based identity.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	events       EventPublisher
}

// NewCatalogService creates a new CatalogService. events may be nil, in
// which case mutation events are skipped.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, events EventPublisher) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		events:       events,
	}
}

// CreateProduct inserts a new product. The slug is derived from the
// name once, here; rating always starts at zero and the product starts
// active.
func (s *CatalogService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Slug:        slug.Make(input.Name),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Rating:      0.0,
		IsActive:    true,
		CategoryID:  input.CategoryID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.publish(EventProductCreated, product)
	return product, nil
}

// ListActiveProducts returns every visible product (active and in
// stock). An empty catalog yields an empty slice, not an error.
func (s *CatalogService) ListActiveProducts() ([]models.Product, error) {
	return s.productRepo.GetAllVisible()
}

// ListByCategory returns the visible products of the category
// identified by categorySlug and of its immediate children. Deeper
// descendants are not traversed. Returns ErrCategoryNotFound when the
// slug resolves to nothing.
func (s *CatalogService) ListByCategory(categorySlug string) ([]models.Product, error) {
	category, err := s.categoryRepo.GetBySlug(categorySlug)
	if err != nil {
		return nil, err
	}

	children, err := s.categoryRepo.GetChildren(category.ID)
	if err != nil {
		return nil, err
	}

	closure := make([]uint, 0, len(children)+1)
	closure = append(closure, category.ID)
	for _, child := range children {
		closure = append(closure, child.ID)
	}

	return s.productRepo.GetVisibleByCategoryIDs(closure)
}

// GetProductBySlug resolves a product by slug. No visibility filter is
// applied: a deactivated or out-of-stock product is still retrievable
// by direct lookup.
func (s *CatalogService) GetProductBySlug(productSlug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(productSlug)
}

// UpdateProduct overwrites name, description, price, stock and category
// of the product identified by productSlug. The slug is NOT recomputed
// from the new name, so the external identity stays stable even when
// the name diverges from it. Rating and is_active are untouched.
func (s *CatalogService) UpdateProduct(productSlug string, input UpdateProductInput) error {
	product, err := s.productRepo.GetBySlug(productSlug)
	if err != nil {
		return err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	s.publish(EventProductUpdated, product)
	return nil
}

// SoftDeleteProduct marks the product inactive. The row and all its
// attributes are retained, and the product remains reachable by slug.
// Deleting an already-inactive product succeeds again (idempotent).
func (s *CatalogService) SoftDeleteProduct(productSlug string) error {
	product, err := s.productRepo.GetBySlug(productSlug)
	if err != nil {
		return err
	}

	product.IsActive = false

	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	s.publish(EventProductDeactivated, product)
	return nil
}

// publish sends a catalog event best-effort: a broker outage must not
// fail the mutation that already committed.
func (s *CatalogService) publish(eventType string, product *models.Product) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"slug":        product.Slug,
		"name":        product.Name,
		"category_id": product.CategoryID,
		"is_active":   product.IsActive,
		"stock":       product.Stock,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for %s: %v", eventType, product.Slug, err)
		return
	}
	if err := s.events.PublishCatalogEvent(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", eventType, product.Slug, err)
	}
}
