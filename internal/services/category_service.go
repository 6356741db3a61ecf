package services

import (
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/slug"
)

// CreateCategoryInput is the payload for creating a category. ParentID
// is optional; nil creates a top-level category.
type CreateCategoryInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID *uint  `json:"parent_id"`
}

// CategoryService handles category administration. Categories are
// reference data created top-down, which is what keeps the parent
// relation acyclic: a category can only attach to a parent that already
// exists.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory inserts a new category with a slug derived from its
// name. When a parent is given it must exist; otherwise
// ErrCategoryNotFound is returned.
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*models.Category, error) {
	if input.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(*input.ParentID); err != nil {
			return nil, err
		}
	}

	category := &models.Category{
		Slug:     slug.Make(input.Name),
		Name:     input.Name,
		ParentID: input.ParentID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns every category.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}
