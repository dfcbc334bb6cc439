package application

import (
	"strings"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create adds a category. A duplicate name is a conflict, not a no-op; only
// the seed migration uses ON CONFLICT DO NOTHING.
func (s *CategoryService) Create(name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("category name is required")
	}

	category := &domain.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns every category.
func (s *CategoryService) List() ([]domain.Category, error) {
	return s.categoryRepo.List()
}

// Update renames a category.
func (s *CategoryService) Update(categoryID int, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("category name is required")
	}

	category := &domain.Category{CategoryID: categoryID, Name: name}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(categoryID int) error {
	return s.categoryRepo.Delete(categoryID)
}
