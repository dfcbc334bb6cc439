package repository

import (
	"database/sql"
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts the category and fills CategoryID.
func (r *categoryRepository) Create(category *domain.Category) error {
	query := `
		INSERT INTO category (name)
		VALUES ($1)
		RETURNING category_id
	`

	err := r.db.QueryRow(query, category.Name).Scan(&category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(fmt.Sprintf("category %q already exists", category.Name))
		}
		return domain.Internal("failed to create category", err)
	}

	return nil
}

// GetByID returns the category or a not_found error.
func (r *categoryRepository) GetByID(categoryID int) (*domain.Category, error) {
	query := `
		SELECT category_id, name
		FROM category
		WHERE category_id = $1
	`

	category := &domain.Category{}
	err := r.db.QueryRow(query, categoryID).Scan(&category.CategoryID, &category.Name)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("category %d not found", categoryID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get category", err)
	}

	return category, nil
}

// List returns every category ordered by name.
func (r *categoryRepository) List() ([]domain.Category, error) {
	query := `
		SELECT category_id, name
		FROM category
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, domain.Internal("failed to list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.Name); err != nil {
			return nil, domain.Internal("failed to scan category", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to list categories", err)
	}

	return categories, nil
}

// Update renames the category.
func (r *categoryRepository) Update(category *domain.Category) error {
	query := `
		UPDATE category
		SET name = $1
		WHERE category_id = $2
	`

	result, err := r.db.Exec(query, category.Name, category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict(fmt.Sprintf("category %q already exists", category.Name))
		}
		return domain.Internal("failed to update category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("category %d not found", category.CategoryID))
	}

	return nil
}

// Delete removes the category.
func (r *categoryRepository) Delete(categoryID int) error {
	query := `
		DELETE FROM category
		WHERE category_id = $1
	`

	result, err := r.db.Exec(query, categoryID)
	if err != nil {
		return domain.Internal("failed to delete category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("category %d not found", categoryID))
	}

	return nil
}
