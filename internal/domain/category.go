package domain

// Category is a named tag surveys are classified under.
type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create inserts the category and fills CategoryID. A duplicate name
	// surfaces as a conflict error.
	Create(category *Category) error
	// GetByID returns the category or a not_found error.
	GetByID(categoryID int) (*Category, error)
	// List returns every category ordered by name.
	List() ([]Category, error)
	// Update renames the category. A duplicate name surfaces as a conflict error.
	Update(category *Category) error
	// Delete removes the category.
	Delete(categoryID int) error
}
