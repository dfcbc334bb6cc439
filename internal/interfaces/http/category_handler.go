package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type CategoryHandler struct {
	service *application.CategoryService
}

// NewCategoryHandler creates a new category handler instance.
func NewCategoryHandler(service *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CategoryRequest is the payload for create and update.
type CategoryRequest struct {
	Name string `json:"name"`
}

// List returns every category.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": categories,
	})
}

// Create adds a category (admin only; routing enforces the role).
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	category, err := h.service.Create(req.Name)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": category,
	})
}

// Update renames a category.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid category id"))
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	category, err := h.service.Update(categoryID, req.Name)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": category,
	})
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid category id"))
	}

	if err := h.service.Delete(categoryID); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "category deleted",
	})
}
