package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type AuthHandler struct {
	service *application.AuthService
}

// NewAuthHandler creates a new auth handler instance.
func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRequest is the payload to create an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the payload to authenticate.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns a token plus one-time recovery codes.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	result, err := h.service.Register(req.Email, req.Name, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": result,
	})
}

// Login authenticates and returns a token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}
