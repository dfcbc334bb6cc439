package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type UserHandler struct {
	service *application.UserService
}

// NewUserHandler creates a new user handler instance.
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// DeleteAccountRequest is the payload to erase the caller's account. Both the
// password and the exact confirmation phrase are required.
type DeleteAccountRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// Me returns the caller's account.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, _ := identityFrom(c)

	user, err := h.service.Get(userID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": user,
	})
}

// DeleteMe erases the caller's account and everything it owns.
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	var req DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, _ := identityFrom(c)
	if err := h.service.DeleteAccount(userID, req.Password, req.Confirmation); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "account deleted",
	})
}
