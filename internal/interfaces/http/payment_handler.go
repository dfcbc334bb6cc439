package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler creates a new payment handler instance.
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Create registers a payment intent and returns the client secret the
// payment element needs.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var input application.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, _ := identityFrom(c)
	intent, err := h.service.CreateIntent(userID, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": intent,
	})
}

// Get returns one payment for its owner or an admin.
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	paymentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid payment id"))
	}

	userID, role := identityFrom(c)
	payment, err := h.service.Get(paymentID, userID, role)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": payment,
	})
}

// ListMine returns the caller's payments.
func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := identityFrom(c)

	payments, err := h.service.ListMine(userID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": payments,
	})
}

// Update applies partial admin corrections (admin only; routing enforces the
// role).
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	paymentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid payment id"))
	}

	var input application.UpdatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	payment, err := h.service.Update(paymentID, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": payment,
	})
}
