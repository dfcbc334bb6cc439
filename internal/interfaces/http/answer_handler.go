package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type AnswerHandler struct {
	service *application.AnswerService
}

// NewAnswerHandler creates a new answer handler instance.
func NewAnswerHandler(service *application.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

// SubmitAnswerRequest is the payload for one answer submission.
type SubmitAnswerRequest struct {
	QuestionID int    `json:"questionId"`
	Content    string `json:"content"`
}

// Submit records the caller's answer to one question.
func (h *AnswerHandler) Submit(c *fiber.Ctx) error {
	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, _ := identityFrom(c)
	answer, err := h.service.Submit(req.QuestionID, userID, req.Content)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": answer,
	})
}

// ListMine returns the caller's answers to one survey.
func (h *AnswerHandler) ListMine(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("surveyId"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	userID, _ := identityFrom(c)
	answers, err := h.service.ListMine(surveyID, userID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": answers,
	})
}
