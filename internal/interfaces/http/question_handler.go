package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type QuestionHandler struct {
	service *application.QuestionService
}

// NewQuestionHandler creates a new question handler instance.
func NewQuestionHandler(service *application.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// Create adds a question to a survey.
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("surveyId"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	var input application.CreateQuestionInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, role := identityFrom(c)
	question, err := h.service.Create(surveyID, userID, role, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": question,
	})
}

// ListBySurvey returns the survey's questions in stored order.
func (h *QuestionHandler) ListBySurvey(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("surveyId"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	userID, role := identityFrom(c)
	questions, err := h.service.ListBySurvey(surveyID, userID, role)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": questions,
	})
}

// Update changes a question's title or options.
func (h *QuestionHandler) Update(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid question id"))
	}

	var input application.UpdateQuestionInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, role := identityFrom(c)
	question, err := h.service.Update(questionID, userID, role, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": question,
	})
}

// Delete removes a question.
func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid question id"))
	}

	userID, role := identityFrom(c)
	if err := h.service.Delete(questionID, userID, role); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "question deleted",
	})
}
