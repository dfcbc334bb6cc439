package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/domain"
)

type SurveyHandler struct {
	service      *application.SurveyService
	statsService *application.StatsService
}

// NewSurveyHandler creates a new survey handler instance.
func NewSurveyHandler(service *application.SurveyService, statsService *application.StatsService) *SurveyHandler {
	return &SurveyHandler{
		service:      service,
		statsService: statsService,
	}
}

// Create makes a new draft survey owned by the caller.
func (h *SurveyHandler) Create(c *fiber.Ctx) error {
	var input application.CreateSurveyInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, _ := identityFrom(c)
	survey, err := h.service.Create(userID, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": survey,
	})
}

// Get returns one survey, subject to its visibility.
func (h *SurveyHandler) Get(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	userID, role := identityFrom(c)
	survey, err := h.service.Get(surveyID, userID, role)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": survey,
	})
}

// ListMine returns the caller's surveys.
func (h *SurveyHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := identityFrom(c)

	surveys, err := h.service.ListMine(userID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": surveys,
	})
}

// ListPublished returns public published surveys, optionally by category.
func (h *SurveyHandler) ListPublished(c *fiber.Ctx) error {
	var categoryID *int
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(c, domain.Invalid("invalid category id"))
		}
		categoryID = &id
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	surveys, err := h.service.ListPublished(categoryID, limit, offset)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": surveys,
	})
}

// Update applies partial changes, including status writes.
func (h *SurveyHandler) Update(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	var input application.UpdateSurveyInput
	if err := c.BodyParser(&input); err != nil {
		return handleError(c, domain.Invalid("invalid request body"))
	}

	userID, role := identityFrom(c)
	survey, err := h.service.Update(surveyID, userID, role, input)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": survey,
	})
}

// Delete removes a survey together with its questions and answers.
func (h *SurveyHandler) Delete(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	userID, role := identityFrom(c)
	if err := h.service.Delete(surveyID, userID, role); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "survey deleted",
	})
}

// Stats returns the survey's response aggregation.
func (h *SurveyHandler) Stats(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return handleError(c, domain.Invalid("invalid survey id"))
	}

	userID, role := identityFrom(c)
	stats, err := h.statsService.SurveyStats(surveyID, userID, role)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": stats,
	})
}
