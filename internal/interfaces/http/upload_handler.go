package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/domain"
	services "github.com/opinio-app/survey_backend/internal/service"
	"go.uber.org/zap"
)

type UploadHandler struct {
	service *services.S3Service
	logger  *zap.Logger
}

// NewUploadHandler creates a new upload handler instance.
func NewUploadHandler(service *services.S3Service, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		logger:  logger,
	}
}

// UploadImage stores a survey illustration in S3 and returns its public URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(c, domain.Invalid("file field is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		return handleError(c, domain.Internal("failed to open uploaded file", err))
	}
	defer file.Close()

	url, err := h.service.UploadFile(file, fileHeader)
	if err != nil {
		h.logger.Error("failed to upload file", zap.Error(err))
		return handleError(c, domain.Internal("failed to upload file", err))
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
