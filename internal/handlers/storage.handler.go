package handlers

import (
	"time"

	"driftline/internal/app"
	storageController "driftline/internal/controllers/storage"
	"driftline/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type StorageHandler struct {
	Handler
	storageController storageController.StorageControllerInterface
}

func NewStorageHandler(app app.App, router fiber.Router) *StorageHandler {
	log := logger.New("handlers").File("storage_handler")
	return &StorageHandler{
		storageController: app.Controllers.Storage,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StorageHandler) Register() {
	h.router.Get("/s3-upload-url", h.getUploadURL)
}

// getUploadURL hands the client a presigned PUT URL so photo uploads go
// straight to object storage instead of through the API.
func (h *StorageHandler) getUploadURL(c *fiber.Ctx) error {
	objectName := c.Query("object_name")
	if objectName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "object_name is required",
		})
	}

	contentType := c.Query("content_type", services.DefaultUploadContentType)
	expiresIn := c.QueryInt("expires_in", int(services.DefaultUploadExpiry/time.Second))

	url, err := h.storageController.PresignUpload(
		c.Context(),
		objectName,
		contentType,
		time.Duration(expiresIn)*time.Second,
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
