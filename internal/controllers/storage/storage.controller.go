package storageController

import (
	"context"
	"errors"
	"time"

	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

type StorageController struct {
	storageService *services.StorageService
	log            logger.Logger
}

type StorageControllerInterface interface {
	PresignUpload(ctx context.Context, objectName, contentType string, expiresIn time.Duration) (string, error)
}

func New(services services.Service) StorageControllerInterface {
	return &StorageController{
		storageService: services.Storage,
		log:            logger.New("storageController"),
	}
}

// PresignUpload returns a short lived URL the client can PUT an image to
// directly, keeping photo bytes off the API entirely.
func (c *StorageController) PresignUpload(
	ctx context.Context,
	objectName, contentType string,
	expiresIn time.Duration,
) (string, error) {
	log := c.log.Function("PresignUpload")

	url, err := c.storageService.PresignUpload(ctx, objectName, contentType, expiresIn)
	if err != nil {
		if errors.Is(err, services.ErrMissingAWSCredentials) {
			return "", types.ErrInvalidAWSCredentials
		}
		return "", log.Err("failed to presign upload", err, "objectName", objectName)
	}

	return url, nil
}
