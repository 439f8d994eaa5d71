package main

import (
	"context"
	"os"
	"time"

	"driftline/config"
	"driftline/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// Manual smoke check for the S3 presign path. Builds the storage service from
// the live environment and requests one upload URL, so credential problems
// show up before the server does.
func main() {
	log := logger.New("presign-check")

	config, err := config.New()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	objectName := "presign-check.png"
	if len(os.Args) > 1 {
		objectName = os.Args[1]
	}

	storageService := services.NewStorageService(config)

	log.Info("Requesting presigned upload URL", "objectName", objectName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url, err := storageService.PresignUpload(
		ctx,
		objectName,
		services.DefaultUploadContentType,
		services.DefaultUploadExpiry,
	)
	if err != nil {
		log.Er("failed to presign upload URL", err)
		os.Exit(1)
	}

	log.Info("Presigned upload URL issued", "url", url)
}
