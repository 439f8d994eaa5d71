package services_test

import (
	"context"
	"testing"

	"driftline/config"
	"driftline/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageService_PresignUpload(t *testing.T) {
	service := services.NewStorageService(config.Config{
		AWSRegion:          "eu-west-1",
		AWSAccessKeyID:     "test-access-key",
		AWSSecretAccessKey: "test-secret",
		AWSS3Bucket:        "cleanup-photos",
	})

	url, err := service.PresignUpload(
		context.Background(),
		"feedback/42.png",
		services.DefaultUploadContentType,
		services.DefaultUploadExpiry,
	)
	require.NoError(t, err)

	assert.Contains(t, url, "cleanup-photos")
	assert.Contains(t, url, "feedback/42.png")
	assert.Contains(t, url, "X-Amz-Expires=60")
	assert.Contains(t, url, "X-Amz-Signature=")
}

func TestStorageService_PresignUpload_MissingCredentials(t *testing.T) {
	service := services.NewStorageService(config.Config{
		AWSRegion:   "eu-west-1",
		AWSS3Bucket: "cleanup-photos",
	})

	_, err := service.PresignUpload(
		context.Background(),
		"feedback/42.png",
		services.DefaultUploadContentType,
		services.DefaultUploadExpiry,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrMissingAWSCredentials)
}

func TestStorageService_PresignUpload_CustomEndpoint(t *testing.T) {
	service := services.NewStorageService(config.Config{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "test-access-key",
		AWSSecretAccessKey: "test-secret",
		AWSS3Bucket:        "cleanup-photos",
		AWSS3Endpoint:      "http://localhost:9000",
	})

	url, err := service.PresignUpload(
		context.Background(),
		"feedback/7.png",
		"image/jpeg",
		services.DefaultUploadExpiry,
	)
	require.NoError(t, err)
	assert.Contains(t, url, "localhost:9000")
}
