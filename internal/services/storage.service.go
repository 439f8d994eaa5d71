package services

import (
	"context"
	"errors"
	"time"

	"driftline/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrMissingAWSCredentials reports that the deployment has no AWS
// credentials, so upload URLs cannot be signed.
var ErrMissingAWSCredentials = errors.New("aws credentials are not configured")

const (
	DefaultUploadContentType = "image/png"
	DefaultUploadExpiry      = 60 * time.Second
)

// StorageService signs S3 upload URLs so clients push feedback photos
// directly to the bucket instead of through the API.
type StorageService struct {
	presigner      *s3.PresignClient
	bucket         string
	hasCredentials bool
	log            logger.Logger
}

func NewStorageService(config config.Config) *StorageService {
	options := s3.Options{
		Region: config.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			config.AWSAccessKeyID,
			config.AWSSecretAccessKey,
			"",
		),
	}
	if config.AWSS3Endpoint != "" {
		options.BaseEndpoint = aws.String(config.AWSS3Endpoint)
	}

	return &StorageService{
		presigner:      s3.NewPresignClient(s3.New(options)),
		bucket:         config.AWSS3Bucket,
		hasCredentials: config.AWSAccessKeyID != "" && config.AWSSecretAccessKey != "",
		log:            logger.New("storageService"),
	}
}

// PresignUpload signs a PUT URL for the given object name and content type.
// Fails with ErrMissingAWSCredentials when no credentials are configured.
func (s *StorageService) PresignUpload(
	ctx context.Context,
	objectName string,
	contentType string,
	expiresIn time.Duration,
) (string, error) {
	log := s.log.Function("PresignUpload")

	if !s.hasCredentials {
		return "", log.Err("cannot sign upload URL", ErrMissingAWSCredentials)
	}

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiresIn
	})
	if err != nil {
		return "", log.Err("failed to presign upload", err, "objectName", objectName)
	}

	return req.URL, nil
}
