package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/aris-health/aris-backend/config"
)

// UploadService stores files in the configured S3 bucket.
type UploadService struct {
	s3Config *config.S3Config
}

var _ IUploadService = (*UploadService)(nil)

func NewUploadService(s3Config *config.S3Config) *UploadService {
	return &UploadService{s3Config: s3Config}
}

// Upload writes the file under a unique key and returns the public URL.
func (s *UploadService) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), path.Ext(fileName))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[UploadService] uploaded %s to %s", fileName, publicURL)
	return publicURL, nil
}
