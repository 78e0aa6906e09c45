package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"talenthub/config"
)

// S3Service stores candidate resume files in an S3 bucket.
type S3Service struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

func NewS3Service(cfg config.StorageConfig) (*S3Service, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Region == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Service{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// UploadResume stores a resume under resumes/<candidateID>/ and returns the
// object URL recorded on the candidate.
func (s *S3Service) UploadResume(candidateID int, fileName string, body io.ReadSeeker, contentType string) (string, error) {
	key := fmt.Sprintf("resumes/%d/%s", candidateID, fileName)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	_, err := s.s3Client.PutObject(input)
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// KeyFromURL returns the object key for a URL produced by UploadResume.
// Reports false for URLs outside this service's bucket, such as externally
// hosted resume links stored on a candidate.
func (s *S3Service) KeyFromURL(url string) (string, bool) {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

// GeneratePresignedURL generates a presigned URL for secure downloads
func (s *S3Service) GeneratePresignedURL(key string) (string, error) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	// Expires in 1 hour
	url, err := req.Presign(1 * time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	return url, nil
}

// DeleteFile deletes a file from S3
func (s *S3Service) DeleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	_, err := s.s3Client.DeleteObject(input)
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}

	return nil
}

// validate checks if the S3Service configuration is valid
func (s *S3Service) validate() error {
	if s.bucket == "" {
		return fmt.Errorf("bucket name is required")
	}

	if s.region == "" {
		return fmt.Errorf("region is required")
	}

	return nil
}
