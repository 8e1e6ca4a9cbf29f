package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/config"
)

// s3ArtifactPublisher uploads the assembled video to S3 and returns the
// object URL. The local copy under the videos directory is kept.
type s3ArtifactPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3ArtifactPublisher(logger outbound.LoggerPort, s3Config *config.S3Config) outbound.ArtifactPublisherPort {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
	if err != nil {
		logger.Error(err, "Failed to create AWS session")
	}
	return &s3ArtifactPublisher{
		logger:   logger,
		s3Svc:    s3.New(sess),
		s3Config: s3Config,
	}
}

func (s *s3ArtifactPublisher) Publish(ctx context.Context, req outbound.PublishArtifactRequest) (string, error) {
	file, err := os.Open(req.FilePath)
	if err != nil {
		s.logger.Error(err, "Failed to open video file for upload")
		return "", err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "Failed to close video file")
		}
	}(file)

	key := "videos/" + req.FileName

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("video/mp4"),
	}

	_, err = s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload video to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, key), nil
}
