package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"vaulttube/internal/domain/dto"
	"vaulttube/pkg/errors"
)

// S3Storage is the alternate blob driver, selected with STORAGE_DRIVER=s3.
// Artifact names are identical to the local driver's; only the returned URLs
// point at the bucket.
type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
	keyPrefix  string
}

func NewS3Storage(bucketName, region string) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
		keyPrefix:  "uploads",
	}, nil
}

func (s *S3Storage) Write(filename string, data []byte) (string, error) {
	key := s.keyPrefix + "/" + filename

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", errors.ErrStorage(fmt.Errorf("s3 upload of %s failed: %w", filename, err))
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key), nil
}

func (s *S3Storage) WriteVariants(baseFilename string, artifacts map[dto.VariantKey][]byte) (*dto.VariantSet, error) {
	set := &dto.VariantSet{}
	for key, data := range artifacts {
		path, err := s.Write(fmt.Sprintf("%s-%s.%s", baseFilename, key.Size, key.Format), data)
		if err != nil {
			return nil, err
		}
		set.SetPath(key, path)
	}
	return set, nil
}

func (s *S3Storage) Delete(relPath string) error {
	// Accept either a bare key or the full bucket URL
	key := relPath
	if idx := strings.Index(relPath, ".amazonaws.com/"); idx >= 0 {
		key = relPath[idx+len(".amazonaws.com/"):]
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.ErrStorage(err)
	}
	return nil
}
