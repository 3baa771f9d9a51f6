package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

type ObjectsConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	PathStyle     bool
}

type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Objects writes uploads into a public-read S3 compatible bucket.
type Objects struct {
	client  putter
	bucket  string
	baseURL string
	newKey  func(original string) string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

func NewObjects(ctx context.Context, cfg ObjectsConfig) (*Objects, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return newObjects(client, cfg), nil
}

func newObjects(client putter, cfg ObjectsConfig) *Objects {
	return &Objects{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		newKey:  RandomKey,
	}
}

// RandomKey names an object with a random id and the original extension.
func RandomKey(original string) string {
	ext := strings.ToLower(path.Ext(original))
	return uuid.NewString() + ext
}

func (o *Objects) Put(ctx context.Context, file Upload) (string, error) {
	// PutObject needs a seekable body to sign it over plain http endpoints.
	data, err := io.ReadAll(file.Body)
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", file.Name, err)
	}

	key := o.newKey(file.Name)
	in := &s3.PutObjectInput{
		Bucket:        aws.String(o.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if file.ContentType != "" {
		in.ContentType = aws.String(file.ContentType)
	}

	if _, err := o.client.PutObject(ctx, in); err != nil {
		if isMissingBucket(err) {
			return "", &BucketMissingError{Bucket: o.bucket}
		}
		return "", err
	}
	return o.PublicURL(key), nil
}

func (o *Objects) PublicURL(key string) string {
	return o.baseURL + "/" + url.PathEscape(key)
}

func isMissingBucket(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchBucket"
	}
	return strings.Contains(strings.ToLower(err.Error()), "bucket not found")
}

func publicBaseURL(cfg ObjectsConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
