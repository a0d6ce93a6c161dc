package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio/internal/config"
)

// Client wraps MinIO and exposes the small surface the site needs: keyed
// uploads into public-read buckets, public URL composition and idempotent
// deletes.
type Client struct {
	client        *minio.Client
	publicBaseURL string
}

// NewClient initializes the MinIO client and ensures every listed bucket
// exists. Buckets created here get an anonymous-download policy so the
// returned public URLs resolve without credentials.
func NewClient(cfg config.MinIOConfig, buckets ...string) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
		}
		if exists {
			continue
		}
		if !cfg.AutoCreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist (auto create disabled)", bucket)
		}
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", bucket, err)
		}
		if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
			return nil, fmt.Errorf("set bucket policy %q: %w", bucket, err)
		}
	}

	return &Client{
		client:        client,
		publicBaseURL: strings.TrimRight(cfg.PublicEndpoint, "/"),
	}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ObjectKey derives a collision-resistant key from the original file name:
// a millisecond timestamp prefix plus the name with whitespace runs
// replaced. Two uploads of the same name within one millisecond still
// collide; that window is accepted.
func ObjectKey(fileName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), whitespaceRun.ReplaceAllString(fileName, "-"))
}

// Upload writes the payload under the given key and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	}
	if _, err := c.client.PutObject(ctx, bucket, objectKey, reader, size, opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", objectKey, err)
	}
	return c.PublicURL(bucket, objectKey), nil
}

// PublicURL composes the durable URL of a stored object.
func (c *Client) PublicURL(bucket, objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", c.publicBaseURL, bucket, objectKey)
}

// Delete removes an object. A missing key is treated as success.
func (c *Client) Delete(ctx context.Context, bucket, objectKey string) error {
	objectKey = strings.TrimSpace(objectKey)
	if objectKey == "" {
		return nil
	}
	if err := c.client.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		if IsNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", objectKey, err)
	}
	return nil
}

// KeyFromURL recovers the object key from a public URL previously returned
// by Upload, or "" when the URL does not point into the given bucket.
func (c *Client) KeyFromURL(bucket, publicURL string) string {
	prefix := fmt.Sprintf("%s/%s/", c.publicBaseURL, bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(publicURL, prefix)
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, bucket)
}
