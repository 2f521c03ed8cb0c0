package dllpack

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// s3Backend resolves "s3://bucket/key" references via the AWS SDK, a
// second real-world object store alongside plain HTTP and OCI registries.
type s3Backend struct{}

func (s3Backend) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, key, err := s3BucketKey(rawURL)
	if err != nil {
		return nil, err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}

	client := s3.NewFromConfig(cfg)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting s3://%s/%s", bucket, key)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// s3BucketKey splits "s3://bucket/key/with/slashes" into its bucket and key.
func s3BucketKey(rawURL string) (bucket, key string, err error) {
	u, parseErr := url.Parse(rawURL)
	if parseErr != nil {
		return "", "", errors.Wrapf(parseErr, "parsing s3 url %q", rawURL)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
