// Package s3 implements a byte source that fetches an object from Amazon S3
// (or an S3-compatible service) and streams its body.
package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/allada/pconcat/source"
)

// GetObjectAPI is the slice of the S3 client this package depends on.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// Client issues object fetches. One Client is shared by all sources of a run.
type Client struct {
	api          GetObjectAPI
	requestPayer bool
}

// NewClient creates a Client from the given config, falling back to the
// standard AWS environment/profile chain for anything unset.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	return &Client{
		api:          awss3.NewFromConfig(awsCfg, s3Opts...),
		requestPayer: cfg.RequestPayer,
	}, nil
}

// NewClientFromAPI creates a Client around an existing GetObject
// implementation. Used by tests.
func NewClientFromAPI(api GetObjectAPI, requestPayer bool) *Client {
	return &Client{api: api, requestPayer: requestPayer}
}

// Parse builds a Source from a `bucket/key` record. The key may itself
// contain slashes.
func (c *Client) Parse(record string) (source.Source, error) {
	bucket, key, found := strings.Cut(record, "/")
	if !found || bucket == "" || key == "" {
		return nil, fmt.Errorf("s3: expected bucket/key, got %q", record)
	}
	return &Source{client: c, bucket: bucket, key: key}, nil
}

// Source fetches one object.
type Source struct {
	client *Client
	bucket string
	key    string
}

// String returns the object's bucket/key path.
func (s *Source) String() string { return s.bucket + "/" + s.key }

// Open issues the GetObject request and returns the streamed body. The body
// satisfies source.Stream directly: EOF is the success outcome, read errors
// are mid-stream failures.
func (s *Source) Open(ctx context.Context) (source.Stream, error) {
	input := &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}
	if s.client.requestPayer {
		input.RequestPayer = types.RequestPayerRequester
	}

	out, err := s.client.api.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("s3: get object %s: %w", s, err)
	}
	return out.Body, nil
}
