package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/imamik/adsweep/internal/platform/discovery"
)

// Options control session establishment for the export client. Zero values
// defer to the ambient AWS environment.
type Options struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
}

// API is the subset of the S3 client used by this package.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client wraps the S3 client for audit exports.
type Client struct {
	api    API
	bucket string
	prefix string
	now    func() time.Time
}

// NewClient creates an export client bound to the given bucket and key
// prefix.
func NewClient(ctx context.Context, opts Options, bucket, prefix string) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		api:    s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// NewFromAPI returns an export client backed by an existing API
// implementation.
func NewFromAPI(api API, bucket, prefix string) *Client {
	return &Client{api: api, bucket: bucket, prefix: prefix, now: time.Now}
}

// exportDocument is the JSON shape written to the bucket.
type exportDocument struct {
	ExportedAt time.Time           `json:"exported_at"`
	Records    []map[string]string `json:"records"`
}

// ExportRecords uploads the records as one JSON object and returns its
// s3:// location.
func (c *Client) ExportRecords(ctx context.Context, records []discovery.Record) (string, error) {
	doc := exportDocument{
		ExportedAt: c.now().UTC(),
		Records:    make([]map[string]string, 0, len(records)),
	}
	for _, r := range records {
		doc.Records = append(doc.Records, r.Attributes)
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export document: %w", err)
	}

	key := c.objectKey()
	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to bucket %s: %w", c.bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", c.bucket, key), nil
}

// objectKey builds a timestamped key under the configured prefix.
func (c *Client) objectKey() string {
	name := fmt.Sprintf("adsweep-%s.json", c.now().UTC().Format("20060102T150405Z"))
	return path.Join(c.prefix, name)
}
