package textio

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mockview/mockview/internal/netx"
	sc "github.com/mockview/mockview/internal/server/config"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const presignValidity = 15 * time.Minute

// Exporter stores rendered resume artifacts in S3-compatible object storage.
type Exporter struct {
	config *sc.Config
}

func NewExporter(config *sc.Config) *Exporter {
	return &Exporter{config: config}
}

// Configured reports whether object storage credentials are present. When
// they are not, callers fall back to a local placeholder download path.
func (e *Exporter) Configured() bool {
	return e.config.S3BaseEndpoint != "" && e.config.S3RootUser != ""
}

func (e *Exporter) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(e.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.S3RootUser,
			e.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(e.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func StorageKey(userID, resumeID, template string) string {
	return fmt.Sprintf("resumes/%s/%s_%s.txt", userID, resumeID, template)
}

// Upload writes the artifact under the given key through a presigned PUT.
func (e *Exporter) Upload(ctx context.Context, key string, artifact []byte) error {
	presignClient, err := e.getPresignClient()
	if err != nil {
		return err
	}

	bucket := e.config.S3Bucket

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return err
	}

	return netx.UploadToPresignedURL(req.URL, "text/plain; charset=utf-8", artifact)
}

// DownloadURL returns a presigned GET URL for a previously uploaded artifact.
func (e *Exporter) DownloadURL(ctx context.Context, key string) (string, error) {
	presignClient, err := e.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := e.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
