// Package blob issues presigned S3 URLs for branding asset uploads
// (currently just the company logo).
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/rmsplatform/rms/internal/server/config"
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
)

// Presigner hands out time-limited upload URLs against the configured
// S3-compatible backend.
type Presigner struct {
	config *sc.Config
}

func NewPresigner(config *sc.Config) *Presigner {
	return &Presigner{config: config}
}

// randomLogoKey spreads uploads over date-based prefixes so buckets stay
// listable.
func randomLogoKey() string {
	d := time.Now()
	return fmt.Sprintf("branding/logo/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (p *Presigner) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(p.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.config.S3RootUser,
			p.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(p.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// PresignedLogoPutURL returns the storage key of a fresh logo object and a
// presigned PUT URL valid for 15 minutes.
func (p *Presigner) PresignedLogoPutURL(ctx context.Context) (string, string, error) {
	presignClient, err := p.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := p.config.S3Bucket
	key := randomLogoKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
