package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// s3PutAPI is the subset of *s3.Client used by the content store.
type s3PutAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3PresignAPI is the subset of *s3.PresignClient used to link stored objects.
type s3PresignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3PutAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(client s3PutAPI) s3PresignAPI {
		c, ok := client.(*s3.Client)
		if !ok {
			return nil
		}
		return s3.NewPresignClient(c)
	}
)

// s3ContentStore writes attachments as objects "<prefix>/<id>.<ext>".
type s3ContentStore struct {
	client    s3PutAPI
	presigner s3PresignAPI
	bucket    string
	prefix    string
	urlExpiry time.Duration
	logger    *logger.Logger
}

// NewS3ContentStore builds an S3 client from cfg. Static credentials and a
// custom endpoint (MinIO and friends) are used when configured; otherwise the
// default AWS credential chain applies.
func NewS3ContentStore(ctx context.Context, cfg config.S3, log *logger.Logger) (ContentStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3ContentStore{
		client:    client,
		presigner: newS3PresignClient(client),
		bucket:    cfg.Bucket,
		prefix:    cfg.Prefix,
		urlExpiry: cfg.URLExpiry,
		logger:    log,
	}, nil
}

// Save buffers the body: PutObject needs a seekable payload to sign. The
// object's content type is sniffed from the bytes.
func (s *s3ContentStore) Save(ctx context.Context, attachmentID, ext string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name, err := safeFileName(attachmentID, ext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	data, err := io.ReadAll(readerWithContext(ctx, body))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %w", ErrStorageWrite, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ContentStore.Save").Str("key", s.key(name)).Msg("error putting object")
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return name, nil
}

// ContentURL presigns a GET of the object saved under name.
func (s *s3ContentStore) ContentURL(ctx context.Context, name string) (string, error) {
	if s.presigner == nil {
		return "", ErrContentNotServed
	}
	if name == "" || name != path.Base(name) || name[0] == '.' {
		return "", fmt.Errorf("%w: %q", ErrContentNotFound, name)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}, func(o *s3.PresignOptions) {
		if s.urlExpiry > 0 {
			o.Expires = s.urlExpiry
		}
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ContentStore.ContentURL").Str("key", s.key(name)).Msg("error presigning object url")
		return "", fmt.Errorf("presigning %q: %w", name, err)
	}

	return req.URL, nil
}

func (s *s3ContentStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}
