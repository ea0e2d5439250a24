package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/errs"
)

// S3Store keeps assets in an S3 bucket, one key prefix per kind. It applies
// the same validation and naming rules as the disk store.
type S3Store struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		logger: log.With().Str("component", "s3Store").Logger(),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error) {
	if err := validateUpload(kind, contentType, size); err != nil {
		return StoredAsset{}, err
	}

	filename := newFilename(kind, originalName)
	key := path.Join(string(kind), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return StoredAsset{}, errs.NewInternalErrorWithCause("failed to upload asset to s3", err)
	}

	return StoredAsset{Filename: filename, Path: key}, nil
}

func (s *S3Store) Replace(ctx context.Context, old *StoredAsset, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error) {
	asset, err := s.Save(ctx, kind, originalName, contentType, size, r)
	if err != nil {
		return StoredAsset{}, err
	}

	if old != nil && old.Path != "" {
		if err := s.Remove(ctx, *old); err != nil {
			s.logger.Warn().Err(err).Str("key", old.Path).Msg("failed to remove replaced asset")
		}
	}

	return asset, nil
}

func (s *S3Store) Remove(ctx context.Context, asset StoredAsset) error {
	// S3 deletes are idempotent: removing a missing key succeeds.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(asset.Path),
	})
	return err
}

func (s *S3Store) Open(ctx context.Context, asset StoredAsset) (io.ReadCloser, int64, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(asset.Path),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, 0, errs.NewAssetNotFoundError(asset.Filename)
		}
		return nil, 0, err
	}

	return out.Body, aws.ToInt64(out.ContentLength), nil
}
