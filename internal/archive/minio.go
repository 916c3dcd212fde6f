package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectPutter is the slice of the MinIO client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error)
}

// MinioArchiver stores every sweep result as a JSON object keyed by date and run id.
type MinioArchiver struct {
	client ObjectPutter
	bucket string
}

func NewMinioArchiver(client ObjectPutter, bucket string) *MinioArchiver {
	return &MinioArchiver{client: client, bucket: bucket}
}

// ObjectName is sweeps/YYYY/MM/DD/<run id>.json.
func ObjectName(res application.SweepResult) string {
	return path.Join("sweeps", res.StartedAt.UTC().Format("2006/01/02"), res.RunID+".json")
}

func (a *MinioArchiver) Store(ctx context.Context, res application.SweepResult) error {
	body, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal sweep result: %w", err)
	}
	_, err = a.client.PutObject(ctx, a.bucket, ObjectName(res), bytes.NewReader(body), int64(len(body)),
		minioSDK.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put sweep report: %w", err)
	}
	return nil
}

// NewMinioClient connects with the configured credentials and makes sure the
// report bucket exists.
func NewMinioClient(ctx context.Context) (*minioSDK.Client, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
	}
	return client, nil
}
