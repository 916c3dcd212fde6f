package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	bucket, object string
	body           []byte
	contentType    string
	err            error
}

func (p *recordingPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error) {
	if p.err != nil {
		return minioSDK.UploadInfo{}, p.err
	}
	p.bucket, p.object, p.contentType = bucketName, objectName, opts.ContentType
	body, err := io.ReadAll(reader)
	if err != nil {
		return minioSDK.UploadInfo{}, err
	}
	p.body = body
	return minioSDK.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestMinioArchiver_Store(t *testing.T) {
	putter := &recordingPutter{}
	archiver := NewMinioArchiver(putter, "form-sweeps")

	res := application.SweepResult{
		RunID:     "abc",
		StartedAt: time.Date(2024, 4, 2, 23, 0, 0, 0, time.UTC),
		Created:   []form.Form{{ID: 4, AnimalID: 2, FormStatus: form.StatusCreated}},
		Failures:  []application.SweepFailure{{AnimalID: 3, Error: "boom"}},
	}
	require.NoError(t, archiver.Store(context.Background(), res))

	assert.Equal(t, "form-sweeps", putter.bucket)
	assert.Equal(t, "sweeps/2024/04/02/abc.json", putter.object)
	assert.Equal(t, "application/json", putter.contentType)

	var decoded application.SweepResult
	require.NoError(t, json.Unmarshal(putter.body, &decoded))
	assert.Equal(t, "abc", decoded.RunID)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, "boom", decoded.Failures[0].Error)
}

func TestMinioArchiver_StoreError(t *testing.T) {
	archiver := NewMinioArchiver(&recordingPutter{err: errors.New("access denied")}, "b")
	err := archiver.Store(context.Background(), application.SweepResult{RunID: "x"})
	assert.ErrorContains(t, err, "access denied")
}
