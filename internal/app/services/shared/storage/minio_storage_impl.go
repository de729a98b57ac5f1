package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

var (
	minioStorageInstance contracts.Storage
	onceMinioStorage     sync.Once
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObject(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return data, nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignURL(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
